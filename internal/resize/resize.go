// Package resize implements the controller behind a draggable pane divider.
//
// A Controller owns a single divider position and converts pointer drags,
// arrow-key presses and double clicks into a position clamped to a configured
// range along one axis. It never renders anything: the host applies the
// Separator bundle to its own divider element and reads Position to size the
// pane the divider controls.
//
// Drags are tracked through listeners registered on a Document, the host's
// global pointer scope, because the pointer routinely leaves the one-cell
// divider while it is being dragged. A controller holds at most one set of
// those listeners at a time and removes all of them on the first terminating
// event.
//
// Usage:
//
//	cfg := resize.DefaultConfig(resize.AxisX)
//	cfg.Initial, cfg.Min, cfg.Max = 50, 30, 120
//	cfg.Reverse = true
//	divider := resize.New(scope, cfg)
//	sep := divider.Separator()
//	sep.OnPointerDown(ev)
package resize

import "math"

// Axis selects the screen dimension a divider moves along.
type Axis int

const (
	// AxisX moves the divider left and right.
	AxisX Axis = iota
	// AxisY moves the divider up and down.
	AxisY
)

// Unbounded is the default Max: the position is only limited by Min.
const Unbounded = math.MaxInt

const (
	// DefaultStep is the keyboard increment without a modifier.
	DefaultStep = 10
	// DefaultShiftStep is the keyboard increment while shift is held.
	DefaultShiftStep = 50
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// ParseAxis converts "x"/"horizontal" and "y"/"vertical" to an Axis.
// Anything unrecognized reports false.
func ParseAxis(value string) (Axis, bool) {
	switch value {
	case "x", "horizontal":
		return AxisX, true
	case "y", "vertical":
		return AxisY, true
	default:
		return AxisX, false
	}
}

// Event is passed to the resize callbacks.
type Event struct {
	Position int // position at the time of the callback
}

// Config is fixed for the lifetime of a Controller.
type Config struct {
	Axis     Axis
	Disabled bool

	Initial int
	Min     int
	Max     int

	// Reverse measures the position from the far edge (right or bottom) of
	// the reference frame instead of the near edge.
	Reverse bool

	Step      int
	ShiftStep int

	// Container is the reference frame for pointer coordinates. When nil
	// the Document bounds are used.
	Container Bounder

	OnResizeStart func(Event)
	OnResizeEnd   func(Event)
}

// DefaultConfig returns a Config for axis with initial 0, min 0, no upper
// bound and the default keyboard steps.
func DefaultConfig(axis Axis) Config {
	return Config{
		Axis:      axis,
		Max:       Unbounded,
		Step:      DefaultStep,
		ShiftStep: DefaultShiftStep,
	}
}

// Controller holds the live and settled divider positions.
type Controller struct {
	doc     Document
	cfg     Config
	initial int

	position    int
	endPosition int
	dragging    bool

	// resizing and latest are read by the global listeners; they are what
	// the listeners act on, never a copy taken when the drag began.
	resizing  bool
	latest    int
	listeners []ListenerID
}

// New creates a controller. The initial position is clamped into
// [cfg.Min, cfg.Max]; cfg.Min > cfg.Max is a caller error.
func New(doc Document, cfg Config) *Controller {
	initial := clamp(cfg.Initial, cfg.Min, cfg.Max)
	return &Controller{
		doc:         doc,
		cfg:         cfg,
		initial:     initial,
		position:    initial,
		endPosition: initial,
		latest:      initial,
	}
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config { return c.cfg }

// Position is the live divider position.
func (c *Controller) Position() int { return c.position }

// EndPosition is the position captured when the last interaction completed.
func (c *Controller) EndPosition() int { return c.endPosition }

// IsDragging reports whether a pointer drag is in progress.
func (c *Controller) IsDragging() bool { return c.dragging }

// Initial is the clamped starting position, used by resets.
func (c *Controller) Initial() int { return c.initial }

// SetPosition moves the divider directly, clamped into range. It does not
// fire callbacks and does not change EndPosition.
func (c *Controller) SetPosition(position int) {
	c.setPosition(clamp(position, c.cfg.Min, c.cfg.Max))
}

// Adopt takes over the live and settled positions of prev, the controller
// this one replaces, clamped into this controller's range. No callbacks fire.
func (c *Controller) Adopt(prev *Controller) {
	if prev == nil {
		return
	}
	c.setPosition(clamp(prev.position, c.cfg.Min, c.cfg.Max))
	c.endPosition = clamp(prev.endPosition, c.cfg.Min, c.cfg.Max)
}

// Close detaches any listeners still registered by an unfinished drag. No
// callbacks fire and the positions are left as they are.
func (c *Controller) Close() {
	c.detach()
	c.resizing = false
	c.dragging = false
}

func (c *Controller) setPosition(position int) {
	c.position = position
	c.latest = position
}

func (c *Controller) reset() {
	c.setPosition(c.initial)
	c.endPosition = c.initial
}

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
