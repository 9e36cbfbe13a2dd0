package resize

// EventType identifies a pointer event delivered through a Document.
type EventType int

const (
	PointerDown EventType = iota
	PointerMove
	PointerUp
	PointerCancel
	PointerLeave
)

func (t EventType) String() string {
	switch t {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	case PointerCancel:
		return "pointercancel"
	case PointerLeave:
		return "pointerleave"
	default:
		return "unknown"
	}
}

// Rect is a bounding box in cell coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Bounder reports a bounding box, usually of an element laid out by the host.
type Bounder interface {
	Bounds() Rect
}

// BounderFunc adapts a function to Bounder.
type BounderFunc func() Rect

// Bounds calls f.
func (f BounderFunc) Bounds() Rect { return f() }

// ListenerID identifies a registered listener so it can be removed.
type ListenerID uint64

// Handler receives pointer events.
type Handler func(*PointerEvent)

// Document is the global pointer scope. Listeners added here receive events
// regardless of which element is under the pointer. Bounds is the viewport.
type Document interface {
	Bounder
	AddListener(t EventType, h Handler) ListenerID
	RemoveListener(id ListenerID)
}

// PointerEvent is a pointer position plus DOM-style propagation flags.
type PointerEvent struct {
	Type EventType
	X, Y int

	stopped   bool
	prevented bool
}

// StopPropagation keeps the event from reaching further handlers.
func (e *PointerEvent) StopPropagation() { e.stopped = true }

// PreventDefault suppresses the host's default handling (text selection).
func (e *PointerEvent) PreventDefault() { e.prevented = true }

// PropagationStopped reports whether a handler called StopPropagation.
func (e *PointerEvent) PropagationStopped() bool { return e.stopped }

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *PointerEvent) DefaultPrevented() bool { return e.prevented }

// PointerDown starts a drag. It is bound to the divider element through
// Separator.OnPointerDown.
func (c *Controller) PointerDown(ev *PointerEvent) {
	if c.cfg.Disabled {
		return
	}
	ev.StopPropagation()
	c.resizing = true
	c.dragging = true

	// A second press without a release keeps the existing listener set.
	if len(c.listeners) == 0 {
		c.listeners = append(c.listeners,
			c.doc.AddListener(PointerMove, c.pointerMove),
			c.doc.AddListener(PointerUp, c.pointerUp),
			c.doc.AddListener(PointerCancel, c.pointerUp),
			c.doc.AddListener(PointerLeave, c.pointerUp),
		)
	}

	if c.cfg.OnResizeStart != nil {
		c.cfg.OnResizeStart(Event{Position: c.latest})
	}
}

func (c *Controller) pointerMove(ev *PointerEvent) {
	if !c.resizing || c.cfg.Disabled {
		return
	}
	ev.StopPropagation()
	ev.PreventDefault()

	c.setPosition(clamp(c.pointerPosition(ev), c.cfg.Min, c.cfg.Max))
}

func (c *Controller) pointerUp(ev *PointerEvent) {
	if c.cfg.Disabled || !c.resizing {
		return
	}
	ev.StopPropagation()

	c.resizing = false
	c.dragging = false
	c.endPosition = c.latest
	c.detach()

	if c.cfg.OnResizeEnd != nil {
		c.cfg.OnResizeEnd(Event{Position: c.latest})
	}
}

// pointerPosition converts the pointer coordinate on the configured axis
// into an unclamped position inside the reference frame.
func (c *Controller) pointerPosition(ev *PointerEvent) int {
	var frame Rect
	if c.cfg.Container != nil {
		frame = c.cfg.Container.Bounds()
	} else {
		frame = c.doc.Bounds()
	}

	near, size, coord := frame.X, frame.Width, ev.X
	if c.cfg.Axis == AxisY {
		near, size, coord = frame.Y, frame.Height, ev.Y
	}

	offset := coord - near
	if c.cfg.Reverse {
		return size - offset
	}
	return offset
}

func (c *Controller) detach() {
	for _, id := range c.listeners {
		c.doc.RemoveListener(id)
	}
	c.listeners = c.listeners[:0]
}
