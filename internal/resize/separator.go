package resize

// RoleSeparator is the accessibility role exposed by every divider.
const RoleSeparator = "separator"

// Orientation values for Separator.Orientation.
const (
	OrientationVertical   = "vertical"
	OrientationHorizontal = "horizontal"
)

// Separator is the attribute and handler set a host applies to its divider
// element. A divider that moves along X is a vertical bar, so Orientation is
// the opposite of the configured axis.
type Separator struct {
	Role        string
	ValueNow    int
	ValueMin    int
	ValueMax    int
	Orientation string
	Disabled    bool

	// Caller supplied, never computed.
	ID    string
	Label string

	OnPointerDown func(*PointerEvent)
	OnKeyDown     func(*KeyEvent)
	OnDoubleClick func(*PointerEvent)
}

// Attrs are caller supplied divider attributes. Only fields the controller
// does not compute can be set this way.
type Attrs struct {
	ID    string
	Label string
}

// Separator derives the current bundle. It reflects the live position, so
// hosts call it again after every event.
func (c *Controller) Separator() Separator {
	orientation := OrientationHorizontal
	if c.cfg.Axis == AxisX {
		orientation = OrientationVertical
	}
	return Separator{
		Role:          RoleSeparator,
		ValueNow:      c.position,
		ValueMin:      c.cfg.Min,
		ValueMax:      c.cfg.Max,
		Orientation:   orientation,
		Disabled:      c.cfg.Disabled,
		OnPointerDown: c.PointerDown,
		OnKeyDown:     c.KeyDown,
		OnDoubleClick: c.DoubleClick,
	}
}

// Merge returns s with the non-empty caller attributes applied.
func (s Separator) Merge(attrs Attrs) Separator {
	if attrs.ID != "" {
		s.ID = attrs.ID
	}
	if attrs.Label != "" {
		s.Label = attrs.Label
	}
	return s
}
