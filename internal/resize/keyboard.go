package resize

// Key names understood by KeyDown. They match the names Bubble Tea reports
// for the unmodified keys.
const (
	KeyLeft  = "left"
	KeyRight = "right"
	KeyUp    = "up"
	KeyDown  = "down"
	KeyEnter = "enter"
)

// KeyEvent is a key press on the focused divider.
type KeyEvent struct {
	Key   string
	Shift bool

	stopped bool
}

// StopPropagation keeps the key from reaching further handlers.
func (e *KeyEvent) StopPropagation() { e.stopped = true }

// PropagationStopped reports whether the divider consumed the key.
func (e *KeyEvent) PropagationStopped() bool { return e.stopped }

// KeyDown adjusts the position by one keyboard step. Every accepted key is a
// complete interaction: OnResizeStart and OnResizeEnd both fire and
// EndPosition is updated. Enter resets to the initial position without
// callbacks.
func (c *Controller) KeyDown(ev *KeyEvent) {
	if c.cfg.Disabled {
		return
	}

	if ev.Key == KeyEnter {
		ev.StopPropagation()
		c.reset()
		return
	}

	positive, ok := c.keyDirection(ev.Key)
	if !ok {
		return
	}
	ev.StopPropagation()

	if c.cfg.OnResizeStart != nil {
		c.cfg.OnResizeStart(Event{Position: c.latest})
	}

	step := c.cfg.Step
	if ev.Shift {
		step = c.cfg.ShiftStep
	}
	dir := 1
	if c.cfg.Reverse {
		dir = -1
	}
	if !positive {
		dir = -dir
	}

	c.setPosition(stepWithin(c.position, step*dir, c.cfg.Min, c.cfg.Max))
	c.endPosition = c.position

	if c.cfg.OnResizeEnd != nil {
		c.cfg.OnResizeEnd(Event{Position: c.latest})
	}
}

// stepWithin adds delta to position without overflowing, then clamps the
// result into [minVal, maxVal].
func stepWithin(position, delta, minVal, maxVal int) int {
	switch {
	case delta > 0 && position > maxVal-delta:
		return maxVal
	case delta < 0 && position < minVal-delta:
		return minVal
	}
	return clamp(position+delta, minVal, maxVal)
}

// DoubleClick resets the divider to its initial position.
func (c *Controller) DoubleClick(*PointerEvent) {
	if c.cfg.Disabled {
		return
	}
	c.reset()
}

// keyDirection reports whether key moves the divider in the positive
// direction (right or down). Keys off the configured axis are rejected.
func (c *Controller) keyDirection(key string) (positive bool, ok bool) {
	switch c.cfg.Axis {
	case AxisX:
		switch key {
		case KeyRight:
			return true, true
		case KeyLeft:
			return false, true
		}
	case AxisY:
		switch key {
		case KeyDown:
			return true, true
		case KeyUp:
			return false, true
		}
	}
	return false, false
}
