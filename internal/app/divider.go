package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-workspace/internal/resize"
)

const dividerID = "preview-divider"

// clickTracker remembers the last completed click on the divider so a
// second one inside DoubleClickInterval becomes a double click.
type clickTracker struct {
	at    time.Time
	x, y  int
	armed bool
}

// register records a click at (x, y) and reports whether it completes a
// double click.
func (c *clickTracker) register(now time.Time, x, y int) bool {
	if c.armed && x == c.x && y == c.y && now.Sub(c.at) <= DoubleClickInterval {
		*c = clickTracker{}
		return true
	}
	*c = clickTracker{at: now, x: x, y: y, armed: true}
	return false
}

func (m *Model) axis() resize.Axis {
	axis, ok := resize.ParseAxis(m.config.Divider.Axis)
	if !ok {
		return resize.AxisX
	}
	return axis
}

// rebuildDivider creates the controller for the current content area. The
// range depends on the terminal size, so a resize that changes it replaces
// the controller and carries the live and settled positions over.
func (m *Model) rebuildDivider() {
	content := m.contentBounds()
	total := content.Width
	if m.axis() == resize.AxisY {
		total = content.Height
	}
	d := m.config.Divider
	lo, hi := dividerBounds(total, d.Min, d.Max, d.EditorMin)

	previous := m.divider
	if previous != nil {
		current := previous.Config()
		if current.Min == lo && current.Max == hi {
			return
		}
		previous.Close()
	}

	m.divider = resize.New(m.pointer, resize.Config{
		Axis:          m.axis(),
		Disabled:      d.Disabled,
		Initial:       d.Initial,
		Min:           lo,
		Max:           hi,
		Reverse:       d.Reverse,
		Step:          d.Step,
		ShiftStep:     d.ShiftStep,
		Container:     resize.BounderFunc(m.contentBounds),
		OnResizeStart: m.onResizeStart,
		OnResizeEnd:   m.onResizeEnd,
	})
	m.divider.Adopt(previous)
	appLog.Debug("divider range", "axis", m.axis().String(), "min", lo, "max", hi, "position", m.divider.Position())
}

func (m *Model) onResizeStart(ev resize.Event) {
	appLog.Debug("resize start", "position", ev.Position)
	m.status = "Resizing preview"
}

func (m *Model) onResizeEnd(ev resize.Event) {
	appLog.Debug("resize end", "position", ev.Position)
	m.status = fmt.Sprintf("Preview size %d", ev.Position)
	m.previewResized = true
}

// dividerSeparator is the bundle the view and input handlers apply to the
// divider cell.
func (m *Model) dividerSeparator() resize.Separator {
	return m.divider.Separator().Merge(resize.Attrs{
		ID:    dividerID,
		Label: "Resize preview",
	})
}

// handleMouse hit-tests presses against the divider and panes and forwards
// motion and release to the global pointer scope.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.divider == nil {
		return m, nil
	}
	layout := m.calculateLayout()
	dragging := m.divider.IsDragging()

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if !dragging && contains(layout.Preview, msg.X, msg.Y) {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	ev, ok := pointerEventFromMouse(msg)
	if !ok {
		return m, nil
	}
	before := m.divider.Position()

	switch ev.Type {
	case resize.PointerDown:
		m.pressOnDivider = false
		switch {
		case dragging:
			// Panes take no pointer input until the drag ends.
		case contains(layout.Divider, ev.X, ev.Y):
			sep := m.dividerSeparator()
			if sep.Disabled {
				break
			}
			m.pressOnDivider = true
			m.setFocus(focusDivider)
			sep.OnPointerDown(ev)
		case contains(layout.Editor, ev.X, ev.Y):
			m.setFocus(focusEditor)
		case contains(layout.Preview, ev.X, ev.Y):
			m.setFocus(focusPreview)
		}
	case resize.PointerUp:
		m.pointer.dispatch(ev)
		if m.pressOnDivider {
			m.pressOnDivider = false
			if m.clicks.register(m.now(), ev.X, ev.Y) {
				m.dividerSeparator().OnDoubleClick(ev)
				appLog.Debug("divider reset", "position", m.divider.Position())
				m.status = "Preview size reset"
			}
		}
	default:
		m.pointer.dispatch(ev)
	}
	return m, m.afterDividerEvent(before)
}

// handleBlur ends a drag when the terminal loses focus, the way a pointer
// leaving the window does.
func (m *Model) handleBlur() (tea.Model, tea.Cmd) {
	if m.divider == nil {
		return m, nil
	}
	before := m.divider.Position()
	m.pressOnDivider = false
	m.pointer.dispatch(&resize.PointerEvent{Type: resize.PointerLeave})
	return m, m.afterDividerEvent(before)
}

// cancelDrag abandons a drag from the keyboard.
func (m *Model) cancelDrag() tea.Cmd {
	before := m.divider.Position()
	m.pressOnDivider = false
	m.pointer.dispatch(&resize.PointerEvent{Type: resize.PointerCancel})
	return m.afterDividerEvent(before)
}

// afterDividerEvent resizes the panes to the live position and asks for a
// fresh preview once the divider has settled.
func (m *Model) afterDividerEvent(before int) tea.Cmd {
	m.syncPaneSizes()
	resized := m.previewResized || m.divider.Position() != before
	m.previewResized = false
	if !resized || m.divider.IsDragging() {
		return nil
	}
	return m.requestPreviewRender()
}

// syncPaneSizes fits the editor and preview widgets to the current layout.
func (m *Model) syncPaneSizes() {
	layout := m.calculateLayout()
	m.editor.SetWidth(max(0, layout.Editor.Width-editPane.GetHorizontalFrameSize()))
	m.editor.SetHeight(max(0, layout.Editor.Height-editPane.GetVerticalFrameSize()-paneHeaderRows))
	m.viewport.Width = max(0, layout.Preview.Width-previewPane.GetHorizontalFrameSize())
	m.viewport.Height = max(0, layout.Preview.Height-previewPane.GetVerticalFrameSize()-paneHeaderRows)
}
