package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-workspace/internal/config"
	"github.com/treykane/cli-workspace/internal/resize"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestInitialLayoutPlacesDividerBeforePreview(t *testing.T) {
	m := newTestModel(t)
	layout := m.calculateLayout()

	if layout.Divider.X != 69 || layout.Divider.Width != 1 {
		t.Fatalf("expected divider at x=69, got %+v", layout.Divider)
	}
	if layout.Preview.X != 70 || layout.Preview.Width != 50 {
		t.Fatalf("expected preview 70+50, got %+v", layout.Preview)
	}
	if layout.Editor.Width != 69 {
		t.Fatalf("expected editor width 69, got %d", layout.Editor.Width)
	}
	if cfg := m.divider.Config(); cfg.Min != 30 || cfg.Max != 59 {
		t.Fatalf("expected divider range [30,59], got [%d,%d]", cfg.Min, cfg.Max)
	}
}

func TestMouseDragResizesPreviewAndReleasesListeners(t *testing.T) {
	m := newTestModel(t)

	_, _ = m.Update(press(69, 5))
	if !m.divider.IsDragging() {
		t.Fatal("expected drag to start on the divider")
	}
	if m.focus != focusDivider {
		t.Fatalf("expected divider focus, got %s", m.focus)
	}
	if got := m.pointer.listenerCount(); got != 4 {
		t.Fatalf("expected 4 global listeners during drag, got %d", got)
	}

	_, cmd := m.Update(motion(80, 5))
	if got := m.divider.Position(); got != 40 {
		t.Fatalf("expected live position 40, got %d", got)
	}
	if cmd != nil {
		t.Fatal("no preview render while dragging")
	}
	if got := m.divider.EndPosition(); got != 50 {
		t.Fatalf("end position should stay 50 until release, got %d", got)
	}

	_, cmd = m.Update(release(80, 5))
	if m.divider.IsDragging() {
		t.Fatal("expected drag to end on release")
	}
	if got := m.divider.EndPosition(); got != 40 {
		t.Fatalf("expected settled position 40, got %d", got)
	}
	if got := m.pointer.listenerCount(); got != 0 {
		t.Fatalf("expected listeners removed, got %d", got)
	}
	if cmd == nil {
		t.Fatal("expected a preview render after the drag settles")
	}
	if got := m.calculateLayout().Preview.Width; got != 40 {
		t.Fatalf("expected preview width 40, got %d", got)
	}
}

func TestMouseDragClampsToRange(t *testing.T) {
	m := newTestModel(t)

	_, _ = m.Update(press(69, 5))
	_, _ = m.Update(motion(0, 5))
	if got := m.divider.Position(); got != 59 {
		t.Fatalf("expected clamp to max 59, got %d", got)
	}
	_, _ = m.Update(motion(119, 5))
	if got := m.divider.Position(); got != 30 {
		t.Fatalf("expected clamp to min 30, got %d", got)
	}
	_, _ = m.Update(release(119, 5))
}

func TestPressOutsideDividerFocusesPane(t *testing.T) {
	m := newTestModel(t)

	_, _ = m.Update(press(90, 5))
	if m.focus != focusPreview || m.divider.IsDragging() {
		t.Fatalf("expected preview focus without drag, got %s", m.focus)
	}
	_, _ = m.Update(release(90, 5))

	_, _ = m.Update(press(10, 5))
	if m.focus != focusEditor {
		t.Fatalf("expected editor focus, got %s", m.focus)
	}
	if got := m.pointer.listenerCount(); got != 0 {
		t.Fatalf("pane clicks must not register listeners, got %d", got)
	}
}

func TestDoubleClickResetsDivider(t *testing.T) {
	m := newTestModel(t)
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }
	m.divider.SetPosition(45)
	at := m.calculateLayout().Divider.X

	_, _ = m.Update(press(at, 5))
	_, _ = m.Update(release(at, 5))
	if got := m.divider.Position(); got != 45 {
		t.Fatalf("single click must not move the divider, got %d", got)
	}

	clock = clock.Add(DoubleClickInterval / 2)
	_, _ = m.Update(press(at, 5))
	_, _ = m.Update(release(at, 5))
	if got := m.divider.Position(); got != 50 {
		t.Fatalf("expected reset to 50, got %d", got)
	}
	if got := m.divider.EndPosition(); got != 50 {
		t.Fatalf("expected settled position 50 after reset, got %d", got)
	}
}

func TestSlowSecondClickIsNotDoubleClick(t *testing.T) {
	m := newTestModel(t)
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }
	m.divider.SetPosition(45)
	at := m.calculateLayout().Divider.X

	_, _ = m.Update(press(at, 5))
	_, _ = m.Update(release(at, 5))
	clock = clock.Add(DoubleClickInterval + time.Millisecond)
	_, _ = m.Update(press(at, 5))
	_, _ = m.Update(release(at, 5))
	if got := m.divider.Position(); got != 45 {
		t.Fatalf("expected position 45 to survive slow clicks, got %d", got)
	}
}

func TestBlurEndsDrag(t *testing.T) {
	m := newTestModel(t)

	_, _ = m.Update(press(69, 5))
	_, _ = m.Update(motion(75, 5))
	_, _ = m.Update(tea.BlurMsg{})

	if m.divider.IsDragging() {
		t.Fatal("expected blur to end the drag")
	}
	if got := m.divider.EndPosition(); got != 45 {
		t.Fatalf("expected settled position 45, got %d", got)
	}
	if got := m.pointer.listenerCount(); got != 0 {
		t.Fatalf("expected listeners removed, got %d", got)
	}

	// Motion after the drag ended is ignored.
	_, _ = m.Update(motion(90, 5))
	if got := m.divider.Position(); got != 45 {
		t.Fatalf("expected position to stay 45, got %d", got)
	}
}

func TestEscCancelsDrag(t *testing.T) {
	m := newTestModel(t)

	_, _ = m.Update(press(69, 5))
	_, _ = m.Update(motion(75, 5))
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.divider.IsDragging() || m.pointer.listenerCount() != 0 {
		t.Fatal("expected esc to cancel the drag")
	}
	if got := m.divider.EndPosition(); got != 45 {
		t.Fatalf("expected settled position 45, got %d", got)
	}
}

func TestWindowResizeRebuildsDividerKeepingPosition(t *testing.T) {
	m := newTestModel(t)
	m.divider.SetPosition(55)
	old := m.divider

	_, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	if m.divider != old {
		t.Fatal("same width must keep the controller")
	}

	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.divider == old {
		t.Fatal("expected a new controller for a new range")
	}
	if cfg := m.divider.Config(); cfg.Max != 39 {
		t.Fatalf("expected max 39, got %d", cfg.Max)
	}
	if got := m.divider.Position(); got != 39 {
		t.Fatalf("expected position clamped to 39, got %d", got)
	}
}

func TestWindowResizeKeepsSettledPosition(t *testing.T) {
	m := newTestModel(t)
	_, _ = m.Update(press(69, 5))
	_, _ = m.Update(motion(80, 5))
	_, _ = m.Update(release(80, 5))
	if got := m.divider.EndPosition(); got != 40 {
		t.Fatalf("expected settled position 40, got %d", got)
	}

	_, _ = m.Update(tea.WindowSizeMsg{Width: 110, Height: 30})
	if got := m.divider.Config().Max; got != 49 {
		t.Fatalf("expected a rebuilt range with max 49, got %d", got)
	}
	if got := m.divider.Position(); got != 40 {
		t.Fatalf("expected live position 40, got %d", got)
	}
	if got := m.divider.EndPosition(); got != 40 {
		t.Fatalf("resize must not move the settled position, got %d", got)
	}
	if got := m.dividerSummary(); strings.Contains(got, "settled") {
		t.Fatalf("expected no settled marker when positions agree, got %q", got)
	}
}

func TestWindowResizeDuringDragDetachesOldListeners(t *testing.T) {
	m := newTestModel(t)
	_, _ = m.Update(press(69, 5))
	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if got := m.pointer.listenerCount(); got != 0 {
		t.Fatalf("expected the replaced controller to detach, got %d", got)
	}
	if m.divider.IsDragging() {
		t.Fatal("new controller must not inherit the drag")
	}
}

func TestDisabledDividerIgnoresPointerAndIsSkippedByFocus(t *testing.T) {
	m := newTestModel(t, func(cfg *config.Config) {
		cfg.Divider.Disabled = true
	})

	_, _ = m.Update(press(69, 5))
	if m.divider.IsDragging() || m.pointer.listenerCount() != 0 {
		t.Fatal("disabled divider must not start a drag")
	}
	if m.focus != focusEditor {
		t.Fatalf("pressing a disabled divider must not focus it, got %s", m.focus)
	}

	m.setFocus(focusEditor)
	m.cycleFocus(1)
	if m.focus != focusPreview {
		t.Fatalf("expected focus to skip the disabled divider, got %s", m.focus)
	}
}

func TestVerticalAxisStacksPanes(t *testing.T) {
	m := newTestModel(t, func(cfg *config.Config) {
		cfg.Divider.Axis = "y"
		cfg.Divider.Initial = 12
		cfg.Divider.Min = 5
		cfg.Divider.EditorMin = 5
		cfg.Divider.Reverse = false
	})
	layout := m.calculateLayout()
	if layout.Preview.Y != 0 || layout.Preview.Height != 12 {
		t.Fatalf("expected preview on top with height 12, got %+v", layout.Preview)
	}
	if layout.Divider.Y != 12 || layout.Divider.Width != 120 {
		t.Fatalf("expected divider row at y=12, got %+v", layout.Divider)
	}

	_, _ = m.Update(press(10, 12))
	_, _ = m.Update(motion(10, 20))
	_, _ = m.Update(release(10, 20))
	if got := m.divider.EndPosition(); got != 20 {
		t.Fatalf("expected settled position 20, got %d", got)
	}
	if sep := m.dividerSeparator(); sep.Orientation != resize.OrientationHorizontal {
		t.Fatalf("expected horizontal separator, got %q", sep.Orientation)
	}
}

func TestDividerSeparatorCarriesAttributes(t *testing.T) {
	m := newTestModel(t)
	sep := m.dividerSeparator()

	if sep.Role != resize.RoleSeparator || sep.ID != dividerID || sep.Label == "" {
		t.Fatalf("unexpected separator attributes: %+v", sep)
	}
	if sep.ValueNow != 50 || sep.ValueMin != 30 || sep.ValueMax != 59 {
		t.Fatalf("unexpected separator values: %+v", sep)
	}
	if sep.Orientation != resize.OrientationVertical {
		t.Fatalf("expected vertical separator, got %q", sep.Orientation)
	}
}

func TestClickTrackerRequiresSameCell(t *testing.T) {
	var c clickTracker
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if c.register(now, 1, 1) {
		t.Fatal("first click is never a double click")
	}
	if c.register(now.Add(time.Millisecond), 1, 2) {
		t.Fatal("clicks on different cells are not a double click")
	}
	if !c.register(now.Add(2*time.Millisecond), 1, 2) {
		t.Fatal("expected a double click")
	}
	if c.register(now.Add(3*time.Millisecond), 1, 2) {
		t.Fatal("a third click starts over")
	}
}

func TestPanesIgnorePointerWhileDragging(t *testing.T) {
	m := newTestModel(t)
	_, _ = m.Update(press(69, 5))
	_, _ = m.Update(press(10, 5))

	if m.focus != focusDivider {
		t.Fatalf("pane press during a drag must not move focus, got %s", m.focus)
	}
	if got := m.pointer.listenerCount(); got != 4 {
		t.Fatalf("expected a single listener set, got %d", got)
	}
	_, _ = m.Update(release(10, 5))
}
