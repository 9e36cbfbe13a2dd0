// pointer.go turns terminal mouse events into pointer events for the divider.
//
// pointerScope is the application's global listener registry. The divider
// controller registers its move/up/cancel/leave listeners here when a drag
// starts, so it keeps receiving events after the pointer leaves the one-cell
// divider. Element handlers (the divider's pointer-down, the panes' click
// focus) are called directly by handleMouse after hit-testing.
package app

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-workspace/internal/resize"
)

type scopedListener struct {
	typ     resize.EventType
	handler resize.Handler
}

// pointerScope implements resize.Document on top of the terminal window.
type pointerScope struct {
	width, height int

	nextID    resize.ListenerID
	listeners map[resize.ListenerID]scopedListener
	order     []resize.ListenerID
}

func newPointerScope() *pointerScope {
	return &pointerScope{listeners: map[resize.ListenerID]scopedListener{}}
}

func (s *pointerScope) setSize(width, height int) {
	s.width = width
	s.height = height
}

// Bounds is the whole terminal window.
func (s *pointerScope) Bounds() resize.Rect {
	return resize.Rect{Width: s.width, Height: s.height}
}

func (s *pointerScope) AddListener(t resize.EventType, h resize.Handler) resize.ListenerID {
	s.nextID++
	s.listeners[s.nextID] = scopedListener{typ: t, handler: h}
	s.order = append(s.order, s.nextID)
	return s.nextID
}

func (s *pointerScope) RemoveListener(id resize.ListenerID) {
	if _, ok := s.listeners[id]; !ok {
		return
	}
	delete(s.listeners, id)
	s.order = slices.DeleteFunc(s.order, func(existing resize.ListenerID) bool {
		return existing == id
	})
}

// dispatch delivers ev to every listener registered for its type, in
// registration order. Listeners removed by an earlier listener in the same
// dispatch are skipped.
func (s *pointerScope) dispatch(ev *resize.PointerEvent) {
	if len(s.order) == 0 {
		return
	}
	for _, id := range slices.Clone(s.order) {
		l, ok := s.listeners[id]
		if !ok || l.typ != ev.Type {
			continue
		}
		l.handler(ev)
	}
}

// listenerCount is the number of live global listeners.
func (s *pointerScope) listenerCount() int {
	return len(s.listeners)
}

// pointerEventFromMouse maps a Bubble Tea mouse message to a pointer event
// type. Wheel and non-left buttons report false.
func pointerEventFromMouse(msg tea.MouseMsg) (*resize.PointerEvent, bool) {
	var typ resize.EventType
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil, false
		}
		typ = resize.PointerDown
	case tea.MouseActionMotion:
		typ = resize.PointerMove
	case tea.MouseActionRelease:
		typ = resize.PointerUp
	default:
		return nil, false
	}
	return &resize.PointerEvent{Type: typ, X: msg.X, Y: msg.Y}, true
}
