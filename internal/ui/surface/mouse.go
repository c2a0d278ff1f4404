package surface

import tea "github.com/charmbracelet/bubbletea"

// FromMouse converts Bubble Tea mouse input into a pointer event. Wheel input
// is not a pointer transition and reports false.
func FromMouse(msg tea.MouseMsg) (PointerEvent, bool) {
	event := tea.MouseEvent(msg)
	if event.IsWheel() {
		return PointerEvent{}, false
	}

	ev := PointerEvent{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		ev.Kind = PointerDown
	case tea.MouseActionRelease:
		ev.Kind = PointerUp
	case tea.MouseActionMotion:
		ev.Kind = PointerMove
	default:
		return PointerEvent{}, false
	}
	return ev, true
}

// DispatchMouse converts msg and dispatches it. It reports whether the message
// was a pointer transition.
func (s *Surface) DispatchMouse(msg tea.MouseMsg) bool {
	ev, ok := FromMouse(msg)
	if !ok {
		return false
	}
	s.Dispatch(ev)
	return true
}
