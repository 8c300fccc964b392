package wm

import tea "github.com/charmbracelet/bubbletea"

// HandleMouse translates a terminal mouse event into window manager
// operations. height is the screen height used for dock placement. It
// reports whether the event was consumed; unconsumed events belong to
// whatever lies beneath the window layer.
func (m *Manager) HandleMouse(msg tea.MouseMsg, height int) bool {
	// While the pointer is grabbed every move and release goes to the
	// dragged window, wherever the pointer is.
	if m.active != nil {
		switch msg.Action {
		case tea.MouseActionMotion:
			m.PointerMove(msg.X, msg.Y)
			return true
		case tea.MouseActionRelease:
			m.PointerUp()
			return true
		}
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}

	hit := HitTest(m.store.State().Windows, height, msg.X, msg.Y)
	switch hit.Area {
	case AreaHeader:
		return m.PointerDown(hit.ID, msg.X, msg.Y)
	case AreaMinimize, AreaDockChip:
		m.ToggleMinimize(hit.ID)
		return true
	case AreaClose:
		m.Close(hit.ID)
		return true
	case AreaBody:
		m.Focus(hit.ID)
		return true
	}
	return false
}
