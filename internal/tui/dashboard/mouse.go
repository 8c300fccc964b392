package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/aetheronum/controlroom/internal/nav"
)

// handleMouse routes a mouse event: the window layer gets first refusal,
// then the sidebar and the header's terminal button.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.showHelp {
		return nil
	}
	if m.wm.HandleMouse(msg, m.height) {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	sw := m.sidebarWidth()
	if msg.X < sw {
		if i := msg.Y - sidebarSectionRow; i >= 0 && i < len(nav.Sections()) {
			m.cursor = i
			m.setFocus(FocusSidebar)
			return m.navigate(nav.Sections()[i].ID)
		}
		if msg.Y == m.logoutRow() {
			return m.logout()
		}
		m.setFocus(FocusSidebar)
		return nil
	}

	if msg.Y == 0 {
		btn := ansi.StringWidth(terminalButton)
		if msg.X >= m.width-btn && msg.X < m.width {
			m.toggleTerminal()
		}
		return nil
	}

	_, contentH, _ := m.regions()
	if msg.Y >= headerHeight+contentH && msg.Y < m.height-footerHeight && m.termOpen {
		m.setFocus(FocusTerminal)
		return nil
	}
	m.setFocus(FocusContent)
	return nil
}
