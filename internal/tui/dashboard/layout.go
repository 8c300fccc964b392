package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aetheronum/controlroom/internal/model"
	"github.com/aetheronum/controlroom/internal/nav"
	"github.com/aetheronum/controlroom/internal/tui/components"
	"github.com/aetheronum/controlroom/internal/tui/layout"
	"github.com/aetheronum/controlroom/internal/tui/panels"
	"github.com/aetheronum/controlroom/internal/tui/styles"
	"github.com/aetheronum/controlroom/internal/tui/theme"
	"github.com/aetheronum/controlroom/internal/wm"
)

// Screen geometry shared by rendering and mouse routing.
const (
	headerHeight      = 2
	footerHeight      = 1
	sidebarSectionRow = 3
)

const terminalButton = "[ TERMINAL ]"

// View implements tea.Model.
func (m *Model) View() string {
	st := m.store.State()
	if !st.IsAuthenticated {
		return m.login.View()
	}
	t := m.env.Theme
	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderHelp(t))
	}

	w, contentH, drawerH := m.regions()
	var content string
	if m.current != nil {
		content = m.current.View()
	}
	parts := []string{m.renderHeader(t, w), components.FitToHeight(content, contentH)}
	if m.termOpen && drawerH > 0 {
		parts = append(parts, m.term.View())
	}
	main := strings.Split(strings.Join(parts, "\n"), "\n")
	for i := range main {
		main[i] = layout.Fit(main[i], w)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(t, st.User, m.height-footerHeight), strings.Join(main, "\n"))
	screen := components.FitToHeight(body, m.height-footerHeight) + "\n" + m.renderFooter(t)
	return wm.Compose(screen, st.Windows, m.width, m.height, m.frame(t))
}

func (m *Model) renderHeader(t theme.Theme, width int) string {
	s := theme.NewStyles(t)
	left := s.Live.Render(m.icons.Live+" SECURE CONNECTION") +
		s.Dim.Render("  │  ") +
		s.Strong.Render(strings.ToUpper(m.nav.Active().Label))

	btn := s.Toggle
	if m.termOpen {
		btn = btn.Reverse(true)
	}
	right := s.Dim.Render(fmt.Sprintf("NODE: %s | SESSION: %s  ", m.cfg.Node, m.session)) +
		btn.Render(terminalButton)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	var line string
	if gap >= 1 {
		line = left + strings.Repeat(" ", gap) + right
	} else {
		room := max(width-lipgloss.Width(terminalButton), 0)
		line = layout.Fit(left, room) + btn.Render(terminalButton)
	}
	rule := s.Rule.Render(strings.Repeat("─", max(width, 0)))
	return line + "\n" + rule
}

func (m *Model) renderSidebar(t theme.Theme, user *model.User, height int) string {
	s := theme.NewStyles(t)
	width := m.sidebarWidth()
	innerW := width - 1
	narrow := layout.TierForWidth(m.width) == layout.TierNarrow

	var lines []string
	if narrow {
		lines = append(lines,
			s.Brand.Render("AE"),
			s.Dim.Render("LAB"),
		)
	} else {
		lines = append(lines,
			lipgloss.NewStyle().Bold(true).Render(styles.GradientText("AETHERONUM", string(t.Primary), string(t.Accent))),
			s.Dim.Render("RESEARCH LAB"),
		)
	}
	lines = append(lines, components.Divider(t, innerW))

	clearance := 0
	if user != nil {
		clearance = user.ClearanceLevel
	}
	active := m.nav.Active().ID
	for i, sec := range nav.Sections() {
		lines = append(lines, m.sectionRow(s, sec, i, sec.ID == active, sec.Allows(clearance), innerW, narrow))
	}

	var foot []string
	if user != nil && !narrow {
		foot = []string{
			components.Divider(t, innerW),
			s.Strong.Render(layout.Truncate(user.Name, innerW)),
			s.Dim.Render(layout.Truncate(user.Department, innerW)),
			s.Muted.Render(layout.Truncate(fmt.Sprintf("Clearance Level: %d", user.ClearanceLevel), innerW)),
		}
	}
	foot = append(foot, s.Alert.Render(layout.Truncate("[L] Logout", innerW)))

	for len(lines)+len(foot) < height {
		lines = append(lines, "")
	}
	lines = append(lines, foot...)
	if len(lines) > height {
		lines = append(lines[:max(height-1, 0)], foot[len(foot)-1])
	}
	for i := range lines {
		lines[i] = layout.Fit(lines[i], innerW)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(t.Surface1).
		Render(strings.Join(lines, "\n"))
}

// logoutRow is the screen row of the sidebar's logout entry.
func (m *Model) logoutRow() int {
	return m.height - footerHeight - 1
}

func (m *Model) sectionRow(s theme.Styles, sec nav.Section, i int, active, allowed bool, width int, narrow bool) string {
	marker := " "
	if i == m.cursor && m.focus == FocusSidebar {
		marker = s.Pointer.Render(m.icons.Pointer)
	}
	num := fmt.Sprintf("%d", (i+1)%10)

	style := s.Muted
	switch {
	case active:
		style = s.Selected
	case !allowed:
		style = s.Blocked
	}

	icon := style.Render(m.icons.Section(sec.ID))
	if narrow {
		return marker + s.Dim.Render(num) + icon
	}

	prefix := marker + s.Dim.Render(num+" ") + icon + " "
	if allowed {
		return prefix + style.Render(sec.Label)
	}
	// The lock marker wins over the label when space is short.
	lock := fmt.Sprintf("%s CL-%d", m.icons.Lock, sec.Clearance)
	room := width - lipgloss.Width(prefix) - lipgloss.Width(lock) - 1
	if room < 1 {
		return prefix + style.Render(sec.Label)
	}
	text := layout.Truncate(sec.Label, room)
	gap := width - lipgloss.Width(prefix) - lipgloss.Width(text) - lipgloss.Width(lock)
	return prefix + style.Render(text) + strings.Repeat(" ", gap) + s.Alert.Render(lock)
}

func (m *Model) renderFooter(t theme.Theme) string {
	if m.notice != "" {
		return theme.NewStyles(t).Notice.Render(layout.Truncate(m.notice, m.width))
	}
	hints := components.Hints(m.keys.Help, m.keys.Next, m.keys.Terminal, m.keys.Window)
	if m.focus == FocusSidebar {
		hints = append(components.Hints(m.keys.Up, m.keys.Down, m.keys.Enter), append(hints, components.Hints(m.keys.Logout, m.keys.Quit)...)...)
	} else {
		hints = append(m.panelHints(), hints...)
	}
	return components.RenderHelpBar(t, hints, m.width)
}

func (m *Model) focusedPanel() panels.Panel {
	switch m.focus {
	case FocusTerminal:
		return m.term
	case FocusContent:
		return m.current
	}
	return nil
}

func (m *Model) panelHints() []components.KeyHint {
	p := m.focusedPanel()
	if p == nil {
		return nil
	}
	var hints []components.KeyHint
	for _, kb := range p.Keybindings() {
		hints = append(hints, components.Hints(kb.Key)...)
	}
	return hints
}

func (m *Model) renderHelp(t theme.Theme) string {
	sections := []components.HelpSection{
		{Title: "Navigation", Hints: components.Hints(m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Next, m.keys.Prev)},
		{Title: "Windows", Hints: append(components.Hints(m.keys.Window, m.keys.Close, m.keys.Minimize), m.nudgeHint())},
		{Title: "Session", Hints: components.Hints(m.keys.Terminal, m.keys.Help, m.keys.Logout, m.keys.Quit)},
	}
	if p := m.current; p != nil {
		var hints []components.KeyHint
		for _, kb := range p.Keybindings() {
			h := kb.Key.Help()
			hints = append(hints, components.KeyHint{Key: h.Key, Desc: kb.Description})
		}
		if len(hints) > 0 {
			sections = append(sections, components.HelpSection{Title: p.Config().Title, Hints: hints})
		}
	}
	return components.HelpOverlay(t, "KEYBOARD SHORTCUTS", sections)
}

func (m *Model) nudgeHint() components.KeyHint {
	return components.KeyHint{Key: "ctrl+arrows", Desc: "move window"}
}

func (m *Model) frame(t theme.Theme) wm.Frame {
	s := theme.NewStyles(t)
	return wm.Frame{
		Border:       t.Surface2,
		ActiveBorder: t.Accent,
		Title:        s.WindowTitle,
		Button:       s.WindowButton,
		ChipStyle:    s.DockChip,
		Content: func(w model.WindowState, width, height int) string {
			return panels.RenderWidget(m.env, w.Component, width, height)
		},
	}
}
