package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type noticeExpiredMsg struct {
	gen uint64
}

// flash shows text in the footer for NoticeDuration. A newer notice
// replaces an older one and outlives its timer.
func (m *Model) flash(text string) tea.Cmd {
	m.noticeGen++
	m.notice = text
	gen := m.noticeGen
	return tea.Tick(NoticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{gen: gen}
	})
}
