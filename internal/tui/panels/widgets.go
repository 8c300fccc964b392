package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aetheronum/controlroom/internal/model"
	"github.com/aetheronum/controlroom/internal/tui/components"
	"github.com/aetheronum/controlroom/internal/tui/layout"
)

// Floating window kinds.
const (
	WidgetMonitor  = "monitor"
	WidgetTerminal = "terminal"
	WidgetNotebook = "notebook"
)

// Widget describes a kind of floating window.
type Widget struct {
	Component string
	Title     string
	Size      model.Size
}

// Widgets lists the window kinds in the order the open key cycles them.
func Widgets() []Widget {
	return []Widget{
		{WidgetMonitor, "System Monitor", model.Size{Width: 40, Height: 12}},
		{WidgetTerminal, "Terminal History", model.Size{Width: 56, Height: 12}},
		{WidgetNotebook, "Research Notes", model.Size{Width: 44, Height: 12}},
	}
}

// RenderWidget draws the body of a floating window width by height cells.
// Unknown components render an empty body.
func RenderWidget(env *Env, component string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	st := env.Store.State()
	var body string
	switch component {
	case WidgetMonitor:
		body = monitorWidget(env, st.Metrics, width)
	case WidgetTerminal:
		body = historyWidget(env, st.TerminalHistory, width, height)
	case WidgetNotebook:
		body = notesWidget(env, st.Notes, width, height)
	}
	return components.FitToHeight(body, height)
}

func monitorWidget(env *Env, m model.SystemMetrics, width int) string {
	t := env.Theme
	return strings.Join([]string{
		components.Gauge{Label: "CPU", Value: m.CPU, Unit: "%", Width: width, Severity: true}.Render(t),
		components.Gauge{Label: "Memory", Value: m.Memory, Unit: "%", Width: width, Severity: true}.Render(t),
		components.Gauge{Label: "Network", Value: m.Network, Unit: "%", Width: width}.Render(t),
		field(t, "Users", fmt.Sprint(m.ActiveUsers), width, ""),
		field(t, "Processes", fmt.Sprint(m.RunningProcesses), width, ""),
	}, "\n")
}

func historyWidget(env *Env, history []model.TerminalCommand, width, height int) string {
	t := env.Theme
	if len(history) == 0 {
		return lipgloss.NewStyle().Foreground(t.Overlay).Render("No commands yet")
	}
	lines := make([]string, 0, height)
	for _, c := range history {
		if len(lines) >= height {
			break
		}
		head := lipgloss.NewStyle().Foreground(t.Overlay).Render(c.Timestamp.Format(time.TimeOnly)) + " " +
			lipgloss.NewStyle().Foreground(t.Accent).Render("$ "+c.Command)
		lines = append(lines, layout.Clip(head, width))
		if c.Output != "" && len(lines) < height {
			lines = append(lines, lipgloss.NewStyle().Foreground(t.Subtext).Render(layout.Truncate("  "+c.Output, width)))
		}
	}
	return strings.Join(lines, "\n")
}

func notesWidget(env *Env, notes []model.Note, width, height int) string {
	t := env.Theme
	if len(notes) == 0 {
		return lipgloss.NewStyle().Foreground(t.Overlay).Render("No notes")
	}
	lines := make([]string, 0, min(len(notes), height))
	for _, n := range notes[:min(len(notes), height)] {
		date := n.Modified.Format(time.DateOnly)
		lines = append(lines, spread(
			lipgloss.NewStyle().Foreground(t.Text).Render(layout.Truncate(n.Title, max(width-len(date)-1, 1))),
			lipgloss.NewStyle().Foreground(t.Overlay).Render(date),
			width))
	}
	return strings.Join(lines, "\n")
}
