package panels

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aetheronum/controlroom/internal/model"
	"github.com/aetheronum/controlroom/internal/sim"
	"github.com/aetheronum/controlroom/internal/store"
	"github.com/aetheronum/controlroom/internal/tui/components"
	"github.com/aetheronum/controlroom/internal/tui/layout"
	"github.com/aetheronum/controlroom/internal/tui/styles"
	"github.com/aetheronum/controlroom/internal/tui/theme"
)

// RecentLogLimit is how many log lines the dashboard shows.
const RecentLogLimit = 10

// Dashboard is the command dashboard: status tiles, live telemetry, the
// system log tail and active projects. While mounted it drives the
// metrics walk and the log generator.
type Dashboard struct {
	PanelBase
	env         *Env
	lastMetrics time.Time
}

// NewDashboard creates the dashboard panel.
func NewDashboard(env *Env) *Dashboard {
	return &Dashboard{
		PanelBase: NewPanelBase(PanelConfig{ID: "dashboard", Title: "COMMAND DASHBOARD", MinWidth: 40, MinHeight: 12}),
		env:       env,
	}
}

// Init implements tea.Model.
func (d *Dashboard) Init() tea.Cmd { return nil }

// Mount re-applies the project seed and starts telemetry.
func (d *Dashboard) Mount() tea.Cmd {
	for _, p := range d.env.Seed {
		d.env.Store.Dispatch(store.UpdateProject{ID: p.ID, Patch: p.FullPatch()})
	}
	d.lastMetrics = d.env.now()
	return tea.Batch(
		d.env.Sched.Start(sim.TaskMetrics, d.env.Ticks.MetricsInterval()),
		d.env.Sched.Start(sim.TaskLogs, d.env.Ticks.LogsInterval()),
	)
}

// Unmount stops telemetry.
func (d *Dashboard) Unmount() {
	d.env.Sched.Cancel(sim.TaskMetrics)
	d.env.Sched.Cancel(sim.TaskLogs)
}

// Update implements tea.Model. Ticks reaching here have already been
// accepted by the scheduler.
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	tick, ok := msg.(sim.TickMsg)
	if !ok {
		return d, nil
	}
	switch tick.Task {
	case sim.TaskMetrics:
		elapsed := tick.At.Sub(d.lastMetrics)
		d.lastMetrics = tick.At
		patch := sim.NextMetrics(d.env.Rand, d.env.Store.State().Metrics, elapsed)
		d.env.Store.Dispatch(store.UpdateMetrics{Patch: patch})
	case sim.TaskLogs:
		d.env.Store.Dispatch(store.AddLog{Entry: sim.RandomLog(d.env.Rand, tick.At)})
	}
	return d, nil
}

// View implements tea.Model.
func (d *Dashboard) View() string {
	t := d.env.Theme
	st := d.env.Store.State()
	w, h := d.Width(), d.Height()
	if w <= 0 || h <= 0 {
		return ""
	}

	var name, dept, clearance string
	if st.User != nil {
		name, dept = st.User.Name, st.User.Department
		clearance = fmt.Sprintf("CL-%d", st.User.ClearanceLevel)
	}

	live := lipgloss.NewStyle().Foreground(t.Success).Render("● LIVE") + "  " + d.env.now().Format(time.TimeOnly)
	lines := []string{
		spread(lipgloss.NewStyle().Bold(true).Foreground(t.Text).Render("COMMAND DASHBOARD"), live, w),
		lipgloss.NewStyle().Foreground(t.Overlay).Render(layout.Truncate("Welcome back, "+name+" | "+dept, w)),
		"",
		d.tiles(t, clearance, w),
	}
	used := 3 + 4

	midH := min(12, max(h-used-6, 6))
	var mid string
	if layout.TierForWidth(w) == layout.TierNarrow {
		mid = lipgloss.JoinVertical(lipgloss.Left,
			box(t, "SYSTEM METRICS", d.metrics(t, st.Metrics, inner(w)), w, midH, false),
			box(t, "SYSTEM LOGS", d.logs(t, st.Logs, inner(w), midH-3), w, midH, false),
		)
		used += 2 * midH
	} else {
		cols := layout.Columns(w, 3, 1)
		left := cols[0] + cols[1] + 1
		mid = row(
			box(t, "SYSTEM METRICS", d.metrics(t, st.Metrics, inner(left)), left, midH, false),
			box(t, "SYSTEM LOGS", d.logs(t, st.Logs, inner(cols[2]), midH-3), cols[2], midH, false),
		)
		used += midH
	}
	lines = append(lines, mid)

	if rest := h - used; rest >= 4 {
		lines = append(lines, box(t, "ACTIVE PROJECTS", d.projects(t, st.Projects, inner(w)), w, rest, false))
	}
	return components.FitToHeight(strings.Join(lines, "\n"), h)
}

func (d *Dashboard) tiles(t theme.Theme, clearance string, width int) string {
	items := []struct {
		label, value string
		color        lipgloss.Color
	}{
		{"System Status", "OPERATIONAL", t.Success},
		{"Security Level", "MAXIMUM", t.Warning},
		{"Lab Zones", "7 ACTIVE", t.Blue},
		{"Clearance", clearance, t.Mauve},
	}
	cols := layout.Columns(width, len(items), 1)
	blocks := make([]string, len(items))
	for i, it := range items {
		value := lipgloss.NewStyle().Bold(true).Foreground(it.color).Render(it.value)
		blocks[i] = components.NewBox(t).
			WithTitle(it.label).
			WithContent(value).
			WithSize(cols[i], 4).
			WithFocus(false, "").
			Render()
	}
	return row(blocks...)
}

func (d *Dashboard) metrics(t theme.Theme, m model.SystemMetrics, width int) string {
	gauges := []components.Gauge{
		{Label: "CPU Usage", Value: m.CPU, Unit: "%", Width: width, Severity: true},
		{Label: "Memory", Value: m.Memory, Unit: "%", Width: width, Severity: true},
		{Label: "Network", Value: m.Network, Unit: "%", Width: width},
	}
	parts := make([]string, 0, len(gauges)+1)
	for _, g := range gauges {
		parts = append(parts, g.Render(t))
	}
	stats := fmt.Sprintf("Active Users %d  •  Processes %d  •  Uptime %s", m.ActiveUsers, m.RunningProcesses, m.Uptime)
	parts = append(parts, lipgloss.NewStyle().Foreground(t.Subtext).Render(layout.Truncate(stats, width)))
	return strings.Join(parts, "\n")
}

func (d *Dashboard) logs(t theme.Theme, logs []model.LogEntry, width, limit int) string {
	n := min(len(logs), RecentLogLimit, max(limit, 0))
	if n == 0 {
		return lipgloss.NewStyle().Foreground(t.Overlay).Render("No log entries")
	}
	lines := make([]string, n)
	for i, e := range logs[:n] {
		lines[i] = logLine(t, e, width)
	}
	return strings.Join(lines, "\n")
}

// logLine renders one log entry as "▲ 15:04:05 MODULE message".
func logLine(t theme.Theme, e model.LogEntry, width int) string {
	color := styles.LevelColor(t, e.Level)
	head := lipgloss.NewStyle().Foreground(color).Render(styles.LevelIcon(e.Level)) + " " +
		lipgloss.NewStyle().Foreground(t.Overlay).Render(e.Timestamp.Format(time.TimeOnly)) + " " +
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(e.Module)
	rest := max(width-lipgloss.Width(head)-1, 0)
	return head + " " + lipgloss.NewStyle().Foreground(t.Text).Render(layout.Truncate(e.Message, rest))
}

func (d *Dashboard) projects(t theme.Theme, projects []model.Project, width int) string {
	if len(projects) == 0 {
		return lipgloss.NewStyle().Foreground(t.Overlay).Render("No active projects")
	}
	var b strings.Builder
	for i, p := range projects {
		if i > 0 {
			b.WriteString("\n")
		}
		tags := lipgloss.NewStyle().Foreground(styles.StatusColor(t, p.Status)).Render(strings.ToUpper(string(p.Status))) + " " +
			lipgloss.NewStyle().Foreground(styles.PriorityColor(t, p.Priority)).Render(strings.ToUpper(string(p.Priority)))
		b.WriteString(spread(lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render(p.Name), tags, width) + "\n")

		pct := fmt.Sprintf(" %3d%%", p.Progress)
		barW := max(width/2-len(pct), 4)
		meta := strings.Join(p.AssignedTo, ", ")
		if !p.Deadline.IsZero() {
			meta += "  due " + p.Deadline.Format(time.DateOnly)
		}
		left := styles.ProgressBar(t, float64(p.Progress)/100, barW, t.Blue) + pct
		b.WriteString(spread(left, lipgloss.NewStyle().Foreground(t.Overlay).Render(meta), width))
	}
	return b.String()
}

var _ Panel = (*Dashboard)(nil)
