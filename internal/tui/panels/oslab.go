package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aetheronum/controlroom/internal/sim"
	"github.com/aetheronum/controlroom/internal/tui/components"
	"github.com/aetheronum/controlroom/internal/tui/layout"
	"github.com/aetheronum/controlroom/internal/tui/theme"
)

// OSLab is the operating system kernel lab. Everything it shows is a
// fixed snapshot.
type OSLab struct {
	PanelBase
	env *Env
}

// NewOSLab creates the OS lab panel.
func NewOSLab(env *Env) *OSLab {
	return &OSLab{
		PanelBase: NewPanelBase(PanelConfig{ID: "os", Title: "OPERATING SYSTEM KERNEL LAB", MinWidth: 40, MinHeight: 12}),
		env:       env,
	}
}

// Init implements tea.Model.
func (o *OSLab) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (o *OSLab) Update(tea.Msg) (tea.Model, tea.Cmd) { return o, nil }

// View implements tea.Model.
func (o *OSLab) View() string {
	t := o.env.Theme
	w, h := o.Width(), o.Height()
	if w <= 0 || h <= 0 {
		return ""
	}

	lines := []string{
		titleBar(t, "OPERATING SYSTEM KERNEL LAB", "KERNEL: 6.2.0-research | ARCH: x86_64 | SMP: 16 cores", w),
		"",
	}

	narrow := layout.TierForWidth(w) == layout.TierNarrow
	cols := layout.Columns(w, 3, 1)
	left := cols[0] + cols[1] + 1
	procH := len(sim.Processes()) + 4
	if narrow {
		lines = append(lines,
			box(t, "PROCESS MONITOR", processTable(t, inner(w)), w, procH, o.IsFocused()),
			box(t, "SYSTEM RESOURCES", o.resources(t, inner(w)), w, 12, false),
		)
	} else {
		lines = append(lines, row(
			box(t, "PROCESS MONITOR", processTable(t, inner(left)), left, 12, o.IsFocused()),
			box(t, "SYSTEM RESOURCES", o.resources(t, inner(cols[2])), cols[2], 12, false),
		))
	}

	rest := h - lipgloss.Height(strings.Join(lines, "\n"))
	if rest >= 5 {
		lines = append(lines, row(
			box(t, "SYSCALL TRACKER", syscallTable(t, inner(cols[0])), cols[0], rest, false),
			box(t, "BOOT SEQUENCE", bootLog(t, inner(cols[1])), cols[1], rest, false),
			box(t, "NETWORK STATUS", network(t, inner(cols[2])), cols[2], rest, false),
		))
	}
	return components.FitToHeight(strings.Join(lines, "\n"), h)
}

func processTable(t theme.Theme, width int) string {
	head := lipgloss.NewStyle().Foreground(t.Overlay).Bold(true)
	lines := []string{
		head.Render(layout.Truncate(fmt.Sprintf("%-6s %-20s %6s %8s  %s", "PID", "PROCESS", "CPU%", "MEM(KB)", "STATUS"), width)),
	}
	for _, p := range sim.Processes() {
		cpu := lipgloss.NewStyle().Foreground(t.Text)
		if p.CPU > 10 {
			cpu = cpu.Foreground(t.Warning)
		}
		status := lipgloss.NewStyle().Foreground(t.Success)
		if p.Status != "running" {
			status = status.Foreground(t.Overlay)
		}
		line := lipgloss.NewStyle().Foreground(t.Blue).Render(fmt.Sprintf("%-6d", p.PID)) + " " +
			lipgloss.NewStyle().Foreground(t.Text).Render(fmt.Sprintf("%-20s", layout.Truncate(p.Name, 20))) + " " +
			cpu.Render(fmt.Sprintf("%6.1f", p.CPU)) + " " +
			lipgloss.NewStyle().Foreground(t.Subtext).Render(fmt.Sprintf("%8d", p.Memory)) + "  " +
			status.Render(p.Status)
		lines = append(lines, layout.Clip(line, width))
	}
	return strings.Join(lines, "\n")
}

func syscallTable(t theme.Theme, width int) string {
	lines := []string{
		lipgloss.NewStyle().Foreground(t.Overlay).Bold(true).Render(
			layout.Truncate(fmt.Sprintf("%-12s %10s %10s", "SYSCALL", "COUNT", "AVG TIME"), width)),
	}
	for _, s := range sim.Syscalls() {
		line := lipgloss.NewStyle().Foreground(t.Accent).Render(fmt.Sprintf("%-12s", s.Name)) + " " +
			lipgloss.NewStyle().Foreground(t.Text).Render(fmt.Sprintf("%10d", s.Count)) + " " +
			lipgloss.NewStyle().Foreground(t.Subtext).Render(fmt.Sprintf("%10s", s.AvgTime))
		lines = append(lines, layout.Clip(line, width))
	}
	return strings.Join(lines, "\n")
}

func bootLog(t theme.Theme, width int) string {
	boot := sim.BootLog()
	lines := make([]string, len(boot))
	for i, l := range boot {
		lines[i] = lipgloss.NewStyle().Foreground(t.Green).Render(layout.Truncate(l, width))
	}
	return strings.Join(lines, "\n")
}

func (o *OSLab) resources(t theme.Theme, width int) string {
	parts := []string{
		components.Gauge{Label: "CPU", Value: 23, Unit: "%", Width: width, Severity: true}.Render(t),
		components.Gauge{Label: "Memory", Value: 67, Unit: "%", Width: width, Severity: true}.Render(t),
		components.Gauge{Label: "Disk I/O", Value: 12, Unit: "%", Width: width, Severity: true}.Render(t),
		field(t, "Uptime", "47d 12h 34m", width, ""),
		field(t, "Processes", "234", width, ""),
		field(t, "Load Average", "2.34", width, ""),
	}
	return strings.Join(parts, "\n")
}

func network(t theme.Theme, width int) string {
	return strings.Join([]string{
		field(t, "Interface", "eth0 UP", width, t.Success),
		field(t, "IP Address", "192.168.1.100", width, ""),
		field(t, "RX Packets", "2,847,392", width, ""),
		field(t, "TX Packets", "2,934,128", width, ""),
		field(t, "Bandwidth", "1Gbps", width, ""),
	}, "\n")
}

var _ Panel = (*OSLab)(nil)
