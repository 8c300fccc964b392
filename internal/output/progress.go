package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/aetheronum/controlroom/internal/tui/theme"
)

// ProgressMsg prints one-line status messages prefixed with an icon.
type ProgressMsg struct {
	w      io.Writer
	color  bool
	indent string
}

// ProgressWriter returns a ProgressMsg that styles icons only when w is
// a color terminal.
func ProgressWriter(w io.Writer) *ProgressMsg {
	return &ProgressMsg{w: w, color: useColor(w)}
}

// SetIndent prefixes every message with indent.
func (p *ProgressMsg) SetIndent(indent string) *ProgressMsg {
	p.indent = indent
	return p
}

func (p *ProgressMsg) Success(msg string) { p.emit("✓", theme.Current().Success, msg) }

func (p *ProgressMsg) Successf(format string, args ...any) {
	p.Success(fmt.Sprintf(format, args...))
}

func (p *ProgressMsg) Warning(msg string) { p.emit("⚠", theme.Current().Warning, msg) }

func (p *ProgressMsg) Info(msg string) { p.emit("ℹ", theme.Current().Info, msg) }

func (p *ProgressMsg) emit(icon string, c lipgloss.Color, msg string) {
	if p.color {
		icon = lipgloss.NewStyle().Foreground(c).Render(icon)
	}
	fmt.Fprintf(p.w, "%s%s %s\n", p.indent, icon, msg)
}
