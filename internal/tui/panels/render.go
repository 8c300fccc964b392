package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aetheronum/controlroom/internal/tui/components"
	"github.com/aetheronum/controlroom/internal/tui/layout"
	"github.com/aetheronum/controlroom/internal/tui/theme"
)

// spread places left and right on one line of width cells.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return layout.Clip(left, max(width-lipgloss.Width(right)-1, 0)) + " " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

// titleBar is the heading row every section starts with. The meta text is
// dropped when both do not fit.
func titleBar(t theme.Theme, title, meta string, width int) string {
	l := lipgloss.NewStyle().Bold(true).Foreground(t.Text).Render(layout.Truncate(title, width))
	if lipgloss.Width(title)+lipgloss.Width(meta)+1 > width {
		return l
	}
	r := lipgloss.NewStyle().Foreground(t.Overlay).Render(meta)
	return spread(l, r, width)
}

// field renders "label ........ value" across width.
func field(t theme.Theme, label, value string, width int, valueColor lipgloss.Color) string {
	if valueColor == "" {
		valueColor = t.Text
	}
	return spread(
		lipgloss.NewStyle().Foreground(t.Subtext).Render(label),
		lipgloss.NewStyle().Foreground(valueColor).Render(value),
		width,
	)
}

// box draws a titled, focus-aware panel section.
func box(t theme.Theme, title, content string, width, height int, focused bool) string {
	return components.NewBox(t).
		WithTitle(title).
		WithContent(content).
		WithSize(width, height).
		WithFocus(focused, t.Primary).
		Render()
}

// row joins rendered blocks left to right with a one-cell gap.
func row(blocks ...string) string {
	parts := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// inner is the content width of a box width cells wide.
func inner(width int) int {
	return max(width-4, 1)
}
