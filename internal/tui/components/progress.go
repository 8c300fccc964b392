package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/aetheronum/controlroom/internal/tui/styles"
	"github.com/aetheronum/controlroom/internal/tui/theme"
)

// Gauge is a labelled horizontal bar for a 0-100 reading.
type Gauge struct {
	Label string
	Value float64
	Unit  string
	Width int
	// Severity colors the bar by the usage thresholds instead of the
	// gradient.
	Severity bool
}

// Render draws the label row and the bar below it.
func (g Gauge) Render(t theme.Theme) string {
	w := max(g.Width, 4)
	value := fmt.Sprintf("%.1f%s", g.Value, g.Unit)
	label := lipgloss.NewStyle().Foreground(t.Subtext).Render(g.Label)
	gap := max(w-lipgloss.Width(label)-lipgloss.Width(value), 1)
	valueStyle := lipgloss.NewStyle().Foreground(t.Text)
	if g.Severity {
		valueStyle = valueStyle.Foreground(styles.UsageColor(t, g.Value))
	}
	head := label + fmt.Sprintf("%*s", gap, "") + valueStyle.Render(value)

	var bar string
	if g.Severity {
		bar = styles.ProgressBar(t, g.Value/100, w, styles.UsageColor(t, g.Value))
	} else {
		bar = styles.ProgressBar(t, g.Value/100, w, t.Blue, t.Teal, t.Green)
	}
	return head + "\n" + bar
}
