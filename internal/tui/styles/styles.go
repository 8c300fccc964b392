// Package styles maps lab domain values onto theme colors and renders
// gradient text and bars.
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aetheronum/controlroom/internal/model"
	"github.com/aetheronum/controlroom/internal/tui/theme"
)

// Usage thresholds for gauges, in percent.
const (
	UsageWarn     = 60
	UsageCritical = 80
)

// LevelColor is the color of a log severity.
func LevelColor(t theme.Theme, level model.LogLevel) lipgloss.Color {
	switch level {
	case model.LevelCritical:
		return t.Critical
	case model.LevelError:
		return t.Error
	case model.LevelWarning:
		return t.Warning
	default:
		return t.Info
	}
}

// LevelIcon is the glyph shown beside a log line.
func LevelIcon(level model.LogLevel) string {
	switch level {
	case model.LevelError, model.LevelCritical:
		return "▲"
	case model.LevelWarning:
		return "●"
	default:
		return "i"
	}
}

// PriorityColor is the color of a project priority.
func PriorityColor(t theme.Theme, p model.Priority) lipgloss.Color {
	switch p {
	case model.PriorityCritical:
		return t.Critical
	case model.PriorityHigh:
		return t.Peach
	case model.PriorityMedium:
		return t.Yellow
	default:
		return t.Green
	}
}

// StatusColor is the color of a project status.
func StatusColor(t theme.Theme, s model.ProjectStatus) lipgloss.Color {
	switch s {
	case model.ProjectActive:
		return t.Success
	case model.ProjectPaused:
		return t.Warning
	case model.ProjectCompleted:
		return t.Blue
	default:
		return t.Overlay
	}
}

// UsageColor is the gauge color for a percentage.
func UsageColor(t theme.Theme, pct float64) lipgloss.Color {
	switch {
	case pct > UsageCritical:
		return t.Error
	case pct > UsageWarn:
		return t.Warning
	default:
		return t.Success
	}
}

// Color is an RGB triple used for interpolation.
type Color struct {
	R, G, B int
}

// ParseHex parses "#rrggbb". Anything else yields black.
func ParseHex(hex string) Color {
	var c Color
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	}
	return c
}

// Hex formats c as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp interpolates between a and b at position p in [0,1].
func Lerp(a, b Color, p float64) Color {
	mix := func(x, y int) int { return int(float64(x) + p*float64(y-x)) }
	return Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}

// GradientText colors each rune of text along the given hex stops. With
// fewer than two usable stops the text is returned unchanged, which keeps
// the plain theme free of escape codes.
func GradientText(text string, colors ...string) string {
	stops := make([]Color, 0, len(colors))
	for _, c := range colors {
		if c != "" {
			stops = append(stops, ParseHex(c))
		}
	}
	runes := []rune(text)
	if len(stops) < 2 || len(runes) == 0 {
		return text
	}

	segments := len(stops) - 1
	var b strings.Builder
	for i, r := range runes {
		pos := 0.0
		if len(runes) > 1 {
			pos = float64(i) / float64(len(runes)-1)
		}
		at := pos * float64(segments)
		idx := min(int(at), segments-1)
		c := Lerp(stops[idx], stops[idx+1], at-float64(idx))
		fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm%c\x1b[0m", c.R, c.G, c.B, r)
	}
	return b.String()
}

// ProgressBar renders a bar width cells wide with percent (0-1) filled.
// A single color paints the filled part flat; two or more make a gradient.
func ProgressBar(t theme.Theme, percent float64, width int, colors ...lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	percent = max(0, min(percent, 1))
	filled := int(percent * float64(width))
	empty := width - filled

	fill := strings.Repeat("█", filled)
	switch {
	case len(colors) >= 2:
		hex := make([]string, len(colors))
		for i, c := range colors {
			hex[i] = string(c)
		}
		fill = GradientText(fill, hex...)
	case len(colors) == 1:
		fill = lipgloss.NewStyle().Foreground(colors[0]).Render(fill)
	}
	return fill + lipgloss.NewStyle().Foreground(t.Surface1).Render(strings.Repeat("░", empty))
}
