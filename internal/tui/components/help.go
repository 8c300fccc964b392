// Package components provides shared TUI building blocks.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/aetheronum/controlroom/internal/tui/layout"
	"github.com/aetheronum/controlroom/internal/tui/theme"
)

// KeyHint is one keybinding hint, e.g. "t" → "terminal".
type KeyHint struct {
	Key  string
	Desc string
}

// Hints converts enabled key bindings into hints.
func Hints(bindings ...key.Binding) []KeyHint {
	hints := make([]KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, KeyHint{Key: h.Key, Desc: h.Desc})
	}
	return hints
}

// RenderHelpBar renders hints on one line. Hints that do not fit in width
// are dropped from the right; narrow widths use a compact rendering.
func RenderHelpBar(t theme.Theme, hints []KeyHint, width int) string {
	if len(hints) == 0 {
		return ""
	}
	compact := layout.TierForWidth(width) == layout.TierNarrow

	keyStyle := lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	if !compact {
		keyStyle = keyStyle.Background(t.Surface0).Padding(0, 1)
	}
	descStyle := lipgloss.NewStyle().Foreground(t.Overlay)

	const sep = "  "
	var out []string
	used := 0
	for _, h := range hints {
		r := keyStyle.Render(h.Key) + " " + descStyle.Render(h.Desc)
		w := lipgloss.Width(r)
		if len(out) > 0 {
			w += len(sep)
		}
		if width > 0 && used+w > width {
			break
		}
		used += w
		out = append(out, r)
	}
	return strings.Join(out, sep)
}

// HelpSection groups hints under a heading.
type HelpSection struct {
	Title string
	Hints []KeyHint
}

// HelpOverlay renders a boxed list of grouped keybindings.
func HelpOverlay(t theme.Theme, title string, sections []HelpSection) string {
	keyWidth := 0
	for _, s := range sections {
		for _, h := range s.Hints {
			keyWidth = max(keyWidth, lipgloss.Width(h.Key))
		}
	}

	heading := lipgloss.NewStyle().Foreground(t.Mauve).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Text).Bold(true).Width(keyWidth).Align(lipgloss.Right)
	descStyle := lipgloss.NewStyle().Foreground(t.Subtext)

	lines := []string{lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(title), ""}
	for i, s := range sections {
		if s.Title != "" {
			lines = append(lines, heading.Render(s.Title))
		}
		for _, h := range s.Hints {
			lines = append(lines, "  "+keyStyle.Render(h.Key)+"  "+descStyle.Render(h.Desc))
		}
		if i < len(sections)-1 {
			lines = append(lines, "")
		}
	}
	lines = append(lines, "", lipgloss.NewStyle().Foreground(t.Overlay).Italic(true).Render("Press ? or Esc to close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Blue).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}
