package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aetheronum/controlroom/internal/tui/layout"
	"github.com/aetheronum/controlroom/internal/tui/theme"
)

// Box is a bordered panel with a title row.
type Box struct {
	Title       string
	Content     string
	Width       int
	Height      int
	Focused     bool
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
}

// NewBox creates a box colored from t.
func NewBox(t theme.Theme) *Box {
	return &Box{
		BorderColor: t.Surface2,
		TitleColor:  t.Primary,
	}
}

// WithTitle sets the title.
func (b *Box) WithTitle(title string) *Box {
	b.Title = title
	return b
}

// WithContent sets the body.
func (b *Box) WithContent(content string) *Box {
	b.Content = content
	return b
}

// WithSize sets the outer dimensions including the border. Zero leaves
// that axis to the content.
func (b *Box) WithSize(width, height int) *Box {
	b.Width = width
	b.Height = height
	return b
}

// WithFocus highlights the border with color when focused is true.
func (b *Box) WithFocus(focused bool, color lipgloss.Color) *Box {
	b.Focused = focused
	if focused {
		b.BorderColor = color
	}
	return b
}

// InnerWidth is the usable content width.
func (b *Box) InnerWidth() int {
	return max(b.Width-4, 0)
}

// InnerHeight is the usable content height below the title row.
func (b *Box) InnerHeight() int {
	h := b.Height - 2
	if b.Title != "" {
		h--
	}
	return max(h, 0)
}

// Render draws the box.
func (b *Box) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(b.BorderColor).
		Padding(0, 1)
	if b.Width > 0 {
		style = style.Width(b.Width - 2)
	}

	body := b.Content
	if b.Title != "" {
		title := b.Title
		if w := b.InnerWidth(); w > 0 {
			title = layout.Truncate(title, w)
		}
		head := lipgloss.NewStyle().Bold(true).Foreground(b.TitleColor).Render(title)
		body = head + "\n" + body
	}
	if b.Height > 0 {
		body = FitToHeight(body, b.Height-2)
	}
	return style.Render(body)
}

// String implements fmt.Stringer.
func (b *Box) String() string {
	return b.Render()
}

// FitToHeight pads or truncates content to exactly h lines.
func FitToHeight(content string, h int) string {
	if h <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// Divider is a horizontal rule.
func Divider(t theme.Theme, width int) string {
	return lipgloss.NewStyle().Foreground(t.Surface1).Render(strings.Repeat("─", max(width, 0)))
}
