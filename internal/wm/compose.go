package wm

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/aetheronum/controlroom/internal/model"
)

// Painter renders window frames and dock chips. Window output must be
// exactly w.Size.Width cells wide and w.Size.Height rows tall so hit testing
// lines up with what is on screen.
type Painter interface {
	Window(w model.WindowState, top bool) string
	Chip(c Chip) string
}

// Compose paints windows over background, lowest stacking index first, then
// the dock. The result is exactly width x height cells. Windows partly off
// screen are clipped.
func Compose(background string, windows []model.WindowState, width, height int, p Painter) string {
	lines := canvas(background, width, height)

	stack := Stacked(windows)
	for i, w := range stack {
		lines = overlay(lines, p.Window(w, i == len(stack)-1), w.Position.X, w.Position.Y, width)
	}
	for _, c := range DockChips(windows, height) {
		lines = overlay(lines, p.Chip(c), c.X, c.Y, width)
	}
	return strings.Join(lines, "\n")
}

func canvas(background string, width, height int) []string {
	src := strings.Split(background, "\n")
	lines := make([]string, height)
	for i := range lines {
		var line string
		if i < len(src) {
			line = src[i]
		}
		lines[i] = fitWidth(line, width)
	}
	return lines
}

func fitWidth(line string, width int) string {
	w := ansi.StringWidth(line)
	switch {
	case w > width:
		return ansi.Truncate(line, width, "")
	case w < width:
		return line + strings.Repeat(" ", width-w)
	}
	return line
}

// overlay splices fg into lines with its top-left corner at (x, y).
func overlay(lines []string, fg string, x, y, width int) []string {
	for r, fgLine := range strings.Split(fg, "\n") {
		row := y + r
		if row < 0 || row >= len(lines) {
			continue
		}
		col := x
		if col < 0 {
			fgLine = ansi.TruncateLeft(fgLine, -col, "")
			col = 0
		}
		if col >= width {
			continue
		}
		fgLine = ansi.Truncate(fgLine, width-col, "")
		fgWidth := ansi.StringWidth(fgLine)
		if fgWidth == 0 {
			continue
		}

		bg := lines[row]
		var b strings.Builder
		b.WriteString(ansi.Truncate(bg, col, ""))
		b.WriteString(fgLine)
		if rest := col + fgWidth; rest < width {
			b.WriteString(ansi.TruncateLeft(bg, rest, ""))
		}
		lines[row] = fitWidth(b.String(), width)
	}
	return lines
}

// Frame is the stock Painter: a rounded border, a title row carrying the
// minimize and close buttons, and a body filled by Content.
type Frame struct {
	Border       lipgloss.Color
	ActiveBorder lipgloss.Color
	Title        lipgloss.Style
	Button       lipgloss.Style
	ChipStyle    lipgloss.Style
	Content      func(w model.WindowState, width, height int) string
}

// Window implements Painter.
func (f Frame) Window(w model.WindowState, top bool) string {
	innerW := w.Size.Width - 2
	innerH := w.Size.Height - 2
	if innerW < 1 || innerH < 1 {
		return ""
	}

	titleW := innerW - buttonsWidth
	title := ansi.Truncate(w.Title, titleW, "…")
	header := f.Title.Render(title) + strings.Repeat(" ", max(0, titleW-ansi.StringWidth(title))) +
		f.Button.Render("[_]") + f.Button.Render("[x]")

	body := make([]string, 0, innerH)
	body = append(body, header)
	if f.Content != nil && innerH > 1 {
		for _, line := range strings.Split(f.Content(w, innerW, innerH-1), "\n") {
			if len(body) == innerH {
				break
			}
			body = append(body, line)
		}
	}
	for len(body) < innerH {
		body = append(body, "")
	}
	for i := range body {
		body[i] = fitWidth(body[i], innerW)
	}

	border := f.Border
	if top {
		border = f.ActiveBorder
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(strings.Join(body, "\n"))
}

// Chip implements Painter.
func (f Frame) Chip(c Chip) string {
	return f.ChipStyle.Render(c.Label)
}
