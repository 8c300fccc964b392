package notebook

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer turns note markdown into styled terminal text. Renderers are
// built lazily per wrap width and reused.
type Renderer struct {
	style string
	cache map[int]*glamour.TermRenderer
}

// NewRenderer uses the glamour standard style named style ("dark",
// "light", "notty").
func NewRenderer(style string) *Renderer {
	if style == "" {
		style = "dark"
	}
	return &Renderer{style: style, cache: make(map[int]*glamour.TermRenderer)}
}

// Render formats content for a pane width cells wide. On failure the raw
// markdown is returned.
func (r *Renderer) Render(content string, width int) string {
	if width < 10 {
		width = 10
	}
	tr, ok := r.cache[width]
	if !ok {
		var err error
		tr, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return content
		}
		r.cache[width] = tr
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}
