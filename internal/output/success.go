package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/aetheronum/controlroom/internal/tui/theme"
)

// Suggestion represents a "what next" command suggestion
type Suggestion struct {
	Command     string // The command to run (e.g., "controlroom config show")
	Description string // Brief description (e.g., "Review settings")
}

// PrintSuccessFooter prints a "What's next?" footer to w. Nothing is
// printed when w is not a terminal.
func PrintSuccessFooter(w io.Writer, suggestions ...Suggestion) {
	if len(suggestions) == 0 || !isTerminalWriter(w) {
		return
	}

	t := theme.Current()
	header := lipgloss.NewStyle().Foreground(t.Subtext).Bold(true)
	cmd := lipgloss.NewStyle().Foreground(t.Info)
	desc := lipgloss.NewStyle().Foreground(t.Overlay)
	if !useColor(w) {
		header, cmd, desc = lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle()
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, header.Render("What's next?"))
	for _, s := range suggestions {
		fmt.Fprintf(w, "  %s  %s\n", cmd.Render(s.Command), desc.Render("# "+s.Description))
	}
	fmt.Fprintln(w)
}

// ConfigInitSuggestions follow a successful config init.
func ConfigInitSuggestions(path string) []Suggestion {
	return []Suggestion{
		{Command: "controlroom config show", Description: "Review the effective settings"},
		{Command: fmt.Sprintf("$EDITOR %s", path), Description: "Change theme, node or tick rates"},
		{Command: "controlroom", Description: "Open the control room"},
	}
}
