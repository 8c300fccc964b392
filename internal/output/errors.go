package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aetheronum/controlroom/internal/tui/theme"
)

// CLIError represents a structured CLI error with remediation hints.
type CLIError struct {
	Message string // What failed
	Cause   string // Why it failed (optional)
	Hint    string // Fastest command/action to fix it (optional)
	Code    string // Error code for programmatic handling (optional)
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	if e.Cause != "" {
		return e.Message + ": " + e.Cause
	}
	return e.Message
}

// NewCLIError creates a new CLI error with just a message.
func NewCLIError(msg string) *CLIError {
	return &CLIError{Message: msg}
}

// WithCause adds a cause to the error.
func (e *CLIError) WithCause(cause string) *CLIError {
	e.Cause = cause
	return e
}

// WithHint adds a remediation hint to the error.
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

// WithCode adds an error code to the error.
func (e *CLIError) WithCode(code string) *CLIError {
	e.Code = code
	return e
}

// FormatCLIError formats a CLIError, styled when color is set.
func FormatCLIError(e *CLIError, color bool) string {
	label := func(s string, _ lipgloss.Color) string { return s }
	if color {
		label = func(s string, c lipgloss.Color) string {
			return lipgloss.NewStyle().Foreground(c).Bold(true).Render(s)
		}
	}
	t := theme.Current()

	var sb strings.Builder
	sb.WriteString(label("Error: ", t.Error))
	sb.WriteString(e.Message)
	if e.Code != "" {
		sb.WriteString(" " + label("["+e.Code+"]", t.Overlay))
	}
	sb.WriteString("\n")
	if e.Cause != "" {
		sb.WriteString(label("  Cause: ", t.Subtext) + e.Cause + "\n")
	}
	if e.Hint != "" {
		sb.WriteString(label("  Hint: ", t.Info) + e.Hint + "\n")
	}
	return sb.String()
}

// PrintError writes err to errW, or to f's writer as an ErrorResponse in
// JSON mode. CLIErrors keep their hint and code.
func (f *Formatter) PrintError(errW io.Writer, err error) {
	cliErr, ok := err.(*CLIError)
	if !ok {
		cliErr = NewCLIError(err.Error())
	}
	if f.IsJSON() {
		_ = f.JSON(ErrorResponse{
			Error:   cliErr.Message,
			Code:    cliErr.Code,
			Details: cliErr.Cause,
			Hint:    cliErr.Hint,
		})
		return
	}
	fmt.Fprint(errW, FormatCLIError(cliErr, useColor(errW)))
}

// Common error hints
var (
	HintConfigNotFound = "Run 'controlroom config init' to create a default configuration"
	HintConfigInvalid  = "Check the file with 'controlroom config show' or fix it in your editor"
	HintProfileInvalid = "Clearance levels run 1-5 and every id must be unique"
	HintNotATerminal   = "Run controlroom from an interactive terminal; use 'controlroom exec' for scripts"
)

// ConfigInvalidError wraps a config load failure.
func ConfigInvalidError(path string, err error) *CLIError {
	return NewCLIError(fmt.Sprintf("cannot load config %s", path)).
		WithCause(err.Error()).
		WithCode("CONFIG_INVALID").
		WithHint(HintConfigInvalid)
}

// ProfileInvalidError wraps a lab profile failure.
func ProfileInvalidError(path string, err error) *CLIError {
	return NewCLIError(fmt.Sprintf("cannot load lab profile %s", path)).
		WithCause(err.Error()).
		WithCode("PROFILE_INVALID").
		WithHint(HintProfileInvalid)
}

// NotATerminalError is returned when the UI is started without a TTY.
func NotATerminalError() *CLIError {
	return NewCLIError("stdout is not a terminal").
		WithCode("NOT_A_TERMINAL").
		WithHint(HintNotATerminal)
}
