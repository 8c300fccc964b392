// Package output renders the results of the non-interactive commands as
// aligned text or JSON. Every subcommand writes through a Formatter.
package output

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// EnvFormat selects the output format when --json is not given.
const EnvFormat = "CONTROLROOM_OUTPUT_FORMAT"

// Format is text or JSON.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "text"
}

// DetectFormat picks the format: the --json flag, then EnvFormat, then text.
// Piping alone does not switch to JSON.
func DetectFormat(jsonFlag bool) Format {
	if jsonFlag || strings.EqualFold(strings.TrimSpace(os.Getenv(EnvFormat)), "json") {
		return FormatJSON
	}
	return FormatText
}

// Formatter writes command results in one format.
type Formatter struct {
	format Format
	writer io.Writer
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(f *Formatter) { f.format = format }
}

// WithJSON switches between JSON and text.
func WithJSON(enabled bool) Option {
	return func(f *Formatter) {
		f.format = FormatText
		if enabled {
			f.format = FormatJSON
		}
	}
}

// WithWriter redirects output, stdout by default.
func WithWriter(w io.Writer) Option {
	return func(f *Formatter) { f.writer = w }
}

// New returns a text Formatter on stdout adjusted by opts.
func New(opts ...Option) *Formatter {
	f := &Formatter{format: FormatText, writer: os.Stdout}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// IsJSON reports whether f emits JSON.
func (f *Formatter) IsJSON() bool { return f.format == FormatJSON }

// JSON writes v indented, followed by a newline.
func (f *Formatter) JSON(v any) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Result is a command result with both renderings.
type Result interface {
	Text(w io.Writer) error
	JSON() any
}

// Output writes r in f's format.
func (f *Formatter) Output(r Result) error {
	if f.IsJSON() {
		return f.JSON(r.JSON())
	}
	return r.Text(f.writer)
}

// OutputData writes jsonData in JSON mode and calls textFn otherwise.
func (f *Formatter) OutputData(jsonData any, textFn func(w io.Writer) error) error {
	if f.IsJSON() {
		return f.JSON(jsonData)
	}
	return textFn(f.writer)
}

// Timestamp stamps JSON responses. Tests replace it.
var Timestamp = func() time.Time { return time.Now().UTC() }

// useColor reports whether styled output should go to w.
func useColor(w io.Writer) bool {
	return isTerminalWriter(w) && os.Getenv("NO_COLOR") == ""
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
