package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatText, "text"},
		{FormatJSON, "json"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format.String() = %v, want %v", got, tt.want)
		}
	}
}

func TestFormatterJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := New(WithJSON(true), WithWriter(buf))

	data := map[string]string{"hello": "world"}
	if err := f.JSON(data); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, `"hello"`) {
		t.Errorf("JSON output missing expected content: %s", got)
	}
}

func TestFormatterIsJSON(t *testing.T) {
	tests := []struct {
		opts []Option
		want bool
	}{
		{[]Option{}, false},
		{[]Option{WithJSON(true)}, true},
		{[]Option{WithJSON(false)}, false},
		{[]Option{WithFormat(FormatJSON)}, true},
		{[]Option{WithFormat(FormatText)}, false},
	}

	for _, tt := range tests {
		f := New(tt.opts...)
		if got := f.IsJSON(); got != tt.want {
			t.Errorf("IsJSON() = %v, want %v", got, tt.want)
		}
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		flag bool
		env  string
		want Format
	}{
		{"flag wins", true, "text", FormatJSON},
		{"env json", false, "JSON", FormatJSON},
		{"env text", false, "text", FormatText},
		{"default", false, "", FormatText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvFormat, tt.env)
			if got := DetectFormat(tt.flag); got != tt.want {
				t.Errorf("DetectFormat(%v) = %v, want %v", tt.flag, got, tt.want)
			}
		})
	}
}

func TestPrintError(t *testing.T) {
	cause := errors.New("line 3: bad value")

	var out, errOut bytes.Buffer
	New(WithWriter(&out)).PrintError(&errOut, ConfigInvalidError("/tmp/c.toml", cause))
	got := errOut.String()
	for _, want := range []string{"Error: cannot load config /tmp/c.toml", "[CONFIG_INVALID]", "Cause: line 3", "Hint: "} {
		if !strings.Contains(got, want) {
			t.Errorf("text error missing %q:\n%s", want, got)
		}
	}
	if out.Len() != 0 {
		t.Errorf("text mode wrote to stdout: %q", out.String())
	}

	out.Reset()
	errOut.Reset()
	New(WithJSON(true), WithWriter(&out)).PrintError(&errOut, errors.New("plain failure"))
	var resp ErrorResponse
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("json error does not parse: %v", err)
	}
	if resp.Error != "plain failure" || resp.Code != "" {
		t.Errorf("resp = %+v", resp)
	}
	if errOut.Len() != 0 {
		t.Errorf("json mode wrote to stderr: %q", errOut.String())
	}
}

func TestCLIErrorMessage(t *testing.T) {
	e := NotATerminalError()
	if e.Error() != "stdout is not a terminal" || e.Code != "NOT_A_TERMINAL" {
		t.Errorf("NotATerminalError = %+v", e)
	}
	e = ProfileInvalidError("lab.yaml", errors.New("duplicate id 2"))
	if e.Error() != "cannot load lab profile lab.yaml: duplicate id 2" {
		t.Errorf("Error() = %q", e.Error())
	}
}

func TestProgressWriter(t *testing.T) {
	var buf bytes.Buffer
	p := ProgressWriter(&buf).SetIndent("  ")
	p.Success("created")
	p.Warning("exists")
	p.Info("note")
	want := "  ✓ created\n  ⚠ exists\n  ℹ note\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestSuccessFooterSkipsNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	PrintSuccessFooter(&buf, ConfigInitSuggestions("/tmp/c.toml")...)
	if buf.Len() != 0 {
		t.Errorf("footer written to a buffer: %q", buf.String())
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		count    int
		singular string
		plural   string
		want     string
	}{
		{1, "item", "items", "item"},
		{0, "item", "items", "items"},
		{2, "item", "items", "items"},
		{4, "person", "people", "people"},
	}

	for _, tt := range tests {
		if got := Pluralize(tt.count, tt.singular, tt.plural); got != tt.want {
			t.Errorf("Pluralize(%d, %q, %q) = %q, want %q",
				tt.count, tt.singular, tt.plural, got, tt.want)
		}
	}
}

func TestCountStr(t *testing.T) {
	tests := []struct {
		count    int
		singular string
		plural   string
		want     string
	}{
		{1, "item", "items", "1 item"},
		{5, "item", "items", "5 items"},
		{1, "person", "people", "1 person"},
	}

	for _, tt := range tests {
		if got := CountStr(tt.count, tt.singular, tt.plural); got != tt.want {
			t.Errorf("CountStr(%d, %q, %q) = %q, want %q",
				tt.count, tt.singular, tt.plural, got, tt.want)
		}
	}
}

func TestTable(t *testing.T) {
	buf := &bytes.Buffer{}
	table := NewTable(buf, "NAME", "CL")
	table.AddRow("Dr. Sarah Chen", "5")
	table.AddRow("Ω", "2")
	table.Render()

	want := "  NAME            CL\n" +
		"  --------------  --\n" +
		"  Dr. Sarah Chen  5\n" +
		"  Ω               2\n"
	if got := buf.String(); got != want {
		t.Errorf("table =\n%s\nwant\n%s", got, want)
	}
}

type stubResult struct{}

func (stubResult) Text(w io.Writer) error {
	_, err := io.WriteString(w, "ok\n")
	return err
}

func (stubResult) JSON() any { return map[string]bool{"ok": true} }

func TestFormatterOutput(t *testing.T) {
	tests := []struct {
		name string
		json bool
		want string
	}{
		{"text", false, "ok\n"},
		{"json", true, "{\n  \"ok\": true\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			f := New(WithJSON(tt.json), WithWriter(&buf))
			if err := f.Output(stubResult{}); err != nil {
				t.Fatalf("Output: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Output = %q, want %q", buf.String(), tt.want)
			}

			buf.Reset()
			called := false
			err := f.OutputData(map[string]bool{"ok": true}, func(w io.Writer) error {
				called = true
				_, err := io.WriteString(w, "ok\n")
				return err
			})
			if err != nil || buf.String() != tt.want || called == tt.json {
				t.Errorf("OutputData = %q, %v (text called %v)", buf.String(), err, called)
			}
		})
	}
}
