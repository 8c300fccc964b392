package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aetheronum/controlroom/internal/config"
	"github.com/aetheronum/controlroom/internal/output"
	"github.com/aetheronum/controlroom/internal/terminal"
)

// resetFlags resets global flags to default values between tests and
// points the default config path at an empty temp dir.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "config.toml"))
	t.Setenv(output.EnvFormat, "")

	cfgFile = ""
	profileFile = ""
	themeName = ""
	debugLog = ""
	jsonOutput = false
	cfg = nil

	resetCommandFlags(rootCmd)
}

// resetCommandFlags restores every flag of cmd and its subcommands,
// including cobra's help flags, which otherwise stay set between runs.
func resetCommandFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCommandFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runBoth(t, args...)
	return out, err
}

func runBoth(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	if args == nil {
		// nil makes cobra fall back to os.Args, the test binary's flags.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestExecuteHelp(t *testing.T) {
	resetFlags(t)
	out, err := run(t, "--help")
	if err != nil {
		t.Fatalf("--help: %v", err)
	}
	if !strings.Contains(out, "controlroom exec status") {
		t.Errorf("help text missing quick start:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	resetFlags(t)
	out, err := run(t, "version", "--short")
	if err != nil || out != "dev\n" {
		t.Errorf("version --short = %q, %v", out, err)
	}

	resetFlags(t)
	out, err = run(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json: %v", err)
	}
	var resp output.VersionResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if resp.Version != "dev" || resp.GoVersion == "" || resp.Platform == "" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestExec(t *testing.T) {
	status, _ := terminal.Resolve("status")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"known", []string{"exec", "status"}, status + "\n"},
		{"case and spaces", []string{"exec", "  STATUS "}, status + "\n"},
		{"unknown keeps raw input", []string{"exec", "Launch", "probe"}, "Command not found: Launch probe\n"},
		{"clear prints nothing", []string{"exec", "clear"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			got, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("exec: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecJSON(t *testing.T) {
	resetFlags(t)
	out, err := run(t, "exec", "--json", "neural")
	if err != nil {
		t.Fatalf("exec: %v", err)
	}
	var resp output.ExecResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Found || resp.Command != "neural" || !strings.HasPrefix(resp.Output, "Neural networks:") {
		t.Errorf("resp = %+v", resp)
	}

	resetFlags(t)
	out, _ = run(t, "exec", "--json", "warp")
	resp = output.ExecResponse{}
	_ = json.Unmarshal([]byte(out), &resp)
	if resp.Found {
		t.Errorf("unknown command reported found: %+v", resp)
	}
}

func TestExecList(t *testing.T) {
	resetFlags(t)
	out, err := run(t, "exec", "--list")
	if err != nil {
		t.Fatalf("exec --list: %v", err)
	}
	if got := strings.Fields(out); strings.Join(got, ",") != strings.Join(terminal.Commands(), ",") {
		t.Errorf("list = %v", got)
	}

	resetFlags(t)
	if _, err := run(t, "exec"); err == nil {
		t.Error("exec without a command succeeded")
	}
}

func TestPersonnel(t *testing.T) {
	resetFlags(t)
	out, err := run(t, "personnel")
	if err != nil {
		t.Fatalf("personnel: %v", err)
	}
	for _, want := range []string{"Dr. Sarah Chen", "Quantum Computing", "4 people on the roster"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	resetFlags(t)
	profile := filepath.Join(t.TempDir(), "lab.yaml")
	writeFile(t, profile, "personnel:\n  - {id: '7', name: Grace Hopper, clearance: 4, department: Compilers}\n")
	out, err = run(t, "personnel", "--json", "--profile", profile)
	if err != nil {
		t.Fatalf("personnel --json: %v", err)
	}
	var resp output.PersonnelResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Personnel) != 1 || resp.Personnel[0].Name != "Grace Hopper" || resp.Personnel[0].Clearance != 4 {
		t.Errorf("personnel = %+v", resp.Personnel)
	}
}

func TestPersonnelFromConfigProfile(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	profile := filepath.Join(dir, "lab.yaml")
	writeFile(t, profile, "personnel:\n  - {id: a, name: Alan Turing, clearance: 5}\n")
	conf := filepath.Join(dir, "config.toml")
	writeFile(t, conf, "[profile]\npath = \""+filepath.ToSlash(profile)+"\"\n")

	out, err := run(t, "personnel", "--config", conf)
	if err != nil {
		t.Fatalf("personnel: %v", err)
	}
	if !strings.Contains(out, "Alan Turing") || !strings.Contains(out, "1 person") {
		t.Errorf("output:\n%s", out)
	}
}

func TestPersonnelInvalidProfile(t *testing.T) {
	resetFlags(t)
	profile := filepath.Join(t.TempDir(), "lab.yaml")
	writeFile(t, profile, "personnel:\n  - {id: '1', name: Nobody, clearance: 9}\n")

	_, err := run(t, "personnel", "--profile", profile)
	var cliErr *output.CLIError
	if !errors.As(err, &cliErr) || cliErr.Code != "PROFILE_INVALID" {
		t.Fatalf("err = %v, want PROFILE_INVALID", err)
	}
	if !strings.Contains(cliErr.Cause, "clearance 9") {
		t.Errorf("cause = %q", cliErr.Cause)
	}
}

func TestSections(t *testing.T) {
	resetFlags(t)
	out, err := run(t, "sections", "--json", "--clearance", "2")
	if err != nil {
		t.Fatalf("sections: %v", err)
	}
	var resp output.SectionsResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Clearance != 2 || len(resp.Sections) != 10 {
		t.Fatalf("resp = %+v", resp)
	}
	want := map[string]bool{"dashboard": true, "ai": true, "quantum": false, "symbiosis": false, "notebook": true}
	for _, s := range resp.Sections {
		if s.Allowed == nil {
			t.Fatalf("section %s has no access flag", s.ID)
		}
		if w, ok := want[s.ID]; ok && *s.Allowed != w {
			t.Errorf("%s allowed = %v, want %v", s.ID, *s.Allowed, w)
		}
	}

	resetFlags(t)
	out, err = run(t, "sections")
	if err != nil {
		t.Fatalf("sections: %v", err)
	}
	if strings.Contains(out, "ACCESS") || !strings.Contains(out, "Human-AI Symbiosis") || !strings.Contains(out, "CL-5") {
		t.Errorf("text output:\n%s", out)
	}

	resetFlags(t)
	if _, err := run(t, "sections", "--clearance", "9"); err == nil {
		t.Error("clearance 9 accepted")
	}
}

func TestConfigCommands(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, errOut, err := runBoth(t, "config", "path", "--config", path)
	if err != nil || out != path+"\n" {
		t.Errorf("config path = %q, %v", out, err)
	}
	if !strings.Contains(errOut, "config init") {
		t.Errorf("missing file not flagged on stderr: %q", errOut)
	}

	resetFlags(t)
	out, errOut, err = runBoth(t, "config", "show", "--config", path)
	if err != nil || !strings.Contains(out, "DELTA-7") || !strings.Contains(errOut, "showing defaults") {
		t.Errorf("config show without a file = %q, %q, %v", out, errOut, err)
	}

	resetFlags(t)
	out, err = run(t, "config", "init", "--config", path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Created config file: "+path) {
		t.Errorf("init output = %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	resetFlags(t)
	if _, err := run(t, "config", "init", "--config", path); err == nil {
		t.Error("second init overwrote the file")
	}

	resetFlags(t)
	out, err = run(t, "config", "show", "--json", "--config", path)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	var got config.Config
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if got.Node != config.DefaultNode || got.Ticks.Metrics != "3s" {
		t.Errorf("config = %+v", got)
	}
}

func TestBrokenConfig(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "theme = [unterminated")

	_, err := run(t, "config", "show", "--config", path)
	var cliErr *output.CLIError
	if !errors.As(err, &cliErr) || cliErr.Code != "CONFIG_INVALID" {
		t.Fatalf("err = %v, want CONFIG_INVALID", err)
	}

	resetFlags(t)
	out, err := run(t, "config", "path", "--config", path, "--json")
	if err != nil {
		t.Fatalf("config path with a broken file: %v", err)
	}
	var resp output.ConfigPathResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil || !resp.Exists {
		t.Errorf("resp = %+v, %v", resp, err)
	}
}

func TestRunRequiresTerminal(t *testing.T) {
	resetFlags(t)
	_, err := run(t)
	var cliErr *output.CLIError
	if !errors.As(err, &cliErr) || cliErr.Code != "NOT_A_TERMINAL" {
		t.Fatalf("err = %v, want NOT_A_TERMINAL", err)
	}
}

func TestHelpFlagDoesNotLeakIntoNextRun(t *testing.T) {
	for _, args := range [][]string{{"--help"}, {"sections", "--help"}, {"exec", "--help"}} {
		resetFlags(t)
		if _, err := run(t, args...); err != nil {
			t.Fatalf("%v: %v", args, err)
		}

		resetFlags(t)
		_, err := run(t)
		var cliErr *output.CLIError
		if !errors.As(err, &cliErr) || cliErr.Code != "NOT_A_TERMINAL" {
			t.Errorf("after %v: err = %v, want NOT_A_TERMINAL", args, err)
		}
	}
}

func TestOpenLogger(t *testing.T) {
	logger, closeLog, err := openLogger("")
	if err != nil || logger == nil {
		t.Fatalf("openLogger(\"\") = %v, %v", logger, err)
	}
	closeLog()

	path := filepath.Join(t.TempDir(), "debug.log")
	logger, closeLog, err = openLogger(path)
	if err != nil {
		t.Fatalf("openLogger: %v", err)
	}
	logger.Debug("store dispatch", "action", "LOGIN")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "action=LOGIN") {
		t.Errorf("log = %q", data)
	}

	if _, _, err := openLogger(filepath.Join(t.TempDir(), "missing", "dir", "x.log")); err == nil {
		t.Error("openLogger into a missing directory succeeded")
	}
}
