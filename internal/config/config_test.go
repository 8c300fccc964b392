package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Node != "DELTA-7" {
		t.Errorf("Node = %q", cfg.Node)
	}
	if cfg.Login.MinPasscode != 6 {
		t.Errorf("MinPasscode = %d", cfg.Login.MinPasscode)
	}
	tests := []struct {
		name string
		got  time.Duration
		want time.Duration
	}{
		{"metrics", cfg.Ticks.MetricsInterval(), 3 * time.Second},
		{"logs", cfg.Ticks.LogsInterval(), 5 * time.Second},
		{"training", cfg.Ticks.TrainingInterval(), 2 * time.Second},
		{"scan", cfg.Ticks.ScanDelay(), 2 * time.Second},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
theme = "nord"

[ticks]
metrics = "1s"
logs = "-5s"
training = "soon"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "nord" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
	if cfg.Node != DefaultNode {
		t.Errorf("Node = %q, want default", cfg.Node)
	}
	if got := cfg.Ticks.MetricsInterval(); got != time.Second {
		t.Errorf("metrics = %v, want 1s", got)
	}
	if got := cfg.Ticks.LogsInterval(); got != DefaultLogsTick {
		t.Errorf("negative logs tick = %v, want default", got)
	}
	if got := cfg.Ticks.TrainingInterval(); got != DefaultTrainingTick {
		t.Errorf("malformed training tick = %v, want default", got)
	}
	if got := cfg.Ticks.ScanDelay(); got != DefaultScanDelay {
		t.Errorf("scan = %v, want default", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, "theme = [unterminated")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("bad file err = %v", err)
	}

	cfg, err := LoadOrDefault(filepath.Join(dir, "missing.toml"))
	if err != nil || cfg.Node != DefaultNode {
		t.Errorf("LoadOrDefault = %+v, %v", cfg, err)
	}
}

func TestDefaultPathEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.toml")
	if got := DefaultPath(); got != "/tmp/custom.toml" {
		t.Errorf("DefaultPath = %q", got)
	}

	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultPath(); got != filepath.Join("/xdg", "controlroom", "config.toml") {
		t.Errorf("DefaultPath = %q", got)
	}
}

func TestPrintRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Theme = "latte"
	cfg.Debug.LogFile = "/tmp/cr.log"

	var buf bytes.Buffer
	if err := Print(cfg, &buf); err != nil {
		t.Fatalf("Print: %v", err)
	}

	var got Config
	if _, err := toml.Decode(buf.String(), &got); err != nil {
		t.Fatalf("printed config does not parse: %v\n%s", err, buf.String())
	}
	if got.Theme != "latte" || got.Debug.LogFile != "/tmp/cr.log" || got.Ticks != cfg.Ticks {
		t.Errorf("round trip = %+v", got)
	}
}

func TestCreateDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	got, err := CreateDefault(path)
	if err != nil {
		t.Fatalf("CreateDefault: %v", err)
	}
	if got != path {
		t.Errorf("path = %q", got)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("created file does not load: %v", err)
	}
	if _, err := CreateDefault(path); err == nil {
		t.Error("CreateDefault overwrote an existing file")
	}
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `theme = "mocha"`)

	var mu sync.Mutex
	var themes []string
	changed := make(chan struct{}, 4)

	stop, err := Watch(path, nil, func(cfg *Config) {
		mu.Lock()
		themes = append(themes, cfg.Theme)
		mu.Unlock()
		changed <- struct{}{}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer stop()

	writeFile(t, path, `theme = "nord"`)

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for reload")
	}

	mu.Lock()
	defer mu.Unlock()
	if themes[len(themes)-1] != "nord" {
		t.Errorf("themes = %v, want last nord", themes)
	}
}
