// Package config loads the controlroom TOML configuration and the optional
// YAML lab profile.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/aetheronum/controlroom/internal/util"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "CONTROLROOM_CONFIG"

// Defaults.
const (
	DefaultNode        = "DELTA-7"
	DefaultMinPasscode = 6

	DefaultMetricsTick  = 3 * time.Second
	DefaultLogsTick     = 5 * time.Second
	DefaultTrainingTick = 2 * time.Second
	DefaultScanDelay    = 2 * time.Second
)

// Config is the top-level configuration.
type Config struct {
	Theme   string        `toml:"theme" json:"theme"`
	Node    string        `toml:"node" json:"node"`
	Ticks   TicksConfig   `toml:"ticks" json:"ticks"`
	Login   LoginConfig   `toml:"login" json:"login"`
	Profile ProfileConfig `toml:"profile" json:"profile"`
	Debug   DebugConfig   `toml:"debug" json:"debug"`
}

// TicksConfig holds simulation periods as duration strings ("3s", "1m").
type TicksConfig struct {
	Metrics  string `toml:"metrics" json:"metrics"`
	Logs     string `toml:"logs" json:"logs"`
	Training string `toml:"training" json:"training"`
	Scan     string `toml:"scan" json:"scan"`
}

// LoginConfig tunes the login screen.
type LoginConfig struct {
	MinPasscode int `toml:"min_passcode" json:"min_passcode"`
}

// ProfileConfig locates the lab profile.
type ProfileConfig struct {
	Path string `toml:"path" json:"path"`
}

// DebugConfig controls diagnostic logging.
type DebugConfig struct {
	LogFile string `toml:"log_file" json:"log_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme: "auto",
		Node:  DefaultNode,
		Ticks: TicksConfig{
			Metrics:  "3s",
			Logs:     "5s",
			Training: "2s",
			Scan:     "2s",
		},
		Login: LoginConfig{MinPasscode: DefaultMinPasscode},
	}
}

// DefaultPath returns the config file path: $CONTROLROOM_CONFIG, then
// $XDG_CONFIG_HOME/controlroom/config.toml, then ~/.config/controlroom/config.toml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "controlroom", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "controlroom", "config.toml")
}

// Load reads the config at path (DefaultPath when empty). Missing fields
// take their defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	if c.Node == "" {
		c.Node = d.Node
	}
	if c.Login.MinPasscode <= 0 {
		c.Login.MinPasscode = d.Login.MinPasscode
	}
}

// MetricsInterval is the dashboard telemetry period.
func (t TicksConfig) MetricsInterval() time.Duration {
	return interval(t.Metrics, DefaultMetricsTick)
}

// LogsInterval is the system log generator period.
func (t TicksConfig) LogsInterval() time.Duration {
	return interval(t.Logs, DefaultLogsTick)
}

// TrainingInterval is the AI lab epoch period.
func (t TicksConfig) TrainingInterval() time.Duration {
	return interval(t.Training, DefaultTrainingTick)
}

// ScanDelay is how long the biometric scan runs.
func (t TicksConfig) ScanDelay() time.Duration {
	return interval(t.Scan, DefaultScanDelay)
}

// interval parses s, falling back to def when s is empty, malformed or
// not positive.
func interval(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := util.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// CreateDefault writes the default config to path (DefaultPath when
// empty). An existing file is never overwritten.
func CreateDefault(path string) (string, error) {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists: %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := Print(Default(), f); err != nil {
		return "", err
	}
	return path, nil
}

// Print writes cfg as a commented TOML file.
func Print(cfg *Config, w io.Writer) error {
	fmt.Fprintln(w, "# Aetheronum control room configuration")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "# Color theme: auto, mocha, macchiato, latte, nord, plain")
	fmt.Fprintf(w, "theme = %q\n", cfg.Theme)
	fmt.Fprintln(w, "# Node label shown in the header bar")
	fmt.Fprintf(w, "node = %q\n", cfg.Node)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[ticks]")
	fmt.Fprintln(w, "# Simulation periods (30s, 5m, 1h, 500ms)")
	fmt.Fprintf(w, "metrics = %q\n", cfg.Ticks.Metrics)
	fmt.Fprintf(w, "logs = %q\n", cfg.Ticks.Logs)
	fmt.Fprintf(w, "training = %q\n", cfg.Ticks.Training)
	fmt.Fprintf(w, "scan = %q\n", cfg.Ticks.Scan)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[login]")
	fmt.Fprintf(w, "min_passcode = %d\n", cfg.Login.MinPasscode)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[profile]")
	fmt.Fprintln(w, "# YAML lab profile with personnel and project seed (optional)")
	if cfg.Profile.Path != "" {
		fmt.Fprintf(w, "path = %q\n", cfg.Profile.Path)
	} else {
		fmt.Fprintln(w, "# path = \"~/.config/controlroom/lab.yaml\"")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[debug]")
	fmt.Fprintln(w, "# Diagnostic log file; logging is discarded when unset")
	if cfg.Debug.LogFile != "" {
		_, err := fmt.Fprintf(w, "log_file = %q\n", cfg.Debug.LogFile)
		return err
	}
	_, err := fmt.Fprintln(w, "# log_file = \"/tmp/controlroom.log\"")
	return err
}
