package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aetheronum/controlroom/internal/watcher"
)

// WatchDebounce coalesces editor save bursts into one reload.
const WatchDebounce = 500 * time.Millisecond

// Watch reloads the config at path whenever it changes and hands the new
// value to onChange. Reload failures are logged and the previous config
// stays in effect. The returned function stops watching.
func Watch(path string, logger *slog.Logger, onChange func(*Config)) (func(), error) {
	if path == "" {
		path = DefaultPath()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	w, err := watcher.New(func(events []watcher.Event) {
		cfg, err := Load(abs)
		if err != nil {
			logger.Warn("config reload failed", "path", abs, "error", err)
			return
		}
		logger.Debug("config reloaded", "path", abs, "events", len(events))
		if onChange != nil {
			onChange(cfg)
		}
	},
		watcher.WithDebounceDuration(WatchDebounce),
		watcher.WithEventFilter(watcher.Create|watcher.Write|watcher.Rename),
		watcher.WithNames(filepath.Base(abs)),
		watcher.WithErrorHandler(func(err error) {
			logger.Warn("config watch error", "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}

	// Watch the directory so atomic rename-over saves are seen.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching config path %s: %w", abs, err)
	}

	return func() {
		w.Close()
	}, nil
}
