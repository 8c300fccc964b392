package cli

import (
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aetheronum/controlroom/internal/config"
	"github.com/aetheronum/controlroom/internal/output"
	"github.com/aetheronum/controlroom/internal/tui/dashboard"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the control room (the default command)",
		Args:  cobra.NoArgs,
		RunE:  runUI,
	}
}

// IsInteractive returns true when the writer is a terminal.
func IsInteractive(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runUI(cmd *cobra.Command, _ []string) error {
	if !IsInteractive(cmd.OutOrStdout()) {
		return output.NotATerminalError()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	profile, err := loadProfile()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(debugLogPath())
	if err != nil {
		return err
	}
	defer closeLog()

	m := dashboard.New(dashboard.Options{
		Config:  cfg,
		Profile: profile,
		Theme:   themeName,
		Logger:  logger,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	stop, err := config.Watch(configPath(), logger, func(c *config.Config) {
		p.Send(dashboard.ConfigReloadedMsg{Config: c})
	})
	if err != nil {
		logger.Warn("config hot reload disabled", "error", err)
	} else {
		defer stop()
	}

	logger.Info("control room starting", "version", Version, "node", cfg.Node)
	_, err = p.Run()
	return err
}

func debugLogPath() string {
	if debugLog != "" {
		return debugLog
	}
	if cfg != nil {
		return cfg.Debug.LogFile
	}
	return ""
}

// openLogger returns a text logger writing to path, or a discarding one
// when path is empty. The UI owns the terminal, so logs never go there.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, output.NewCLIError("cannot open debug log").WithCause(err.Error())
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
