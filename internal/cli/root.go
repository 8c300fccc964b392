// Package cli wires the controlroom commands.
package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/aetheronum/controlroom/internal/config"
	"github.com/aetheronum/controlroom/internal/output"
)

var (
	cfgFile     string
	profileFile string
	themeName   string
	debugLog    string
	cfg         *config.Config

	// Global JSON output flag - inherited by all subcommands
	jsonOutput bool

	// Build information - set via ldflags
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "controlroom",
	Short: "Aetheronum research lab control room",
	Long: `controlroom opens the Aetheronum research lab console: a clearance-gated
dashboard of live telemetry, lab panels, a research notebook and a secure
terminal, all inside your terminal.

Quick Start:
  controlroom                      # Sign in and open the dashboard
  controlroom exec status          # Run one terminal command headlessly
  controlroom sections --clearance 3
  controlroom config init          # Write ~/.config/controlroom/config.toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if canSkipConfigLoading(cmd) {
			return nil
		}
		loaded, err := config.LoadOrDefault(cfgFile)
		if err != nil {
			return output.ConfigInvalidError(configPath(), err)
		}
		cfg = loaded
		return nil
	},
	RunE: runUI,
}

// Execute runs the root command, reporting any error in the selected format.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		GetFormatter(rootCmd).PrintError(os.Stderr, err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/controlroom/config.toml)")
	rootCmd.PersistentFlags().StringVar(&profileFile, "profile", "", "YAML lab profile with personnel and projects")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "color theme: auto, mocha, macchiato, latte, nord, plain")
	rootCmd.PersistentFlags().StringVar(&debugLog, "debug-log", "", "write diagnostic logs to this file")

	// Global JSON output flag - applies to all commands
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (machine-readable)")

	rootCmd.AddCommand(
		newRunCmd(),
		newExecCmd(),
		newPersonnelCmd(),
		newSectionsCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
}

// GetFormatter returns a formatter configured for the current output mode
func GetFormatter(cmd *cobra.Command) *output.Formatter {
	return output.New(
		output.WithFormat(output.DetectFormat(jsonOutput)),
		output.WithWriter(cmd.OutOrStdout()),
	)
}

// configPath is the config file in effect.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultPath()
}

// canSkipConfigLoading reports whether cmd works without a parsed config.
// config init and path must keep working when the file is broken.
func canSkipConfigLoading(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "init", "path":
		return true
	}
	return false
}

// loadProfile reads the lab profile named by --profile or the config.
func loadProfile() (*config.Profile, error) {
	path := profileFile
	if path == "" && cfg != nil {
		path = cfg.Profile.Path
	}
	p, err := config.LoadProfile(path)
	if err != nil {
		return nil, output.ProfileInvalidError(path, err)
	}
	return p, nil
}

func goPlatform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
