package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/aetheronum/controlroom/internal/config"
	"github.com/aetheronum/controlroom/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return GetFormatter(cmd).OutputData(cfg, func(w io.Writer) error {
				if _, err := os.Stat(configPath()); errors.Is(err, fs.ErrNotExist) {
					output.ProgressWriter(cmd.ErrOrStderr()).Info("No config file, showing defaults")
				}
				return config.Print(cfg, w)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefault(cfgFile)
			if err != nil {
				return err
			}
			resp := output.ConfigPathResponse{Path: path, Exists: true, Created: true}
			return GetFormatter(cmd).OutputData(resp, func(w io.Writer) error {
				output.ProgressWriter(w).Successf("Created config file: %s", path)
				output.PrintSuccessFooter(w, output.ConfigInitSuggestions(path)...)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath()
			_, err := os.Stat(path)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			resp := output.ConfigPathResponse{Path: path, Exists: err == nil}
			return GetFormatter(cmd).OutputData(resp, func(w io.Writer) error {
				if !resp.Exists {
					output.ProgressWriter(cmd.ErrOrStderr()).Warning("Not created yet, run 'controlroom config init'")
				}
				_, err := fmt.Fprintln(w, path)
				return err
			})
		},
	})

	return cmd
}
