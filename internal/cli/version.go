package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/aetheronum/controlroom/internal/output"
)

func newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := output.VersionResponse{
				TimestampedResponse: output.NewTimestamped(),
				Version:             Version,
				Commit:              Commit,
				BuiltAt:             Date,
				GoVersion:           runtime.Version(),
				Platform:            goPlatform(),
			}
			return GetFormatter(cmd).OutputData(resp, func(w io.Writer) error {
				if short {
					_, err := fmt.Fprintln(w, Version)
					return err
				}
				fmt.Fprintf(w, "controlroom version %s\n", Version)
				fmt.Fprintf(w, "  commit:    %s\n", Commit)
				fmt.Fprintf(w, "  built:     %s\n", Date)
				fmt.Fprintf(w, "  go:        %s\n", resp.GoVersion)
				fmt.Fprintf(w, "  platform:  %s\n", resp.Platform)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")
	return cmd
}
