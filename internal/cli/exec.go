package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aetheronum/controlroom/internal/output"
	"github.com/aetheronum/controlroom/internal/terminal"
)

func newExecCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "exec <command...>",
		Short: "Run one secure-terminal command without the UI",
		Long: `Resolve a command exactly as the in-app secure terminal would and print
its output. Unknown commands print "Command not found" and exit 0.

Examples:
  controlroom exec status
  controlroom exec --json neural
  controlroom exec --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := GetFormatter(cmd)
			if list {
				names := terminal.Commands()
				return f.OutputData(names, func(w io.Writer) error {
					for _, n := range names {
						fmt.Fprintln(w, n)
					}
					return nil
				})
			}
			if len(args) == 0 {
				return fmt.Errorf("exec needs a command; try 'controlroom exec --list'")
			}
			return f.Output(execute(strings.Join(args, " ")))
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "List the known commands")
	return cmd
}

type execResult struct {
	output.ExecResponse
}

func execute(input string) execResult {
	out, clear := terminal.Resolve(input)
	_, found := terminal.Lookup(terminal.Key(input))
	return execResult{output.ExecResponse{
		Command: input,
		Output:  out,
		Found:   found || clear,
		Clear:   clear,
	}}
}

func (r execResult) Text(w io.Writer) error {
	if r.Clear {
		return nil
	}
	_, err := fmt.Fprintln(w, r.Output)
	return err
}

func (r execResult) JSON() any { return r.ExecResponse }
