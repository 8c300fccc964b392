package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aetheronum/controlroom/internal/output"
)

func newPersonnelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "personnel",
		Short: "List the personnel who can sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile()
			if err != nil {
				return err
			}

			resp := output.PersonnelResponse{TimestampedResponse: output.NewTimestamped()}
			for _, p := range profile.Personnel {
				resp.Personnel = append(resp.Personnel, output.PersonItem{
					ID:         p.ID,
					Name:       p.Name,
					Clearance:  p.Clearance,
					Department: p.Department,
				})
			}

			return GetFormatter(cmd).OutputData(resp, func(w io.Writer) error {
				table := output.NewTable(w, "ID", "NAME", "CL", "DEPARTMENT")
				for _, p := range resp.Personnel {
					table.AddRow(p.ID, p.Name, strconv.Itoa(p.Clearance), p.Department)
				}
				table.Render()
				_, err := fmt.Fprintf(w, "\n%s on the roster\n",
					output.CountStr(len(resp.Personnel), "person", "people"))
				return err
			})
		},
	}
}
