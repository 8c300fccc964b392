package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aetheronum/controlroom/internal/model"
	"github.com/aetheronum/controlroom/internal/nav"
	"github.com/aetheronum/controlroom/internal/output"
)

func newSectionsCmd() *cobra.Command {
	var clearance int
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List navigable sections and their clearance requirements",
		Long: `List the sidebar sections in display order with the clearance level each
requires. With --clearance, also report which ones that level may enter.

Examples:
  controlroom sections
  controlroom sections --clearance 2 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			check := cmd.Flags().Changed("clearance")
			if check && (clearance < model.MinClearance || clearance > model.MaxClearance) {
				return fmt.Errorf("clearance %d outside %d-%d", clearance, model.MinClearance, model.MaxClearance)
			}

			resp := output.SectionsResponse{TimestampedResponse: output.NewTimestamped()}
			if check {
				resp.Clearance = clearance
			}
			for _, s := range nav.Sections() {
				item := output.SectionItem{ID: s.ID, Label: s.Label, Clearance: s.Clearance}
				if check {
					allowed := s.Allows(clearance)
					item.Allowed = &allowed
				}
				resp.Sections = append(resp.Sections, item)
			}

			return GetFormatter(cmd).OutputData(resp, func(w io.Writer) error {
				headers := []string{"KEY", "SECTION", "REQUIRES"}
				if check {
					headers = append(headers, "ACCESS")
				}
				table := output.NewTable(w, headers...)
				for i, s := range resp.Sections {
					row := []string{strconv.Itoa((i + 1) % 10), s.Label, fmt.Sprintf("CL-%d", s.Clearance)}
					if s.Allowed != nil {
						access := "denied"
						if *s.Allowed {
							access = "granted"
						}
						row = append(row, access)
					}
					table.AddRow(row...)
				}
				table.Render()
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&clearance, "clearance", 0, "check access for this clearance level (1-5)")
	return cmd
}
