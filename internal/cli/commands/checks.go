package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/camcheck/pkg/analyzer"
)

// NewChecksCommand creates the checks command.
func NewChecksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "checks",
		Short: "List available checks",
		Long:  "List the check IDs accepted by --check, in report order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range analyzer.Checks() {
				if _, err := fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name); err != nil {
					return err
				}
			}
			return tw.Flush()
		},
	}
}
