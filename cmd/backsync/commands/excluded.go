package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/backsync/internal/app"
)

func (c *CLI) newExcludedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "excluded",
		Short: "List the entries that will not be backed up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			patterns, _ := cmd.Flags().GetBool("patterns")

			return c.app.Excluded(cmd.Context(), configSource(cmd), app.ExcludedOptions{
				Patterns: patterns,
			})
		},
	}
	cmd.Flags().BoolP("patterns", "p", false, "Print the exclusion patterns passed to the transfer engine")
	return cmd
}
