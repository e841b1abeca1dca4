package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/backsync/internal/app"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Upload the source directory, skipping excluded entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			verbose, _ := cmd.Flags().GetBool("verbose")

			return c.app.Sync(cmd.Context(), configSource(cmd), app.SyncOptions{
				DryRun:  dryRun,
				Verbose: verbose,
			})
		},
	}
	cmd.Flags().Bool("dry-run", false, "Show what would be transferred without changing the bucket")
	cmd.Flags().BoolP("verbose", "v", false, "Log every excluded path")
	return cmd
}
