package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/backsync/internal/app"
)

func (c *CLI) newSizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Compute the size of the backup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			showFiles, _ := cmd.Flags().GetBool("show-files")
			largest, _ := cmd.Flags().GetInt("largest")
			csvPath, _ := cmd.Flags().GetString("csv")

			return c.app.Size(cmd.Context(), configSource(cmd), app.SizeOptions{
				ShowFiles: showFiles,
				Largest:   largest,
				CSVPath:   csvPath,
			})
		},
	}
	cmd.Flags().Bool("show-files", false, "Print every included file")
	cmd.Flags().IntP("largest", "n", 0, "Number of largest file sizes to list, 0 to disable")
	cmd.Flags().String("csv", "", "Write every visited entry to this CSV file")
	return cmd
}
