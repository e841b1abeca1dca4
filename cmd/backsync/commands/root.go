// Package commands implements the CLI commands for backsync.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/backsync/internal/app"
	"go.trai.ch/backsync/internal/build"
)

// DefaultConfigPath is the configuration file read when --config is not given.
const DefaultConfigPath = "config.yaml"

// CLI represents the command line interface for backsync.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Sync(ctx context.Context, src app.ConfigSource, opts app.SyncOptions) error
	Excluded(ctx context.Context, src app.ConfigSource, opts app.ExcludedOptions) error
	Size(ctx context.Context, src app.ConfigSource, opts app.SizeOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "backsync",
		Short:         "Back up a directory tree to a B2 bucket, honouring layered exclusion rules",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", DefaultConfigPath, "Path to the YAML configuration file")
	rootCmd.PersistentFlags().Bool("env", false, "Read the configuration from BACKSYNC_* environment variables")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newSyncCmd())
	rootCmd.AddCommand(c.newExcludedCmd())
	rootCmd.AddCommand(c.newSizeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func configSource(cmd *cobra.Command) app.ConfigSource {
	path, _ := cmd.Flags().GetString("config")
	fromEnv, _ := cmd.Flags().GetBool("env")
	return app.ConfigSource{Path: path, FromEnv: fromEnv}
}
