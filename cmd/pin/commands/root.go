// Package commands implements the CLI commands for pin.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pin/internal/app"
	"go.trai.ch/pin/internal/build"
	"go.trai.ch/pin/internal/core/domain"
)

// CLI represents the command line interface for pin.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath string
	verbose    bool
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, opts app.ResolveOptions) error
	List(ctx context.Context, w io.Writer, opts app.ResolveOptions) error
	Which(ctx context.Context, w io.Writer, path string, opts app.ResolveOptions) error
	Clean(ctx context.Context) error
	SetVerbose(verbose bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "pin",
		Short:         "Resolve source dependencies to pinned commits",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			c.app.SetVerbose(c.verbose)
		},
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

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", domain.ManifestFileName, "Path to the manifest")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newWhichCmd())
	rootCmd.AddCommand(c.newCleanCmd())
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

func (c *CLI) resolveOptions() app.ResolveOptions {
	return app.ResolveOptions{ConfigPath: c.configPath}
}
