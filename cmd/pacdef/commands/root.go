// Package commands implements the CLI commands for pacdef.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pacdef/internal/build"
	"go.trai.ch/pacdef/internal/core/domain"
)

// CLI represents the command line interface for pacdef.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	verbose func()
}

// Application represents the application logic interface.
type Application interface {
	Sync(ctx context.Context, opts domain.ActionOptions) (domain.Outcome, error)
	Clean(ctx context.Context, opts domain.ActionOptions) (domain.Outcome, error)
	Unmanaged(ctx context.Context) error
	Groups(ctx context.Context) error
	Edit(ctx context.Context, names []string) error
}

// Option configures a CLI.
type Option func(*CLI)

// WithVerboseHook sets the function called before any command runs when
// --verbose is given.
func WithVerboseHook(fn func()) Option {
	return func(c *CLI) {
		c.verbose = fn
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pacdef",
		Short:         "Declarative package management across package managers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// -v stays with --version.
	rootCmd.PersistentFlags().Bool("verbose", false, "Log debug output")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && c.verbose != nil {
			c.verbose()
		}
	}

	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newEditCmd())
	rootCmd.AddCommand(c.newGroupsCmd())
	rootCmd.AddCommand(c.newSyncCmd())
	rootCmd.AddCommand(c.newUnmanagedCmd())
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
