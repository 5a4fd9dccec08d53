// Package commands implements the CLI commands for symtab.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/symtab/internal/app"
	"go.trai.ch/symtab/internal/build"
	"go.trai.ch/symtab/internal/core/domain"
)

// CLI represents the command line interface for symtab.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath string
	jsonLogs   bool
}

// Application represents the application logic interface.
type Application interface {
	Ingest(ctx context.Context, args []string, opts app.IngestOptions) (*app.IngestResult, error)
	Dump(ctx context.Context, args []string, opts app.IngestOptions) (domain.Snapshot, error)
	Lookup(ctx context.Context, statePath string, words []string) ([]app.LookupResult, error)
	Slice(text string, ranges []domain.ByteRange, deslice bool) (*app.SliceResult, error)
	Demo() []domain.Symbol
	SetJSONLogs(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "symtab",
		Short:         "Intern strings into a shared symbol table",
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", domain.DefaultConfigFile, "Path to the config file")
	rootCmd.PersistentFlags().BoolVar(&c.jsonLogs, "json", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.app.SetJSONLogs(c.jsonLogs)
	}

	rootCmd.AddCommand(c.newIngestCmd())
	rootCmd.AddCommand(c.newDumpCmd())
	rootCmd.AddCommand(c.newLookupCmd())
	rootCmd.AddCommand(c.newSliceCmd())
	rootCmd.AddCommand(c.newDemoCmd())
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
