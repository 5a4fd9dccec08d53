package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/symtab/internal/app"
)

func (c *CLI) newIngestCmd() *cobra.Command {
	var opts app.IngestOptions

	cmd := &cobra.Command{
		Use:   "ingest [paths...]",
		Short: "Tokenize sources into the symbol table and print a summary",
		Long: "Tokenize sources into the symbol table and print a summary.\n" +
			"Paths may be files, directories or glob patterns. \"-\" or no path reads standard input.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = c.configPath
			res, err := c.app.Ingest(cmd.Context(), args, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "sources:     %d\n", res.Stats.Sources)
			_, _ = fmt.Fprintf(out, "lines:       %d\n", res.Stats.Lines)
			_, _ = fmt.Fprintf(out, "tokens:      %d\n", res.Stats.Tokens)
			_, _ = fmt.Fprintf(out, "distinct:    %d\n", res.Stats.Distinct)
			_, _ = fmt.Fprintf(out, "entries:     %d\n", res.Entries)
			_, _ = fmt.Fprintf(out, "fingerprint: %s\n", res.Fingerprint)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.StatePath, "state", "", "Load the table from this snapshot first and save it afterwards")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "Number of sources read concurrently (overrides the config file)")
	return cmd
}
