package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/symtab/internal/app"
	"go.trai.ch/symtab/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

func (c *CLI) newDumpCmd() *cobra.Command {
	var (
		opts   app.IngestOptions
		format string
	)

	cmd := &cobra.Command{
		Use:   "dump [paths...]",
		Short: "Print every entry of the symbol table",
		Long: "Print every entry of the symbol table in insertion order.\n" +
			"With --state and no paths, the saved table is printed as is.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatYAML && format != formatJSON {
				return zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "cannot dump table"), "format", format)
			}

			opts.ConfigPath = c.configPath
			snap, err := c.app.Dump(cmd.Context(), args, opts)
			if err != nil {
				return err
			}
			return writeSnapshot(cmd.OutOrStdout(), snap, format)
		},
	}
	cmd.Flags().StringVar(&opts.StatePath, "state", "", "Load the table from this snapshot first and save it afterwards")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "Number of sources read concurrently (overrides the config file)")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, yaml or json")
	return cmd
}

func writeSnapshot(w io.Writer, snap domain.Snapshot, format string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return zerr.Wrap(err, "failed to encode yaml")
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return zerr.Wrap(err, "failed to encode json")
		}
		return nil
	default:
		for i, entry := range snap.Entries {
			_, _ = fmt.Fprintf(w, "%d\t%s\n", i, strconv.Quote(entry))
		}
		return nil
	}
}
