package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/symtab/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newLookupCmd() *cobra.Command {
	var (
		statePath string
		strict    bool
	)

	cmd := &cobra.Command{
		Use:   "lookup <word>...",
		Short: "Print the index of each word in a saved table, or - when absent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := c.app.Lookup(cmd.Context(), statePath, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var missing []string
			for _, r := range results {
				idx := "-"
				if r.Found {
					idx = strconv.FormatUint(uint64(r.Index), 10)
				} else {
					missing = append(missing, r.Word)
				}
				_, _ = fmt.Fprintf(out, "%s\t%s\n", idx, strconv.Quote(r.Word))
			}

			if strict && len(missing) > 0 {
				err := zerr.With(zerr.Wrap(domain.ErrSymbolNotFound, "lookup failed"), "missing", missing)
				return zerr.With(err, "state", statePath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&statePath, "state", domain.DefaultStateFile, "Snapshot to look the words up in")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any word is absent")
	return cmd
}
