package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/symtab/internal/core/domain"
)

func (c *CLI) newSliceCmd() *cobra.Command {
	var deslice bool

	cmd := &cobra.Command{
		Use:   "slice <text> <start:end>...",
		Short: "Intern text and narrow it by successive byte ranges",
		Long: "Intern text into a fresh table and narrow it by each range in turn.\n" +
			"Every range is relative to the result of the previous one.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ranges := make([]domain.ByteRange, 0, len(args)-1)
			for _, arg := range args[1:] {
				r, err := domain.ParseByteRange(arg)
				if err != nil {
					return err
				}
				ranges = append(ranges, r)
			}

			res, err := c.app.Slice(args[0], ranges, deslice)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%#v\n", res.Steps[0])
			for i, step := range res.Steps[1:] {
				start, end, _ := step.Range()
				_, _ = fmt.Fprintf(out, "[%s] %#v (entry %d, bytes %d:%d)\n", ranges[i], step, step.Index(), start, end)
			}
			if deslice {
				_, _ = fmt.Fprintf(out, "desliced %#v to index %d\n", res.Final, res.Final.Index())
			}
			_, _ = fmt.Fprintf(out, "table entries: %d -> %d\n", res.LenBefore, res.LenAfter)
			return nil
		},
	}
	cmd.Flags().BoolVar(&deslice, "deslice", false, "Intern the final slice as an entry of its own")
	return cmd
}
