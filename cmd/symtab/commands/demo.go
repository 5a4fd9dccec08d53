package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Intern a couple of words and print their handles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, sym := range c.app.Demo() {
				_, _ = fmt.Fprintf(out, "%d\t%#v\t%s\n", sym.Index(), sym, sym)
			}
			return nil
		},
	}
}
