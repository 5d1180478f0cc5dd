package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List published cache entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := c.app.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no cache entries")
				return nil
			}

			for _, s := range summaries {
				marker := " "
				if s.Stateful {
					marker = "S"
				}
				if s.Meta != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s  result=%s\n", marker, s.KeyPath, s.Meta.ResultHash)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, s.KeyPath)
				}
			}
			return nil
		},
	}
}
