package commands

import (
	"github.com/spf13/cobra"
	"github.com/tpvasconcelos/maurice/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [key-path]",
		Short: "Remove cached entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{All: all}
			if len(args) == 1 {
				opts.KeyPath = args[0]
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Remove the whole cache root, including old format versions")

	return cmd
}
