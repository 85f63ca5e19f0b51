package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "which <package-path>",
		Short: "Show the package that provides a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Which(cmd.Context(), cmd.OutOrStdout(), args[0], c.resolveOptions())
		},
	}
}
