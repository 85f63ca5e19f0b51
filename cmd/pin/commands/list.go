package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every resolved package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			update, _ := cmd.Flags().GetBool("update")

			opts := c.resolveOptions()
			opts.Update = update
			return c.app.List(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().BoolP("update", "u", false, "Ignore the lock file and cached lookups")
	return cmd
}
