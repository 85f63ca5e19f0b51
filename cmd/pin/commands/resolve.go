package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve dependencies and write the lock file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			update, _ := cmd.Flags().GetBool("update")
			noLock, _ := cmd.Flags().GetBool("no-lock")

			opts := c.resolveOptions()
			opts.Update = update
			opts.NoLock = noLock
			return c.app.Resolve(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolP("update", "u", false, "Ignore the lock file and cached lookups")
	cmd.Flags().Bool("no-lock", false, "Do not write the lock file")
	return cmd
}
