package commands

import "github.com/spf13/cobra"

func (c *CLI) newUnmanagedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unmanaged",
		Short: "Show explicitly installed packages not managed by pacdef",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Unmanaged(cmd.Context())
		},
	}
}
