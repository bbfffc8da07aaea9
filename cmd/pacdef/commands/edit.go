package commands

import "github.com/spf13/cobra"

func (c *CLI) newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <group>...",
		Short: "Edit one or more existing groups",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Edit(cmd.Context(), args)
		},
	}
}
