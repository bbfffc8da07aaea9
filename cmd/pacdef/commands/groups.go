package commands

import "github.com/spf13/cobra"

func (c *CLI) newGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "Show the names of all imported groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Groups(cmd.Context())
		},
	}
}
