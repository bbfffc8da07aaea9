package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pacdef/internal/core/domain"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Install packages from all groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noConfirm, _ := cmd.Flags().GetBool("noconfirm")

			_, err := c.app.Sync(cmd.Context(), domain.ActionOptions{NoConfirm: noConfirm})
			return err
		},
	}
	cmd.Flags().Bool("noconfirm", false, "Do not ask for any confirmation")
	return cmd
}
