package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pacdef/internal/core/domain"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove unmanaged packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noConfirm, _ := cmd.Flags().GetBool("noconfirm")

			_, err := c.app.Clean(cmd.Context(), domain.ActionOptions{NoConfirm: noConfirm})
			return err
		},
	}
	cmd.Flags().Bool("noconfirm", false, "Do not ask for any confirmation")
	return cmd
}
