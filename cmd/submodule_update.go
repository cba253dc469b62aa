package cmd

import (
	"github.com/spf13/cobra"
)

// newSubmoduleUpdateCmd creates the submodule-update command
func newSubmoduleUpdateCmd() *cobra.Command {
	var cleanup bool
	cmd := &cobra.Command{
		Use:   "submodule-update",
		Short: "Update the repository's submodules",
		Long: `Update the repository's submodules, narrowed to the configured path spec.

With --cleanup the submodules are deinitialized and leftover working copies
removed first, forcing a fresh checkout.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newContainer(cmd.Context())
			if err != nil {
				return err
			}
			return c.submoduleUpdateEngine().Execute(cmd.Context(), cleanup)
		},
	}
	cmd.Flags().BoolVar(&cleanup, "cleanup", false, "Deinitialize submodules and remove working copies first")
	return cmd
}
