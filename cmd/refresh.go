package cmd

import (
	"github.com/spf13/cobra"
)

// newRefreshCmd creates the refresh command
func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Synchronize the current branch with the trunk",
		Long: `Synchronize the current branch with the trunk branch.

Local changes are stashed, the trunk is pulled with rebase from its upstream,
the branch is rebased onto the trunk and the stash is restored. Conflicts are
left in the working tree for manual resolution.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newContainer(cmd.Context())
			if err != nil {
				return err
			}
			return c.refreshEngine().Execute(cmd.Context())
		},
	}
}
