package cmd

import (
	"github.com/spf13/cobra"
)

// newFinishCmd creates the finish command
func newFinishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finish",
		Short: "Merge the current branch into the trunk and delete it",
		Long: `Merge the current branch into the trunk branch and delete it.

The branch is refreshed first, merged fast-forward only (or with a merge
commit when ff is disabled), the trunk is pushed and the local and remote
branches are deleted. Branches carrying the release branch prefix are only
deleted, never merged.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newContainer(cmd.Context())
			if err != nil {
				return err
			}
			return c.finishEngine().Execute(cmd.Context())
		},
	}
}
