package cmd

import (
	"github.com/spf13/cobra"

	"github.com/trunkit/trunkit/internal/orchestrator"
)

// newStartCmd creates the start command
func newStartCmd() *cobra.Command {
	var (
		startName          string
		startPattern       string
		startNoSetUpstream bool
	)
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new branch off the trunk",
		Long: `Start a new branch off the freshly refreshed trunk branch.

With --name a branch of that name is created locally. Without it the
configured branch pattern is fetched from the remote and the first remote
branch (in natural order) that no local branch tracks yet is checked out,
optionally narrowed by --pattern.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newContainer(cmd.Context())
			if err != nil {
				return err
			}
			params := orchestrator.StartParams{
				Name:        startName,
				Pattern:     startPattern,
				SetUpstream: !startNoSetUpstream,
			}
			return c.startEngine().Execute(cmd.Context(), params)
		},
	}
	cmd.Flags().StringVarP(&startName, "name", "n", "", "Name for the new branch")
	cmd.Flags().StringVarP(&startPattern, "pattern", "p", "", "Regular expression narrowing the remote branch candidates")
	cmd.Flags().BoolVar(&startNoSetUpstream, "no-set-upstream", false, "Do not configure tracking for the new branch")
	return cmd
}
