package cmd

import (
	"github.com/spf13/cobra"

	"github.com/trunkit/trunkit/internal/orchestrator"
)

// newSquashCmd creates the squash command
func newSquashCmd() *cobra.Command {
	var (
		squashCount       int
		squashNoSquashMsg bool
		squashCustomMsg   string
	)
	cmd := &cobra.Command{
		Use:   "squash",
		Short: "Collapse the newest commits of the branch into one",
		Long: `Collapse the newest commits of the current branch into a single commit.

The branch is refreshed first. By default all commits beyond the trunk are
collapsed and the new message is composed from their messages; --count limits
the number of commits, --custom-msg replaces the message. The branch is
force-pushed afterwards when configured and tracking a remote branch.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newContainer(cmd.Context())
			if err != nil {
				return err
			}
			params := orchestrator.SquashParams{
				Count:         squashCount,
				IncludeBodies: !squashNoSquashMsg,
				CustomMsg:     squashCustomMsg,
			}
			return c.squashEngine().Execute(cmd.Context(), params)
		},
	}
	cmd.Flags().IntVarP(&squashCount, "count", "c", 0, "Number of commits to collapse (defaults to all beyond the trunk)")
	cmd.Flags().BoolVar(&squashNoSquashMsg, "no-squash-msg", false, "Do not compose the message from the squashed commits")
	cmd.Flags().StringVar(&squashCustomMsg, "custom-msg", "", "Use this commit message instead")
	return cmd
}
