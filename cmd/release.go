package cmd

import (
	"github.com/spf13/cobra"

	"github.com/trunkit/trunkit/internal/domain"
	"github.com/trunkit/trunkit/internal/orchestrator"
)

// newReleaseCmd creates the release command
func newReleaseCmd() *cobra.Command {
	var (
		releaseVersion string
		releaseRef     string
		releaseForce   bool
		releasePart    string
	)
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Tag the release target with the next version",
		Long: `Tag the release target with an annotated version tag.

Without --version the next version is derived from the latest tag by bumping
the given part (semantic versioning only). The tag message lists the released
commits and is opened in the editor when edit-tag-message is on. Tags are
pushed when a remote exists.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			part, err := domain.ParsePart(releasePart)
			if err != nil {
				return err
			}
			c, err := newContainer(cmd.Context())
			if err != nil {
				return err
			}
			params := orchestrator.ReleaseParams{
				Version: releaseVersion,
				Ref:     releaseRef,
				Force:   releaseForce,
				Part:    part,
			}
			return c.releaseEngine().Execute(cmd.Context(), params)
		},
	}
	cmd.Flags().StringVarP(&releaseVersion, "version", "v", "", "Explicit version to release")
	cmd.Flags().StringVarP(&releaseRef, "ref", "r", "", "Ref to release (defaults to the current branch)")
	cmd.Flags().BoolVarP(&releaseForce, "force", "f", false, "Skip the monotonicity and nothing-to-release checks")
	cmd.Flags().StringVarP(&releasePart, "part", "p", "minor", "Version part to bump (major, minor, patch)")
	return cmd
}
