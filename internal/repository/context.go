package repository

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/trunkit/trunkit/internal/domain"
)

// TopLevel returns the root of the working tree containing the runner's
// working directory.
func TopLevel(ctx context.Context, runner Runner) (string, error) {
	return runner.Run(ctx, "rev-parse", "--show-toplevel")
}

// SuperprojectWorkTree returns the working tree of the superproject when the
// repository is checked out as a submodule, "" otherwise.
func SuperprojectWorkTree(ctx context.Context, runner Runner) (string, error) {
	return runner.Run(ctx, "rev-parse", "--show-superproject-working-tree")
}

// SubmoduleRelPath returns the repository path relative to its superproject,
// "" for a standalone repository.
func SubmoduleRelPath(superproject, topLevel string) (string, error) {
	if superproject == "" {
		return "", nil
	}
	rel, err := filepath.Rel(superproject, topLevel)
	if err != nil {
		return "", fmt.Errorf("failed to resolve submodule path: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

// BranchInfo is the subset of GitRepository needed for context resolution.
type BranchInfo interface {
	CurrentBranch() (string, error)
	TrackingBranch(branch string) (*domain.TrackingBranch, error)
}

// ResolveContext builds the repository context an engine runs against. The
// remote is the tracking remote of the current branch, falling back to the
// trunk's tracking remote; a repository without either is remote-less.
func ResolveContext(gitRepo BranchInfo, workDir, trunk, submodulePath string) (*domain.RepoContext, error) {
	branch, err := gitRepo.CurrentBranch()
	if err != nil {
		return nil, err
	}
	remote := ""
	tb, err := gitRepo.TrackingBranch(branch)
	if err != nil {
		return nil, err
	}
	if tb == nil {
		tb, err = gitRepo.TrackingBranch(trunk)
		if err != nil {
			return nil, err
		}
	}
	if tb != nil {
		remote = tb.Remote
	}
	return &domain.RepoContext{
		WorkDir:       workDir,
		Branch:        branch,
		Trunk:         trunk,
		Remote:        remote,
		SubmodulePath: submodulePath,
	}, nil
}
