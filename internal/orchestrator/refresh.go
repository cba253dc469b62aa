// Package orchestrator contains the workflow engines. Each engine runs one
// strictly sequential sequence of git operations; every failure is terminal
// and conflicts are left in place for the user to resolve.
package orchestrator

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trunkit/trunkit/internal/domain"
	apperrors "github.com/trunkit/trunkit/internal/errors"
	"github.com/trunkit/trunkit/internal/repository"
)

// RefreshEngine synchronizes the current branch with the trunk: the trunk is
// pulled with rebase from its upstream and the branch rebased onto it. Local
// changes are stashed around the whole run.
type RefreshEngine struct {
	git repository.GitRepository
	rc  *domain.RepoContext
	log *zap.Logger
}

// NewRefreshEngine creates a new refresh engine.
func NewRefreshEngine(git repository.GitRepository, rc *domain.RepoContext, log *zap.Logger) *RefreshEngine {
	return &RefreshEngine{git: git, rc: rc, log: log}
}

// Execute runs the refresh. Idempotent on a clean, synchronized branch.
func (e *RefreshEngine) Execute(ctx context.Context) error {
	dirty, err := e.git.IsDirty(ctx)
	if err != nil {
		return err
	}
	stashed := false
	if dirty {
		marker := "trunkit-refresh-" + uuid.NewString()
		e.log.Info("stashing local changes", zap.String("marker", marker))
		if err := e.git.StashPush(ctx, marker); err != nil {
			return err
		}
		stashed = true
	}

	branch := e.rc.Branch
	if branch != e.rc.Trunk {
		if err := e.git.Checkout(ctx, e.rc.Trunk); err != nil {
			return err
		}
		e.rc.Branch = e.rc.Trunk
	}

	tb, err := e.git.TrackingBranch(e.rc.Trunk)
	if err != nil {
		return err
	}
	if tb != nil && e.rc.HasRemote() {
		if err := e.git.PullRebase(ctx, tb.Remote, tb.MergeRef); err != nil {
			return e.classifyRebase(err, stashed)
		}
	}

	if branch != e.rc.Trunk {
		if err := e.git.Checkout(ctx, branch); err != nil {
			return err
		}
		e.rc.Branch = branch
		if err := e.git.Rebase(ctx, e.rc.Trunk); err != nil {
			return e.classifyRebase(err, stashed)
		}
	}

	if stashed {
		if err := e.git.StashPop(ctx); err != nil {
			return e.classifyStashPop(ctx, err)
		}
	}
	return nil
}

// classifyStashPop distinguishes a conflicting pop, which leaves unmerged
// index entries and keeps the stash entry, from a plain command failure.
func (e *RefreshEngine) classifyStashPop(ctx context.Context, err error) error {
	unmerged, checkErr := e.git.HasUnmergedPaths(ctx)
	if checkErr == nil && unmerged {
		return apperrors.NewManualInterventionError("stash-pop", e.rc.Branch, true, err)
	}
	return err
}

// classifyRebase distinguishes a conflict stop from a plain command failure.
// The repository stays wherever git stopped in both cases.
func (e *RefreshEngine) classifyRebase(err error, stashed bool) error {
	if e.git.RebaseInProgress() {
		return apperrors.NewManualInterventionError("rebase", e.rc.Branch, stashed, err)
	}
	return err
}
