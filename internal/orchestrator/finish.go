package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/trunkit/trunkit/internal/config"
	"github.com/trunkit/trunkit/internal/domain"
	apperrors "github.com/trunkit/trunkit/internal/errors"
	"github.com/trunkit/trunkit/internal/repository"
)

// FinishEngine merges the current branch back into the trunk and deletes it.
// Release branches are only deleted, never merged.
type FinishEngine struct {
	git     repository.GitRepository
	cfg     *config.Config
	rc      *domain.RepoContext
	refresh *RefreshEngine
	log     *zap.Logger
}

// NewFinishEngine creates a new finish engine.
func NewFinishEngine(
	git repository.GitRepository,
	cfg *config.Config,
	rc *domain.RepoContext,
	refresh *RefreshEngine,
	log *zap.Logger,
) *FinishEngine {
	return &FinishEngine{git: git, cfg: cfg, rc: rc, refresh: refresh, log: log}
}

// Execute finishes the current branch.
func (e *FinishEngine) Execute(ctx context.Context) error {
	if e.rc.OnTrunk() {
		return apperrors.NewPreconditionError(apperrors.ErrTrunkOperation,
			"finish cannot run on the trunk branch itself")
	}
	branch := e.rc.Branch
	if e.cfg.ReleaseBranchPrefix != "" && strings.HasPrefix(branch, e.cfg.ReleaseBranchPrefix) {
		return e.discardReleaseBranch(ctx, branch)
	}

	ahead, err := e.git.AheadCount(ctx, e.rc.Trunk, branch)
	if err != nil {
		return err
	}
	if ahead == 0 {
		return apperrors.NewPreconditionError(apperrors.ErrNoChanges,
			fmt.Sprintf("branch %s has no commits beyond %s", branch, e.rc.Trunk))
	}
	if e.cfg.RequireSquash && ahead > 1 {
		return apperrors.NewPreconditionError(apperrors.ErrSquashRequired,
			fmt.Sprintf("branch %s carries %d commits, squash it before finishing", branch, ahead))
	}

	// resolve the upstreams before the branch is rewritten or deleted
	tb, err := e.git.TrackingBranch(branch)
	if err != nil {
		return err
	}
	trunkTB, err := e.git.TrackingBranch(e.rc.Trunk)
	if err != nil {
		return err
	}
	if tb != nil && e.rc.HasRemote() {
		if err := e.checkRemoteSync(ctx, branch, tb); err != nil {
			return err
		}
	}

	if err := e.refresh.Execute(ctx); err != nil {
		return err
	}

	if err := e.git.Checkout(ctx, e.rc.Trunk); err != nil {
		return err
	}
	e.rc.Branch = e.rc.Trunk

	if trunkTB != nil && e.rc.HasRemote() {
		if err := e.checkRemoteSync(ctx, e.rc.Trunk, trunkTB); err != nil {
			return err
		}
	}

	if err := e.git.Merge(ctx, branch, e.cfg.FF); err != nil {
		if !e.cfg.FF && e.git.MergeInProgress() {
			return apperrors.NewManualInterventionError("merge", e.rc.Trunk, false, err)
		}
		if e.cfg.FF {
			return apperrors.NewPreconditionError(apperrors.ErrMergeRejected,
				fmt.Sprintf("fast-forward merge of %s into %s rejected", branch, e.rc.Trunk)).
				WithCause(err)
		}
		return err
	}
	e.log.Info("merged branch into trunk", zap.String("branch", branch), zap.String("trunk", e.rc.Trunk))

	if e.rc.HasRemote() {
		if err := e.git.Push(ctx, e.rc.Remote, e.rc.Trunk); err != nil {
			return err
		}
		if tb != nil {
			if err := e.git.DeleteRemoteBranch(ctx, e.rc.Remote, tb.MergeRef); err != nil {
				return err
			}
		}
	}
	return e.git.DeleteBranch(ctx, branch, false)
}

// checkRemoteSync refuses to proceed while the branch and its remote copy
// differ. Finishing such a branch would discard the commits that exist only
// on one side.
func (e *FinishEngine) checkRemoteSync(ctx context.Context, branch string, tb *domain.TrackingBranch) error {
	if err := e.git.Fetch(ctx, tb.Remote, tb.MergeRef); err != nil {
		return err
	}
	diff, err := e.git.Diff(ctx, branch, tb.Remote+"/"+tb.MergeRef)
	if err != nil {
		return err
	}
	if diff != "" {
		return apperrors.NewPreconditionError(apperrors.ErrOutOfSync,
			fmt.Sprintf("branch %s is not in sync with %s on %s, sync the branch before finishing",
				branch, tb.MergeRef, tb.Remote))
	}
	return nil
}

// discardReleaseBranch deletes a release branch locally and remotely without
// ever touching the trunk.
func (e *FinishEngine) discardReleaseBranch(ctx context.Context, branch string) error {
	e.log.Info("discarding release branch", zap.String("branch", branch))
	tb, err := e.git.TrackingBranch(branch)
	if err != nil {
		return err
	}
	if tb != nil && e.rc.HasRemote() {
		if err := e.checkRemoteSync(ctx, branch, tb); err != nil {
			return err
		}
	}
	if err := e.git.Checkout(ctx, e.rc.Trunk); err != nil {
		return err
	}
	e.rc.Branch = e.rc.Trunk
	if tb != nil && e.rc.HasRemote() {
		if err := e.git.DeleteRemoteBranch(ctx, e.rc.Remote, tb.MergeRef); err != nil {
			return err
		}
	}
	return e.git.DeleteBranch(ctx, branch, true)
}
