package orchestrator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/trunkit/trunkit/internal/config"
	"github.com/trunkit/trunkit/internal/domain"
	apperrors "github.com/trunkit/trunkit/internal/errors"
	"github.com/trunkit/trunkit/internal/repository"
	"github.com/trunkit/trunkit/internal/usecase"
)

// SquashParams contains the flag values for a squash run.
type SquashParams struct {
	// Count is the number of commits collapsed into one, 0 for all commits
	// beyond the trunk.
	Count int
	// IncludeBodies composes the message from the squashed commit bodies.
	IncludeBodies bool
	// CustomMsg overrides the composed message.
	CustomMsg string
}

// SquashEngine collapses the newest commits of the current branch into one.
type SquashEngine struct {
	git         repository.GitRepository
	cfg         *config.Config
	rc          *domain.RepoContext
	refresh     *RefreshEngine
	message     *usecase.SquashMessageUseCase
	interactive bool
	log         *zap.Logger
}

// NewSquashEngine creates a new squash engine.
func NewSquashEngine(
	git repository.GitRepository,
	cfg *config.Config,
	rc *domain.RepoContext,
	refresh *RefreshEngine,
	interactive bool,
	log *zap.Logger,
) *SquashEngine {
	return &SquashEngine{
		git:         git,
		cfg:         cfg,
		rc:          rc,
		refresh:     refresh,
		message:     &usecase.SquashMessageUseCase{},
		interactive: interactive,
		log:         log,
	}
}

// Execute runs the squash.
func (e *SquashEngine) Execute(ctx context.Context, p SquashParams) error {
	if e.rc.OnTrunk() {
		return apperrors.NewPreconditionError(apperrors.ErrTrunkOperation,
			"squash cannot run on the trunk branch itself")
	}
	dirty, err := e.git.IsDirty(ctx)
	if err != nil {
		return err
	}
	if dirty {
		return apperrors.NewPreconditionError(apperrors.ErrPrecondition,
			"uncommitted changes, commit or stash them before squashing")
	}

	if err := e.refresh.Execute(ctx); err != nil {
		return err
	}

	ahead, err := e.git.AheadCount(ctx, e.rc.Trunk, e.rc.Branch)
	if err != nil {
		return err
	}
	if ahead == 0 {
		return apperrors.NewPreconditionError(apperrors.ErrNoChanges,
			fmt.Sprintf("branch %s has no commits to squash", e.rc.Branch))
	}
	count := p.Count
	if count == 0 {
		count = ahead
	}
	if count < 1 || count > ahead {
		return apperrors.NewPreconditionError(apperrors.ErrPrecondition,
			fmt.Sprintf("count must be between 1 and %d, got %d", ahead, count))
	}
	if count == 1 {
		e.log.Info("single commit selected, nothing to collapse")
		return nil
	}

	canEdit := e.cfg.EditSquashMessage && e.interactive
	bodies := ""
	if p.CustomMsg == "" && p.IncludeBodies {
		// message bodies of the squashed commits, oldest first
		bodies, err = e.git.MessageBodies(ctx, fmt.Sprintf("HEAD~%d..HEAD", count))
		if err != nil {
			return err
		}
	}
	msg, err := e.message.Execute(p.CustomMsg, p.IncludeBodies, bodies, canEdit)
	if err != nil {
		return err
	}

	if err := e.git.ResetSoft(ctx, fmt.Sprintf("HEAD~%d", count-1)); err != nil {
		return err
	}
	if msg != "" {
		if err := e.git.Amend(ctx, msg); err != nil {
			return err
		}
	}
	if canEdit {
		if err := e.git.AmendInteractive(); err != nil {
			return err
		}
	}
	e.log.Info("squashed commits", zap.Int("count", count), zap.String("branch", e.rc.Branch))

	if e.cfg.ForcePushSquash && e.rc.HasRemote() {
		tb, err := e.git.TrackingBranch(e.rc.Branch)
		if err != nil {
			return err
		}
		if tb != nil {
			return e.git.PushForce(ctx, e.rc.Remote, e.rc.Branch)
		}
	}
	return nil
}
