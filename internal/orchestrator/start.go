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

// StartParams contains the flag values for a start run.
type StartParams struct {
	// Name creates a branch with this name off the trunk. When empty the
	// branch is picked from the fetched remote heads instead.
	Name string
	// Pattern narrows the remote head candidates.
	Pattern string
	// SetUpstream configures tracking for the new branch.
	SetUpstream bool
}

// StartEngine creates a new work branch off the freshly refreshed trunk.
type StartEngine struct {
	git     repository.GitRepository
	cfg     *config.Config
	rc      *domain.RepoContext
	refresh *RefreshEngine
	filter  *usecase.FilterBranchesUseCase
	log     *zap.Logger
}

// NewStartEngine creates a new start engine.
func NewStartEngine(
	git repository.GitRepository,
	cfg *config.Config,
	rc *domain.RepoContext,
	refresh *RefreshEngine,
	log *zap.Logger,
) *StartEngine {
	return &StartEngine{
		git:     git,
		cfg:     cfg,
		rc:      rc,
		refresh: refresh,
		filter:  &usecase.FilterBranchesUseCase{},
		log:     log,
	}
}

// Execute runs the start. Branches always fork off the trunk, so the engine
// insists on being invoked there.
func (e *StartEngine) Execute(ctx context.Context, p StartParams) error {
	if !e.rc.OnTrunk() {
		return apperrors.NewPreconditionError(apperrors.ErrPrecondition,
			fmt.Sprintf("start must run on the trunk branch %s", e.rc.Trunk))
	}
	if err := e.refresh.Execute(ctx); err != nil {
		return err
	}

	if p.Name != "" {
		return e.startNamed(ctx, p)
	}
	return e.startFromRemote(ctx, p)
}

func (e *StartEngine) startNamed(ctx context.Context, p StartParams) error {
	exists, err := e.git.BranchExists(p.Name)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewPreconditionError(apperrors.ErrBranchExists,
			fmt.Sprintf("branch %s already exists", p.Name))
	}
	if err := e.git.CreateBranch(ctx, p.Name, e.rc.Trunk, false); err != nil {
		return err
	}
	e.rc.Branch = p.Name
	if p.SetUpstream && e.rc.HasRemote() {
		return e.git.PushUpstream(ctx, e.rc.Remote, p.Name)
	}
	return nil
}

func (e *StartEngine) startFromRemote(ctx context.Context, p StartParams) error {
	if !e.rc.HasRemote() {
		return apperrors.NewPreconditionError(apperrors.ErrNoMatchingBranch,
			"no remote to fetch branches from")
	}
	pat := e.cfg.FetchBranchPattern
	refspec := fmt.Sprintf("refs/heads/%s:refs/remotes/%s/%s", pat, e.rc.Remote, pat)
	if err := e.git.Fetch(ctx, e.rc.Remote, refspec); err != nil {
		return err
	}

	heads, err := e.git.RemoteHeads(e.rc.Remote)
	if err != nil {
		return err
	}
	tracked, err := e.git.TrackedHeads()
	if err != nil {
		return err
	}
	name, err := e.filter.Execute(heads, tracked, p.Pattern)
	if err != nil {
		return err
	}
	e.log.Info("starting on remote branch", zap.String("branch", name))

	if err := e.git.CreateBranch(ctx, name, e.rc.Remote+"/"+name, p.SetUpstream); err != nil {
		return err
	}
	e.rc.Branch = name
	return nil
}
