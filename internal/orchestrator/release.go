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

// ReleaseParams contains the flag values for a release run.
type ReleaseParams struct {
	// Version is the explicit version, "" to derive one.
	Version string
	// Ref is the release target, "" for the current branch tip.
	Ref string
	// Force skips the monotonicity and nothing-to-release checks.
	Force bool
	// Part is the semver component bumped when deriving.
	Part domain.Part
}

// ReleaseEngine turns the release target into an annotated version tag.
type ReleaseEngine struct {
	git         repository.GitRepository
	cfg         *config.Config
	rc          *domain.RepoContext
	nextVersion *usecase.NextVersionUseCase
	tagMessage  *usecase.TagMessageUseCase
	interactive bool
	log         *zap.Logger
}

// NewReleaseEngine creates a new release engine.
func NewReleaseEngine(
	git repository.GitRepository,
	cfg *config.Config,
	rc *domain.RepoContext,
	interactive bool,
	log *zap.Logger,
) *ReleaseEngine {
	return &ReleaseEngine{
		git:         git,
		cfg:         cfg,
		rc:          rc,
		nextVersion: &usecase.NextVersionUseCase{Scheme: domain.SchemeFor(cfg.UseSemver)},
		tagMessage:  &usecase.TagMessageUseCase{},
		interactive: interactive,
		log:         log,
	}
}

// Execute runs the release.
func (e *ReleaseEngine) Execute(ctx context.Context, p ReleaseParams) error {
	if e.rc.HasRemote() {
		if err := e.git.Fetch(ctx, e.rc.Remote, "refs/tags/*:refs/tags/*"); err != nil {
			return err
		}
	}

	target := p.Ref
	if target == "" {
		target = e.rc.Branch
	}
	if _, err := e.git.RevParse(ctx, target); err != nil {
		return apperrors.NewPreconditionError(apperrors.ErrPrecondition,
			fmt.Sprintf("unknown release target %q", target))
	}

	tags, err := e.git.Tags(ctx)
	if err != nil {
		return err
	}
	var versions []string
	for _, tag := range tags {
		if v, ok := domain.StripPrefix(e.cfg.VersionPrefix, tag); ok {
			versions = append(versions, v)
		}
	}
	scheme := e.nextVersion.Scheme
	latest := scheme.Latest(versions)
	prevTag := ""
	if latest != "" {
		prevTag = domain.AttachPrefix(e.cfg.VersionPrefix, latest)
	}

	if prevTag != "" && !p.Force {
		ahead, err := e.git.AheadCount(ctx, prevTag, target)
		if err != nil {
			return err
		}
		if ahead == 0 {
			return apperrors.NewPreconditionError(apperrors.ErrNothingToRelease,
				fmt.Sprintf("%s carries no commits beyond %s", target, prevTag))
		}
	}

	next, err := e.nextVersion.Execute(versions, p.Version, p.Part, p.Force)
	if err != nil {
		return err
	}
	tag := domain.AttachPrefix(e.cfg.VersionPrefix, next)

	commits, err := e.git.CommitsBetween(ctx, prevTag, target)
	if err != nil {
		return err
	}
	msg := e.tagMessage.Execute(tag, commits)

	edit := e.cfg.EditTagMessage && e.interactive
	if err := e.git.CreateTag(ctx, tag, target, msg, edit); err != nil {
		return err
	}
	e.log.Info("created release tag",
		zap.String("tag", tag),
		zap.String("target", target),
		zap.Int("commits", len(commits)))

	if e.rc.HasRemote() {
		return e.git.PushTags(ctx, e.rc.Remote)
	}
	return nil
}
