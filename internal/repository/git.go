package repository

import (
	"context"

	"github.com/trunkit/trunkit/internal/domain"
)

// GitRepository defines the interface for Git operations.

type GitRepository interface {
	CurrentBranch() (string, error)
	IsDirty(ctx context.Context) (bool, error)
	StashPush(ctx context.Context, message string) error
	StashPop(ctx context.Context) error
	Checkout(ctx context.Context, branch string) error
	CreateBranch(ctx context.Context, name, startPoint string, track bool) error
	BranchExists(name string) (bool, error)
	DeleteBranch(ctx context.Context, name string, force bool) error
	DeleteRemoteBranch(ctx context.Context, remote, name string) error
	PullRebase(ctx context.Context, remote, branch string) error
	Rebase(ctx context.Context, onto string) error
	RebaseInProgress() bool
	Merge(ctx context.Context, branch string, ffOnly bool) error
	MergeInProgress() bool
	Fetch(ctx context.Context, remote, refspec string) error
	Push(ctx context.Context, remote, ref string) error
	PushUpstream(ctx context.Context, remote, branch string) error
	PushForce(ctx context.Context, remote, ref string) error
	PushTags(ctx context.Context, remote string) error
	AheadCount(ctx context.Context, base, head string) (int, error)
	Diff(ctx context.Context, a, b string) (string, error)
	HasUnmergedPaths(ctx context.Context) (bool, error)
	RevParse(ctx context.Context, ref string) (string, error)
	Tags(ctx context.Context) ([]string, error)
	CreateTag(ctx context.Context, name, ref, message string, edit bool) error
	CommitsBetween(ctx context.Context, from, to string) ([]domain.Commit, error)
	MessageBodies(ctx context.Context, revRange string) (string, error)
	ResetSoft(ctx context.Context, ref string) error
	Amend(ctx context.Context, message string) error
	AmendInteractive() error
	TrackingBranch(branch string) (*domain.TrackingBranch, error)
	RemoteHeads(remote string) ([]string, error)
	TrackedHeads() ([]string, error)
	SubmodulePaths(ctx context.Context) ([]string, error)
	SubmoduleDeinit(ctx context.Context, paths []string) error
	SubmoduleUpdate(ctx context.Context, paths []string) error
}
