package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trunkit/trunkit/internal/config"
	"github.com/trunkit/trunkit/internal/domain"
	apperrors "github.com/trunkit/trunkit/internal/errors"
)

func newStartEngine(git *mockGitRepository, cfg *config.Config, rc *domain.RepoContext) *StartEngine {
	log := zap.NewNop()
	return NewStartEngine(git, cfg, rc, NewRefreshEngine(git, rc, log), log)
}

func expectTrunkRefresh(git *mockGitRepository) {
	git.On("IsDirty", mock.Anything).Return(false, nil)
	git.On("TrackingBranch", "master").Return(trunkUpstream(), nil)
	git.On("PullRebase", mock.Anything, "origin", "master").Return(nil)
}

func TestStartEngine(t *testing.T) {
	t.Run("Should insist on running from the trunk", func(t *testing.T) {
		git := new(mockGitRepository)
		err := newStartEngine(git, config.DefaultConfig(), testContext("feature/a")).
			Execute(context.Background(), StartParams{Name: "feature/b"})
		assert.True(t, errors.Is(err, apperrors.ErrPrecondition))
	})
	t.Run("Should create a named branch off the trunk", func(t *testing.T) {
		git := new(mockGitRepository)
		rc := testContext("master")
		expectTrunkRefresh(git)
		git.On("BranchExists", "feature/b").Return(false, nil)
		git.On("CreateBranch", mock.Anything, "feature/b", "master", false).Return(nil)
		git.On("PushUpstream", mock.Anything, "origin", "feature/b").Return(nil)

		err := newStartEngine(git, config.DefaultConfig(), rc).
			Execute(context.Background(), StartParams{Name: "feature/b", SetUpstream: true})
		require.NoError(t, err)
		assert.Equal(t, "feature/b", rc.Branch)
		git.AssertExpectations(t)
	})
	t.Run("Should not push upstream when disabled", func(t *testing.T) {
		git := new(mockGitRepository)
		rc := testContext("master")
		expectTrunkRefresh(git)
		git.On("BranchExists", "feature/b").Return(false, nil)
		git.On("CreateBranch", mock.Anything, "feature/b", "master", false).Return(nil)

		err := newStartEngine(git, config.DefaultConfig(), rc).
			Execute(context.Background(), StartParams{Name: "feature/b"})
		require.NoError(t, err)
		git.AssertNotCalled(t, "PushUpstream", mock.Anything, mock.Anything, mock.Anything)
	})
	t.Run("Should refuse an existing branch name", func(t *testing.T) {
		git := new(mockGitRepository)
		rc := testContext("master")
		expectTrunkRefresh(git)
		git.On("BranchExists", "feature/b").Return(true, nil)

		err := newStartEngine(git, config.DefaultConfig(), rc).
			Execute(context.Background(), StartParams{Name: "feature/b"})
		assert.True(t, errors.Is(err, apperrors.ErrBranchExists))
		git.AssertNotCalled(t, "CreateBranch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
	t.Run("Should start on the naturally first untracked remote head", func(t *testing.T) {
		git := new(mockGitRepository)
		rc := testContext("master")
		expectTrunkRefresh(git)
		git.On("Fetch", mock.Anything, "origin", "refs/heads/*:refs/remotes/origin/*").Return(nil)
		git.On("RemoteHeads", "origin").Return([]string{"master", "ticket-10", "ticket-2"}, nil)
		git.On("TrackedHeads").Return([]string{"master"}, nil)
		git.On("CreateBranch", mock.Anything, "ticket-2", "origin/ticket-2", true).Return(nil)

		err := newStartEngine(git, config.DefaultConfig(), rc).
			Execute(context.Background(), StartParams{SetUpstream: true})
		require.NoError(t, err)
		assert.Equal(t, "ticket-2", rc.Branch)
		git.AssertExpectations(t)
	})
	t.Run("Should narrow candidates by the pattern flag", func(t *testing.T) {
		git := new(mockGitRepository)
		rc := testContext("master")
		expectTrunkRefresh(git)
		git.On("Fetch", mock.Anything, "origin", "refs/heads/*:refs/remotes/origin/*").Return(nil)
		git.On("RemoteHeads", "origin").Return([]string{"bugfix/7", "feature/3"}, nil)
		git.On("TrackedHeads").Return(nil, nil)
		git.On("CreateBranch", mock.Anything, "feature/3", "origin/feature/3", false).Return(nil)

		err := newStartEngine(git, config.DefaultConfig(), rc).
			Execute(context.Background(), StartParams{Pattern: "^feature/"})
		require.NoError(t, err)
	})
	t.Run("Should fail when every head is already tracked", func(t *testing.T) {
		git := new(mockGitRepository)
		rc := testContext("master")
		expectTrunkRefresh(git)
		git.On("Fetch", mock.Anything, "origin", "refs/heads/*:refs/remotes/origin/*").Return(nil)
		git.On("RemoteHeads", "origin").Return([]string{"ticket-2"}, nil)
		git.On("TrackedHeads").Return([]string{"ticket-2"}, nil)

		err := newStartEngine(git, config.DefaultConfig(), rc).
			Execute(context.Background(), StartParams{})
		assert.True(t, errors.Is(err, apperrors.ErrNoMatchingBranch))
		git.AssertNotCalled(t, "CreateBranch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
	t.Run("Should fail without a remote to fetch from", func(t *testing.T) {
		git := new(mockGitRepository)
		rc := testContext("master")
		rc.Remote = ""
		git.On("IsDirty", mock.Anything).Return(false, nil)
		git.On("TrackingBranch", "master").Return(nil, nil)

		err := newStartEngine(git, config.DefaultConfig(), rc).
			Execute(context.Background(), StartParams{})
		assert.True(t, errors.Is(err, apperrors.ErrNoMatchingBranch))
		git.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything)
	})
}
