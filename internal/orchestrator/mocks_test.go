package orchestrator

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/trunkit/trunkit/internal/domain"
)

// Mock for GitRepository - implements ALL methods from the interface
type mockGitRepository struct{ mock.Mock }

func (m *mockGitRepository) CurrentBranch() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
func (m *mockGitRepository) IsDirty(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
func (m *mockGitRepository) StashPush(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}
func (m *mockGitRepository) StashPop(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockGitRepository) Checkout(ctx context.Context, branch string) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}
func (m *mockGitRepository) CreateBranch(ctx context.Context, name, startPoint string, track bool) error {
	args := m.Called(ctx, name, startPoint, track)
	return args.Error(0)
}
func (m *mockGitRepository) BranchExists(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}
func (m *mockGitRepository) DeleteBranch(ctx context.Context, name string, force bool) error {
	args := m.Called(ctx, name, force)
	return args.Error(0)
}
func (m *mockGitRepository) DeleteRemoteBranch(ctx context.Context, remote, name string) error {
	args := m.Called(ctx, remote, name)
	return args.Error(0)
}
func (m *mockGitRepository) PullRebase(ctx context.Context, remote, branch string) error {
	args := m.Called(ctx, remote, branch)
	return args.Error(0)
}
func (m *mockGitRepository) Rebase(ctx context.Context, onto string) error {
	args := m.Called(ctx, onto)
	return args.Error(0)
}
func (m *mockGitRepository) RebaseInProgress() bool {
	args := m.Called()
	return args.Bool(0)
}
func (m *mockGitRepository) Merge(ctx context.Context, branch string, ffOnly bool) error {
	args := m.Called(ctx, branch, ffOnly)
	return args.Error(0)
}
func (m *mockGitRepository) MergeInProgress() bool {
	args := m.Called()
	return args.Bool(0)
}
func (m *mockGitRepository) Fetch(ctx context.Context, remote, refspec string) error {
	args := m.Called(ctx, remote, refspec)
	return args.Error(0)
}
func (m *mockGitRepository) Push(ctx context.Context, remote, ref string) error {
	args := m.Called(ctx, remote, ref)
	return args.Error(0)
}
func (m *mockGitRepository) PushUpstream(ctx context.Context, remote, branch string) error {
	args := m.Called(ctx, remote, branch)
	return args.Error(0)
}
func (m *mockGitRepository) PushForce(ctx context.Context, remote, ref string) error {
	args := m.Called(ctx, remote, ref)
	return args.Error(0)
}
func (m *mockGitRepository) PushTags(ctx context.Context, remote string) error {
	args := m.Called(ctx, remote)
	return args.Error(0)
}
func (m *mockGitRepository) AheadCount(ctx context.Context, base, head string) (int, error) {
	args := m.Called(ctx, base, head)
	return args.Int(0), args.Error(1)
}
func (m *mockGitRepository) Diff(ctx context.Context, a, b string) (string, error) {
	args := m.Called(ctx, a, b)
	return args.String(0), args.Error(1)
}
func (m *mockGitRepository) HasUnmergedPaths(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
func (m *mockGitRepository) RevParse(ctx context.Context, ref string) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}
func (m *mockGitRepository) Tags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	tags, _ := args.Get(0).([]string)
	return tags, args.Error(1)
}
func (m *mockGitRepository) CreateTag(ctx context.Context, name, ref, message string, edit bool) error {
	args := m.Called(ctx, name, ref, message, edit)
	return args.Error(0)
}
func (m *mockGitRepository) CommitsBetween(ctx context.Context, from, to string) ([]domain.Commit, error) {
	args := m.Called(ctx, from, to)
	commits, _ := args.Get(0).([]domain.Commit)
	return commits, args.Error(1)
}
func (m *mockGitRepository) MessageBodies(ctx context.Context, revRange string) (string, error) {
	args := m.Called(ctx, revRange)
	return args.String(0), args.Error(1)
}
func (m *mockGitRepository) ResetSoft(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}
func (m *mockGitRepository) Amend(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}
func (m *mockGitRepository) AmendInteractive() error {
	args := m.Called()
	return args.Error(0)
}
func (m *mockGitRepository) TrackingBranch(branch string) (*domain.TrackingBranch, error) {
	args := m.Called(branch)
	tb, _ := args.Get(0).(*domain.TrackingBranch)
	return tb, args.Error(1)
}
func (m *mockGitRepository) RemoteHeads(remote string) ([]string, error) {
	args := m.Called(remote)
	heads, _ := args.Get(0).([]string)
	return heads, args.Error(1)
}
func (m *mockGitRepository) TrackedHeads() ([]string, error) {
	args := m.Called()
	heads, _ := args.Get(0).([]string)
	return heads, args.Error(1)
}
func (m *mockGitRepository) SubmodulePaths(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	paths, _ := args.Get(0).([]string)
	return paths, args.Error(1)
}
func (m *mockGitRepository) SubmoduleDeinit(ctx context.Context, paths []string) error {
	args := m.Called(ctx, paths)
	return args.Error(0)
}
func (m *mockGitRepository) SubmoduleUpdate(ctx context.Context, paths []string) error {
	args := m.Called(ctx, paths)
	return args.Error(0)
}
