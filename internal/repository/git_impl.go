package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/zap"

	"github.com/trunkit/trunkit/internal/domain"
	apperrors "github.com/trunkit/trunkit/internal/errors"
)

// gitRepository is the implementation of the GitRepository interface. All
// mutations run through the subprocess runner; read-only introspection uses
// go-git on the same working tree.
type gitRepository struct {
	runner  Runner
	repo    *git.Repository
	workDir string
	gitDir  string
	log     *zap.Logger
}

// NewGitRepository opens the repository containing workDir.
func NewGitRepository(workDir string, runner Runner, log *zap.Logger) (GitRepository, error) {
	repo, err := git.PlainOpenWithOptions(workDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, apperrors.NewConfigError("", fmt.Sprintf("%s is not a git repository: %v", workDir, err))
	}
	gitDir, err := runner.Run(context.Background(), "rev-parse", "--absolute-git-dir")
	if err != nil {
		return nil, err
	}
	return &gitRepository{
		runner:  runner,
		repo:    repo,
		workDir: workDir,
		gitDir:  gitDir,
		log:     log,
	}, nil
}

func (r *gitRepository) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", apperrors.NewPreconditionError(apperrors.ErrPrecondition,
			fmt.Sprintf("cannot resolve HEAD: %v", err))
	}
	if !head.Name().IsBranch() {
		return "", apperrors.NewPreconditionError(apperrors.ErrPrecondition,
			"not on a branch (detached HEAD)")
	}
	return head.Name().Short(), nil
}

func (r *gitRepository) IsDirty(ctx context.Context) (bool, error) {
	out, err := r.runner.Run(ctx, "status", "--porcelain", "--untracked-files=no", "--ignore-submodules")
	if err != nil {
		return false, err
	}
	return out != "", nil
}

func (r *gitRepository) StashPush(ctx context.Context, message string) error {
	_, err := r.runner.Run(ctx, "stash", "push", "-m", message)
	return err
}

func (r *gitRepository) StashPop(ctx context.Context) error {
	_, err := r.runner.Run(ctx, "stash", "pop")
	return err
}

func (r *gitRepository) Checkout(ctx context.Context, branch string) error {
	r.log.Info("checking out branch", zap.String("branch", branch))
	_, err := r.runner.Run(ctx, "checkout", branch)
	return err
}

func (r *gitRepository) CreateBranch(ctx context.Context, name, startPoint string, track bool) error {
	r.log.Info("creating branch", zap.String("branch", name), zap.String("start", startPoint))
	args := []string{"checkout", "-b", name}
	if track {
		args = append(args, "--track")
	} else {
		args = append(args, "--no-track")
	}
	args = append(args, startPoint)
	_, err := r.runner.Run(ctx, args...)
	return err
}

func (r *gitRepository) BranchExists(name string) (bool, error) {
	_, err := r.repo.Reference(plumbing.NewBranchReferenceName(name), true)
	if err == plumbing.ErrReferenceNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up branch %s: %w", name, err)
	}
	return true, nil
}

func (r *gitRepository) DeleteBranch(ctx context.Context, name string, force bool) error {
	r.log.Info("deleting branch", zap.String("branch", name), zap.Bool("force", force))
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := r.runner.Run(ctx, "branch", flag, name)
	return err
}

func (r *gitRepository) DeleteRemoteBranch(ctx context.Context, remote, name string) error {
	r.log.Info("deleting remote branch", zap.String("remote", remote), zap.String("branch", name))
	_, err := r.runner.Run(ctx, "push", remote, "--delete", name)
	return err
}

func (r *gitRepository) PullRebase(ctx context.Context, remote, branch string) error {
	r.log.Info("pulling with rebase", zap.String("remote", remote), zap.String("branch", branch))
	_, err := r.runner.Run(ctx, "pull", "--rebase", remote, branch)
	return err
}

func (r *gitRepository) Rebase(ctx context.Context, onto string) error {
	r.log.Info("rebasing onto", zap.String("onto", onto))
	_, err := r.runner.Run(ctx, "rebase", onto)
	return err
}

// RebaseInProgress checks for the rebase-merge and rebase-apply directories,
// which is more reliable than REBASE_HEAD because that ref can persist after
// a finished rebase.
func (r *gitRepository) RebaseInProgress() bool {
	if _, err := os.Stat(filepath.Join(r.gitDir, "rebase-merge")); err == nil {
		return true
	}
	if _, err := os.Stat(filepath.Join(r.gitDir, "rebase-apply")); err == nil {
		return true
	}
	return false
}

func (r *gitRepository) Merge(ctx context.Context, branch string, ffOnly bool) error {
	strategy := "--no-ff"
	if ffOnly {
		strategy = "--ff-only"
	}
	r.log.Info("merging branch", zap.String("branch", branch), zap.String("strategy", strategy))
	_, err := r.runner.Run(ctx, "merge", strategy, branch)
	return err
}

func (r *gitRepository) MergeInProgress() bool {
	_, err := os.Stat(filepath.Join(r.gitDir, "MERGE_HEAD"))
	return err == nil
}

func (r *gitRepository) Fetch(ctx context.Context, remote, refspec string) error {
	r.log.Info("fetching", zap.String("remote", remote), zap.String("refspec", refspec))
	args := []string{"fetch", remote}
	if refspec != "" {
		args = append(args, refspec)
	}
	_, err := r.runner.Run(ctx, args...)
	return err
}

func (r *gitRepository) Push(ctx context.Context, remote, ref string) error {
	r.log.Info("pushing", zap.String("remote", remote), zap.String("ref", ref))
	_, err := r.runner.Run(ctx, "push", remote, ref)
	return err
}

func (r *gitRepository) PushUpstream(ctx context.Context, remote, branch string) error {
	r.log.Info("pushing with upstream", zap.String("remote", remote), zap.String("branch", branch))
	_, err := r.runner.Run(ctx, "push", "--set-upstream", remote, branch)
	return err
}

func (r *gitRepository) PushForce(ctx context.Context, remote, ref string) error {
	r.log.Info("force pushing", zap.String("remote", remote), zap.String("ref", ref))
	_, err := r.runner.Run(ctx, "push", "--force", remote, ref)
	return err
}

func (r *gitRepository) PushTags(ctx context.Context, remote string) error {
	r.log.Info("pushing tags", zap.String("remote", remote))
	_, err := r.runner.Run(ctx, "push", remote, "--tags")
	return err
}

func (r *gitRepository) AheadCount(ctx context.Context, base, head string) (int, error) {
	out, err := r.runner.Run(ctx, "rev-list", "--count", base+".."+head)
	if err != nil {
		return 0, err
	}
	count, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("unexpected rev-list output %q: %w", out, err)
	}
	return count, nil
}

func (r *gitRepository) Diff(ctx context.Context, a, b string) (string, error) {
	return r.runner.Run(ctx, "diff", a, b)
}

func (r *gitRepository) HasUnmergedPaths(ctx context.Context) (bool, error) {
	out, err := r.runner.Run(ctx, "ls-files", "--unmerged")
	if err != nil {
		return false, err
	}
	return out != "", nil
}

func (r *gitRepository) RevParse(ctx context.Context, ref string) (string, error) {
	return r.runner.Run(ctx, "rev-parse", "--verify", ref+"^{commit}")
}

func (r *gitRepository) Tags(ctx context.Context) ([]string, error) {
	out, err := r.runner.Run(ctx, "tag", "--list")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

func (r *gitRepository) CreateTag(ctx context.Context, name, ref, message string, edit bool) error {
	r.log.Info("creating tag", zap.String("tag", name), zap.String("ref", ref))
	if edit {
		return r.runner.RunInteractive("tag", "-a", name, ref, "--edit", "-m", message)
	}
	_, err := r.runner.Run(ctx, "tag", "-a", name, ref, "-m", message)
	return err
}

func (r *gitRepository) CommitsBetween(ctx context.Context, from, to string) ([]domain.Commit, error) {
	rng := to
	if from != "" {
		rng = from + ".." + to
	}
	out, err := r.runner.Run(ctx, "log", "--format=%h%x09%s", rng)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	var commits []domain.Commit
	for _, line := range strings.Split(out, "\n") {
		hash, subject, _ := strings.Cut(line, "\t")
		commits = append(commits, domain.Commit{Hash: hash, Subject: subject})
	}
	return commits, nil
}

func (r *gitRepository) MessageBodies(ctx context.Context, revRange string) (string, error) {
	return r.runner.Run(ctx, "log", "--reverse", "--format=%B", revRange)
}

func (r *gitRepository) ResetSoft(ctx context.Context, ref string) error {
	r.log.Info("soft resetting", zap.String("ref", ref))
	_, err := r.runner.Run(ctx, "reset", "--soft", ref)
	return err
}

func (r *gitRepository) Amend(ctx context.Context, message string) error {
	_, err := r.runner.Run(ctx, "commit", "--amend", "-m", message)
	return err
}

func (r *gitRepository) AmendInteractive() error {
	return r.runner.RunInteractive("commit", "--amend")
}

func (r *gitRepository) TrackingBranch(branch string) (*domain.TrackingBranch, error) {
	cfg, err := r.repo.Config()
	if err != nil {
		return nil, fmt.Errorf("failed to read repository config: %w", err)
	}
	b, ok := cfg.Branches[branch]
	if !ok || b.Remote == "" || b.Merge == "" {
		return nil, nil
	}
	return &domain.TrackingBranch{Remote: b.Remote, MergeRef: b.Merge.Short()}, nil
}

func (r *gitRepository) RemoteHeads(remote string) ([]string, error) {
	refs, err := r.repo.References()
	if err != nil {
		return nil, fmt.Errorf("failed to read references: %w", err)
	}
	prefix := "refs/remotes/" + remote + "/"
	var heads []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		if !strings.HasPrefix(name, prefix) {
			return nil
		}
		head := strings.TrimPrefix(name, prefix)
		if head == "HEAD" {
			return nil
		}
		heads = append(heads, head)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate references: %w", err)
	}
	return heads, nil
}

func (r *gitRepository) TrackedHeads() ([]string, error) {
	cfg, err := r.repo.Config()
	if err != nil {
		return nil, fmt.Errorf("failed to read repository config: %w", err)
	}
	var heads []string
	for _, b := range cfg.Branches {
		if b.Remote == "" || b.Merge == "" {
			continue
		}
		heads = append(heads, b.Merge.Short())
	}
	return heads, nil
}

func (r *gitRepository) SubmodulePaths(ctx context.Context) ([]string, error) {
	if _, err := os.Stat(filepath.Join(r.workDir, ".gitmodules")); err != nil {
		return nil, nil
	}
	out, err := r.runner.Run(ctx, "config", "--file", ".gitmodules", "--get-regexp", `submodule\..*\.path`)
	if err != nil {
		// get-regexp exits non-zero when nothing matches
		return nil, nil
	}
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		_, path, found := strings.Cut(line, " ")
		if found {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

func (r *gitRepository) SubmoduleDeinit(ctx context.Context, paths []string) error {
	r.log.Info("deinitializing submodules", zap.Strings("paths", paths))
	args := []string{"submodule", "deinit", "-f"}
	if len(paths) == 0 {
		args = append(args, "--all")
	} else {
		args = append(args, "--")
		args = append(args, paths...)
	}
	_, err := r.runner.Run(ctx, args...)
	return err
}

func (r *gitRepository) SubmoduleUpdate(ctx context.Context, paths []string) error {
	r.log.Info("updating submodules", zap.Strings("paths", paths))
	args := []string{"submodule", "update", "--init", "--recursive"}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}
	_, err := r.runner.Run(ctx, args...)
	return err
}
