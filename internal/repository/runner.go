package repository

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/trunkit/trunkit/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands.
const DefaultCommandTimeout = 5 * time.Minute

// Runner executes git commands. Every mutation of the repository goes
// through this single subprocess boundary.
type Runner interface {
	// Run executes git with the given arguments and returns trimmed stdout.
	Run(ctx context.Context, args ...string) (string, error)
	// RunInteractive executes git with stdin/stdout/stderr connected to the
	// terminal, for editor flows.
	RunInteractive(args ...string) error
}

// CommandRunner is the production Runner.
type CommandRunner struct {
	workDir string
	log     *zap.Logger
}

// NewCommandRunner creates a CommandRunner rooted at workDir.
func NewCommandRunner(workDir string, log *zap.Logger) *CommandRunner {
	return &CommandRunner{workDir: workDir, log: log}
}

func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workDir != "" {
		cmd.Dir = r.workDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.log.Debug("running git command", zap.Strings("args", args))
	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = ctx.Err()
		}
		return "", apperrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	out := strings.TrimSpace(stdout.String())
	if out != "" {
		r.log.Debug("git command output", zap.Strings("args", args), zap.String("output", out))
	}
	return out, nil
}

func (r *CommandRunner) RunInteractive(args ...string) error {
	cmd := exec.Command("git", args...)
	if r.workDir != "" {
		cmd.Dir = r.workDir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	r.log.Debug("running interactive git command", zap.Strings("args", args))
	if err := cmd.Run(); err != nil {
		return apperrors.NewGitCommandError("git", args, "", "", err)
	}
	return nil
}
