// Package errors provides sentinel errors and custom error types for trunkit.
// Use errors.Is() and errors.As() to check for specific error kinds.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for recoverable workflow conditions
var (
	// ErrConfig indicates an invalid or unreadable configuration
	ErrConfig = errors.New("invalid configuration")

	// ErrPrecondition indicates that a workflow precondition was not met
	ErrPrecondition = errors.New("precondition failed")

	// ErrManualIntervention indicates that git left conflicts behind and the
	// user has to resolve them by hand
	ErrManualIntervention = errors.New("manual intervention required")

	// ErrTrunkOperation indicates an operation that is not allowed on the
	// trunk branch itself
	ErrTrunkOperation = errors.New("invalid operation on trunk branch")

	// ErrBranchExists indicates that a branch to be created already exists
	ErrBranchExists = errors.New("branch already exists")

	// ErrNoMatchingBranch indicates that no remote branch matched the filter
	ErrNoMatchingBranch = errors.New("no matching branch")

	// ErrNoChanges indicates that a branch carries no commits beyond trunk
	ErrNoChanges = errors.New("no changes")

	// ErrSquashRequired indicates that a branch must be squashed before finish
	ErrSquashRequired = errors.New("squash required")

	// ErrMergeRejected indicates that the configured merge strategy refused
	// the merge
	ErrMergeRejected = errors.New("merge rejected")

	// ErrOutOfSync indicates that a local branch and its remote copy have
	// diverged
	ErrOutOfSync = errors.New("branch not in sync with remote")

	// ErrNothingToRelease indicates that the release target carries no commits
	// beyond the latest version tag
	ErrNothingToRelease = errors.New("nothing to release")

	// ErrVersionRequired indicates that an explicit version must be given
	ErrVersionRequired = errors.New("version required")

	// ErrVersionExists indicates that the requested version is already tagged
	ErrVersionExists = errors.New("version already exists")

	// ErrMessageRequired indicates that no squash message could be composed
	ErrMessageRequired = errors.New("commit message required")
)

// ConfigError represents an invalid configuration value or an unreadable
// configuration store.
type ConfigError struct {
	Key     string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("configuration %s: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("configuration: %s", e.Message)
}

// Is returns true if the target error is ErrConfig
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewConfigError creates a new ConfigError
func NewConfigError(key, message string) *ConfigError {
	return &ConfigError{Key: key, Message: message}
}

// PreconditionError represents a violated workflow precondition. Reason is
// one of the sentinel errors above so callers can classify with errors.Is.
type PreconditionError struct {
	Reason  error
	Message string
	Err     error
}

func (e *PreconditionError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Reason.Error()
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

// Is returns true if the target error is ErrPrecondition
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

func (e *PreconditionError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Reason, e.Err}
	}
	return []error{e.Reason}
}

// NewPreconditionError creates a new PreconditionError
func NewPreconditionError(reason error, message string) *PreconditionError {
	return &PreconditionError{Reason: reason, Message: message}
}

// WithCause attaches the underlying error that triggered the condition.
func (e *PreconditionError) WithCause(err error) *PreconditionError {
	e.Err = err
	return e
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %s", strings.Join(e.Args, " "))
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// ManualInterventionError represents a conflict that git left in the working
// tree. The repository stays exactly where git stopped; nothing is aborted or
// rolled back on the user's behalf.
type ManualInterventionError struct {
	// Step is the operation that conflicted: "rebase", "merge" or "stash-pop"
	Step         string
	Branch       string
	StashPending bool
	Err          error
}

func (e *ManualInterventionError) Error() string {
	msg := fmt.Sprintf("%s conflict on branch %s, resolve manually", e.Step, e.Branch)
	switch e.Step {
	case "rebase":
		msg += " (git rebase --continue or git rebase --abort)"
	case "merge":
		msg += " (resolve and commit, or git merge --abort)"
	case "stash-pop":
		msg += " (resolve conflicts, the stash entry was kept)"
	}
	if e.StashPending && e.Step != "stash-pop" {
		msg += "; local changes remain stashed, run git stash pop afterwards"
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

// Is returns true if the target error is ErrManualIntervention
func (e *ManualInterventionError) Is(target error) bool {
	return target == ErrManualIntervention
}

func (e *ManualInterventionError) Unwrap() error {
	return e.Err
}

// NewManualInterventionError creates a new ManualInterventionError
func NewManualInterventionError(step, branch string, stashPending bool, err error) *ManualInterventionError {
	return &ManualInterventionError{
		Step:         step,
		Branch:       branch,
		StashPending: stashPending,
		Err:          err,
	}
}

// Recoverable reports whether the error is an expected workflow condition
// that should be reported as a plain message rather than a failure.
func Recoverable(err error) bool {
	return errors.Is(err, ErrConfig) || errors.Is(err, ErrPrecondition)
}
