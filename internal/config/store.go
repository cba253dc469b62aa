package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopasspw/gitconfig"

	apperrors "github.com/trunkit/trunkit/internal/errors"
)

// section is the git config section all workflow options live in.
const section = "trunk"

// Store persists workflow options in the repository-local git config. It
// never touches the global or system scope. For submodules the store is
// rooted at the superproject and keyed with the submodule path subsection.
type Store struct {
	cfg *gitconfig.Configs
	// subsection is the relative submodule path, empty for the main repo.
	subsection string
}

// NewStore opens the local git config of the repository at repoRoot.
func NewStore(repoRoot, subsection string) (*Store, error) {
	gitDir, err := resolveGitDir(repoRoot)
	if err != nil {
		return nil, err
	}
	cfg := gitconfig.New()
	cfg.SystemConfig = ""
	cfg.GlobalConfig = ""
	cfg.LoadAll(gitDir)
	return &Store{cfg: cfg, subsection: subsection}, nil
}

// resolveGitDir locates the actual git directory for a worktree. A .git file
// (submodule or linked worktree) points at the real directory.
func resolveGitDir(repoRoot string) (string, error) {
	dotGit := filepath.Join(repoRoot, ".git")
	info, err := os.Stat(dotGit)
	if err != nil {
		return "", apperrors.NewConfigError("", fmt.Sprintf("%s is not a git repository", repoRoot))
	}
	if info.IsDir() {
		return dotGit, nil
	}
	data, err := os.ReadFile(dotGit)
	if err != nil {
		return "", apperrors.NewConfigError("", fmt.Sprintf("cannot read %s: %v", dotGit, err))
	}
	target := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(string(data)), "gitdir:"))
	if target == "" {
		return "", apperrors.NewConfigError("", fmt.Sprintf("%s does not name a git directory", dotGit))
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(repoRoot, target)
	}
	return target, nil
}

func (s *Store) key(name string) string {
	if s.subsection != "" {
		return fmt.Sprintf("%s.%s.%s", section, s.subsection, name)
	}
	return fmt.Sprintf("%s.%s", section, name)
}

// Get returns the stored value for a config key, "" when unset. Stored
// booleans are always written as "true"/"false", so the empty string is
// unambiguously "unset".
func (s *Store) Get(name string) string {
	return s.cfg.GetLocal(s.key(name))
}

// Set writes a value to the local git config.
func (s *Store) Set(name, value string) error {
	if err := s.cfg.SetLocal(s.key(name), value); err != nil {
		return apperrors.NewConfigError(s.key(name), fmt.Sprintf("cannot write value: %v", err))
	}
	return nil
}
