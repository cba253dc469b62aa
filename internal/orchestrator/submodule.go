package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/trunkit/trunkit/internal/config"
	"github.com/trunkit/trunkit/internal/domain"
	"github.com/trunkit/trunkit/internal/repository"
)

// SubmoduleUpdateEngine re-initializes the repository's submodules. A
// configured path spec narrows the affected paths.
type SubmoduleUpdateEngine struct {
	git repository.GitRepository
	cfg *config.Config
	rc  *domain.RepoContext
	fs  repository.FileSystemRepository
	log *zap.Logger
}

// NewSubmoduleUpdateEngine creates a new submodule update engine.
func NewSubmoduleUpdateEngine(
	git repository.GitRepository,
	cfg *config.Config,
	rc *domain.RepoContext,
	fs repository.FileSystemRepository,
	log *zap.Logger,
) *SubmoduleUpdateEngine {
	return &SubmoduleUpdateEngine{git: git, cfg: cfg, rc: rc, fs: fs, log: log}
}

// Execute updates the submodules. With cleanup they are deinitialized first
// and leftover working copies removed, forcing a fresh checkout.
func (e *SubmoduleUpdateEngine) Execute(ctx context.Context, cleanup bool) error {
	paths := e.cfg.SubmodulePaths()
	if cleanup {
		if err := e.git.SubmoduleDeinit(ctx, paths); err != nil {
			return err
		}
		targets := paths
		if len(targets) == 0 {
			var err error
			targets, err = e.git.SubmodulePaths(ctx)
			if err != nil {
				return err
			}
		}
		for _, p := range targets {
			dir := filepath.Join(e.rc.WorkDir, p)
			e.log.Info("removing submodule working copy", zap.String("path", dir))
			if err := e.fs.RemoveAll(dir); err != nil {
				return fmt.Errorf("failed to remove %s: %w", dir, err)
			}
		}
	}
	return e.git.SubmoduleUpdate(ctx, paths)
}
