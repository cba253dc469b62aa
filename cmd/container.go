package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trunkit/trunkit/internal/config"
	"github.com/trunkit/trunkit/internal/domain"
	apperrors "github.com/trunkit/trunkit/internal/errors"
	"github.com/trunkit/trunkit/internal/orchestrator"
	"github.com/trunkit/trunkit/internal/repository"
	"github.com/trunkit/trunkit/internal/service"
)

// container holds all the dependencies for the application.

type container struct {
	cfg   *config.Config
	store *config.Store
	rc    *domain.RepoContext

	gitRepo     repository.GitRepository
	fsRepo      repository.FileSystemRepository
	prompter    service.Prompter
	interactive bool
	log         *zap.Logger
}

// newContainer creates a new container with all the dependencies.
func newContainer(ctx context.Context) (*container, error) {
	log, err := newLogger()
	if err != nil {
		return nil, err
	}
	store, topLevel, subPath, err := openStore(ctx, log)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(store)
	if err != nil {
		return nil, err
	}
	runner := repository.NewCommandRunner(topLevel, log)
	gitRepo, err := repository.NewGitRepository(topLevel, runner, log)
	if err != nil {
		return nil, err
	}
	rc, err := repository.ResolveContext(gitRepo, topLevel, cfg.TrunkBranch, subPath)
	if err != nil {
		return nil, err
	}
	return &container{
		cfg:         cfg,
		store:       store,
		rc:          rc,
		gitRepo:     gitRepo,
		fsRepo:      repository.FileSystemRepository(afero.NewOsFs()),
		prompter:    service.NewPrompter(),
		interactive: service.Interactive(),
		log:         log,
	}, nil
}

// openStore locates the repository and opens its configuration store. For a
// submodule the store is rooted at the superproject, keyed by the submodule
// path.
func openStore(ctx context.Context, log *zap.Logger) (*config.Store, string, string, error) {
	runner := repository.NewCommandRunner(viper.GetString("repo-path"), log)
	topLevel, err := repository.TopLevel(ctx, runner)
	if err != nil {
		return nil, "", "", apperrors.NewConfigError("repo-path",
			fmt.Sprintf("%s is not inside a git working tree", viper.GetString("repo-path")))
	}
	super, err := repository.SuperprojectWorkTree(ctx, runner)
	if err != nil {
		return nil, "", "", err
	}
	subPath, err := repository.SubmoduleRelPath(super, topLevel)
	if err != nil {
		return nil, "", "", err
	}
	configRoot := topLevel
	if super != "" {
		configRoot = super
	}
	store, err := config.NewStore(configRoot, subPath)
	if err != nil {
		return nil, "", "", err
	}
	return store, topLevel, subPath, nil
}

func newLogger() (*zap.Logger, error) {
	debug := viper.GetBool("debug")
	zcfg := zap.NewProductionConfig()
	if debug {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return nil, apperrors.NewConfigError("log-level",
			fmt.Sprintf("unknown level %q", viper.GetString("log-level")))
	}
	if debug {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

func (c *container) refreshEngine() *orchestrator.RefreshEngine {
	return orchestrator.NewRefreshEngine(c.gitRepo, c.rc, c.log)
}

func (c *container) finishEngine() *orchestrator.FinishEngine {
	return orchestrator.NewFinishEngine(c.gitRepo, c.cfg, c.rc, c.refreshEngine(), c.log)
}

func (c *container) releaseEngine() *orchestrator.ReleaseEngine {
	return orchestrator.NewReleaseEngine(c.gitRepo, c.cfg, c.rc, c.interactive, c.log)
}

func (c *container) squashEngine() *orchestrator.SquashEngine {
	return orchestrator.NewSquashEngine(c.gitRepo, c.cfg, c.rc, c.refreshEngine(), c.interactive, c.log)
}

func (c *container) startEngine() *orchestrator.StartEngine {
	return orchestrator.NewStartEngine(c.gitRepo, c.cfg, c.rc, c.refreshEngine(), c.log)
}

func (c *container) submoduleUpdateEngine() *orchestrator.SubmoduleUpdateEngine {
	return orchestrator.NewSubmoduleUpdateEngine(c.gitRepo, c.cfg, c.rc, c.fsRepo, c.log)
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	rootCmd.AddCommand(
		newInitCmd(),
		newStartCmd(),
		newFinishCmd(),
		newRefreshCmd(),
		newReleaseCmd(),
		newSquashCmd(),
		newSubmoduleUpdateCmd(),
		newVersionCmd(),
	)
	return nil
}
