package orchestrator

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trunkit/trunkit/internal/config"
)

func TestSubmoduleUpdateEngine(t *testing.T) {
	t.Run("Should update without touching working copies", func(t *testing.T) {
		git := new(mockGitRepository)
		rc := testContext("master")
		git.On("SubmoduleUpdate", mock.Anything, []string(nil)).Return(nil)

		engine := NewSubmoduleUpdateEngine(git, config.DefaultConfig(), rc, afero.NewMemMapFs(), zap.NewNop())
		err := engine.Execute(context.Background(), false)
		require.NoError(t, err)
		git.AssertNotCalled(t, "SubmoduleDeinit", mock.Anything, mock.Anything)
	})
	t.Run("Should narrow the update to the configured paths", func(t *testing.T) {
		git := new(mockGitRepository)
		rc := testContext("master")
		cfg := config.DefaultConfig()
		cfg.SubmodulePathSpec = "libs/core"
		git.On("SubmoduleUpdate", mock.Anything, []string{"libs/core"}).Return(nil)

		engine := NewSubmoduleUpdateEngine(git, cfg, rc, afero.NewMemMapFs(), zap.NewNop())
		require.NoError(t, engine.Execute(context.Background(), false))
		git.AssertExpectations(t)
	})
	t.Run("Should deinit and remove working copies on cleanup", func(t *testing.T) {
		git := new(mockGitRepository)
		rc := testContext("master")
		cfg := config.DefaultConfig()
		cfg.SubmodulePathSpec = "libs/core"
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/repo/libs/core", 0o755))
		git.On("SubmoduleDeinit", mock.Anything, []string{"libs/core"}).Return(nil)
		git.On("SubmoduleUpdate", mock.Anything, []string{"libs/core"}).Return(nil)

		engine := NewSubmoduleUpdateEngine(git, cfg, rc, fs, zap.NewNop())
		require.NoError(t, engine.Execute(context.Background(), true))
		exists, err := afero.DirExists(fs, "/repo/libs/core")
		require.NoError(t, err)
		assert.False(t, exists)
		git.AssertExpectations(t)
	})
	t.Run("Should discover submodule paths when none are configured", func(t *testing.T) {
		git := new(mockGitRepository)
		rc := testContext("master")
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/repo/vendor/tools", 0o755))
		git.On("SubmoduleDeinit", mock.Anything, []string(nil)).Return(nil)
		git.On("SubmodulePaths", mock.Anything).Return([]string{"vendor/tools"}, nil)
		git.On("SubmoduleUpdate", mock.Anything, []string(nil)).Return(nil)

		engine := NewSubmoduleUpdateEngine(git, config.DefaultConfig(), rc, fs, zap.NewNop())
		require.NoError(t, engine.Execute(context.Background(), true))
		exists, err := afero.DirExists(fs, "/repo/vendor/tools")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
