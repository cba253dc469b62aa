package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trunkit/trunkit/internal/domain"
	apperrors "github.com/trunkit/trunkit/internal/errors"
)

func TestNextVersionUseCase(t *testing.T) {
	semver := &NextVersionUseCase{Scheme: domain.SemverScheme{}}
	generic := &NextVersionUseCase{Scheme: domain.GenericScheme{}}

	t.Run("Should bump the minor part of the latest version", func(t *testing.T) {
		next, err := semver.Execute([]string{"1.0.0", "1.2.3"}, "", domain.PartMinor, false)
		require.NoError(t, err)
		assert.Equal(t, "1.3.0", next)
	})
	t.Run("Should start at 0.1.0 for a repository without versions", func(t *testing.T) {
		next, err := semver.Execute(nil, "", domain.PartMinor, false)
		require.NoError(t, err)
		assert.Equal(t, "0.1.0", next)
	})
	t.Run("Should accept a valid explicit version", func(t *testing.T) {
		next, err := semver.Execute([]string{"1.2.3"}, "2.0.0", domain.PartMinor, false)
		require.NoError(t, err)
		assert.Equal(t, "2.0.0", next)
	})
	t.Run("Should reject an explicit version below the latest", func(t *testing.T) {
		_, err := semver.Execute([]string{"1.2.3"}, "1.0.1", domain.PartMinor, false)
		assert.True(t, errors.Is(err, apperrors.ErrPrecondition))
	})
	t.Run("Should allow going backwards with force", func(t *testing.T) {
		next, err := semver.Execute([]string{"1.2.3"}, "1.0.1", domain.PartMinor, true)
		require.NoError(t, err)
		assert.Equal(t, "1.0.1", next)
	})
	t.Run("Should always reject an already released version", func(t *testing.T) {
		_, err := semver.Execute([]string{"1.2.3"}, "1.2.3", domain.PartMinor, true)
		assert.True(t, errors.Is(err, apperrors.ErrVersionExists))
	})
	t.Run("Should require an explicit version for the generic scheme", func(t *testing.T) {
		_, err := generic.Execute([]string{"build-1"}, "", domain.PartMinor, false)
		assert.True(t, errors.Is(err, apperrors.ErrVersionRequired))
	})
	t.Run("Should order generic versions naturally", func(t *testing.T) {
		_, err := generic.Execute([]string{"build-10"}, "build-9", "", false)
		assert.True(t, errors.Is(err, apperrors.ErrPrecondition))
		next, err := generic.Execute([]string{"build-10"}, "build-11", "", false)
		require.NoError(t, err)
		assert.Equal(t, "build-11", next)
	})
}
