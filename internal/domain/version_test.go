package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/trunkit/trunkit/internal/errors"
)

func TestSemverScheme(t *testing.T) {
	scheme := SemverScheme{}
	t.Run("Should pick the highest semantic version", func(t *testing.T) {
		latest := scheme.Latest([]string{"1.2.3", "1.10.0", "1.9.9", "not-a-version"})
		assert.Equal(t, "1.10.0", latest)
	})
	t.Run("Should return empty for no versions", func(t *testing.T) {
		assert.Equal(t, "", scheme.Latest(nil))
	})
	t.Run("Should bump the minor part by default", func(t *testing.T) {
		next, err := scheme.Next("1.2.3", PartMinor)
		require.NoError(t, err)
		assert.Equal(t, "1.3.0", next)
	})
	t.Run("Should bump major and patch parts", func(t *testing.T) {
		next, err := scheme.Next("1.2.3", PartMajor)
		require.NoError(t, err)
		assert.Equal(t, "2.0.0", next)
		next, err = scheme.Next("1.2.3", PartPatch)
		require.NoError(t, err)
		assert.Equal(t, "1.2.4", next)
	})
	t.Run("Should start from 0.0.0 when no version exists", func(t *testing.T) {
		next, err := scheme.Next("", PartMinor)
		require.NoError(t, err)
		assert.Equal(t, "0.1.0", next)
	})
	t.Run("Should reject malformed versions", func(t *testing.T) {
		err := scheme.Validate("1.2.3.4.5")
		assert.True(t, errors.Is(err, apperrors.ErrPrecondition))
	})
	t.Run("Should compare by semver rules", func(t *testing.T) {
		assert.Negative(t, scheme.Compare("1.9.0", "1.10.0"))
		assert.Zero(t, scheme.Compare("1.2.3", "1.2.3"))
	})
}

func TestGenericScheme(t *testing.T) {
	scheme := GenericScheme{}
	t.Run("Should pick the naturally largest version", func(t *testing.T) {
		latest := scheme.Latest([]string{"build-9", "build-10", "build-2"})
		assert.Equal(t, "build-10", latest)
	})
	t.Run("Should refuse to derive a next version", func(t *testing.T) {
		_, err := scheme.Next("build-10", PartMinor)
		assert.True(t, errors.Is(err, apperrors.ErrVersionRequired))
	})
	t.Run("Should reject empty versions", func(t *testing.T) {
		err := scheme.Validate("  ")
		assert.True(t, errors.Is(err, apperrors.ErrVersionRequired))
	})
}

func TestParsePart(t *testing.T) {
	t.Run("Should accept the three semver parts", func(t *testing.T) {
		for _, s := range []string{"major", "minor", "patch"} {
			part, err := ParsePart(s)
			require.NoError(t, err)
			assert.Equal(t, Part(s), part)
		}
	})
	t.Run("Should reject anything else", func(t *testing.T) {
		_, err := ParsePart("huge")
		assert.True(t, errors.Is(err, apperrors.ErrPrecondition))
	})
}

func TestPrefix(t *testing.T) {
	t.Run("Should round-trip through tag names", func(t *testing.T) {
		tag := AttachPrefix("v", "1.2.3")
		assert.Equal(t, "v1.2.3", tag)
		version, ok := StripPrefix("v", tag)
		require.True(t, ok)
		assert.Equal(t, "1.2.3", version)
	})
	t.Run("Should reject foreign tags", func(t *testing.T) {
		_, ok := StripPrefix("v", "release-1.0")
		assert.False(t, ok)
	})
	t.Run("Should reject the bare prefix", func(t *testing.T) {
		_, ok := StripPrefix("v", "v")
		assert.False(t, ok)
	})
}
