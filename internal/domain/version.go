package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/maruel/natural"

	apperrors "github.com/trunkit/trunkit/internal/errors"
)

// Part identifies the semver component bumped by a release.
type Part string

const (
	PartMajor Part = "major"
	PartMinor Part = "minor"
	PartPatch Part = "patch"
)

// ParsePart validates a part flag value.
func ParsePart(s string) (Part, error) {
	switch Part(s) {
	case PartMajor, PartMinor, PartPatch:
		return Part(s), nil
	default:
		return "", apperrors.NewPreconditionError(apperrors.ErrPrecondition,
			fmt.Sprintf("unknown version part %q, expected major, minor or patch", s))
	}
}

// VersionScheme orders and derives version strings. Versions are handled
// without the configured prefix; prefix handling is AttachPrefix/StripPrefix.
type VersionScheme interface {
	// Latest returns the highest version of the given set, "" when empty.
	Latest(versions []string) string
	// Next derives a new version from the latest one. latest may be "".
	Next(latest string, part Part) (string, error)
	// Validate checks that v is a well-formed version for this scheme.
	Validate(v string) error
	// Compare returns a negative, zero or positive value as a orders
	// before, equal to or after b.
	Compare(a, b string) int
}

// SchemeFor selects the version scheme for the use-semver setting.
func SchemeFor(useSemver bool) VersionScheme {
	if useSemver {
		return SemverScheme{}
	}
	return GenericScheme{}
}

// SemverScheme orders versions by semantic versioning rules and supports
// deriving the next version by bumping a component.
type SemverScheme struct{}

func (SemverScheme) Latest(versions []string) string {
	var latest *semver.Version
	var raw string
	for _, v := range versions {
		parsed, err := semver.NewVersion(v)
		if err != nil {
			continue
		}
		if latest == nil || parsed.GreaterThan(latest) {
			latest = parsed
			raw = v
		}
	}
	return raw
}

func (SemverScheme) Next(latest string, part Part) (string, error) {
	if latest == "" {
		latest = "0.0.0"
	}
	parsed, err := semver.NewVersion(latest)
	if err != nil {
		return "", apperrors.NewPreconditionError(apperrors.ErrPrecondition,
			fmt.Sprintf("latest version %q is not semantic", latest))
	}
	var next semver.Version
	switch part {
	case PartMajor:
		next = parsed.IncMajor()
	case PartPatch:
		next = parsed.IncPatch()
	default:
		next = parsed.IncMinor()
	}
	return next.String(), nil
}

func (SemverScheme) Validate(v string) error {
	if _, err := semver.NewVersion(v); err != nil {
		return apperrors.NewPreconditionError(apperrors.ErrPrecondition,
			fmt.Sprintf("version %q is not semantic: %v", v, err))
	}
	return nil
}

func (SemverScheme) Compare(a, b string) int {
	av, aerr := semver.NewVersion(a)
	bv, berr := semver.NewVersion(b)
	if aerr != nil || berr != nil {
		return strings.Compare(a, b)
	}
	return av.Compare(bv)
}

// GenericScheme treats versions as opaque strings in natural order. It cannot
// derive a next version, so releases always need an explicit one.
type GenericScheme struct{}

func (GenericScheme) Latest(versions []string) string {
	if len(versions) == 0 {
		return ""
	}
	sorted := make([]string, len(versions))
	copy(sorted, versions)
	sort.Sort(natural.StringSlice(sorted))
	return sorted[len(sorted)-1]
}

func (GenericScheme) Next(_ string, _ Part) (string, error) {
	return "", apperrors.NewPreconditionError(apperrors.ErrVersionRequired,
		"a version is required when semantic versioning is disabled")
}

func (GenericScheme) Validate(v string) error {
	if strings.TrimSpace(v) == "" {
		return apperrors.NewPreconditionError(apperrors.ErrVersionRequired, "version must not be empty")
	}
	return nil
}

func (GenericScheme) Compare(a, b string) int {
	if a == b {
		return 0
	}
	if natural.Less(a, b) {
		return -1
	}
	return 1
}

// AttachPrefix turns a version into its tag name.
func AttachPrefix(prefix, version string) string {
	return prefix + version
}

// StripPrefix extracts the version from a tag name. The second return value
// is false when the tag does not carry the prefix.
func StripPrefix(prefix, tag string) (string, bool) {
	if !strings.HasPrefix(tag, prefix) {
		return "", false
	}
	v := strings.TrimPrefix(tag, prefix)
	if v == "" {
		return "", false
	}
	return v, true
}
