package config

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/trunkit/trunkit/internal/errors"
)

// Source yields raw option values by config key. Implemented by Store;
// tests use a map-backed source.
type Source interface {
	Get(name string) string
}

// Config is the fully resolved workflow configuration.
type Config struct {
	TrunkBranch         string
	FetchBranchPattern  string
	FF                  bool
	RequireSquash       bool
	VersionPrefix       string
	ReleaseBranchPrefix string
	UseSemver           bool
	EditTagMessage      bool
	EditSquashMessage   bool
	ForcePushSquash     bool
	SubmodulePathSpec   string
}

// DefaultConfig returns a Config with the schema defaults.
func DefaultConfig() *Config {
	cfg, _ := Load(emptySource{})
	return cfg
}

type emptySource struct{}

func (emptySource) Get(string) string { return "" }

// Load resolves every schema option against the source, falling back to the
// schema default for unset entries.
func Load(src Source) (*Config, error) {
	cfg := &Config{}
	for _, opt := range Options {
		raw := src.Get(opt.Key)
		if raw == "" {
			raw = opt.Default
		}
		if err := cfg.apply(opt, raw); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (c *Config) apply(opt Option, raw string) error {
	if opt.Kind == KindBool {
		value, err := parseBool(opt, raw)
		if err != nil {
			return err
		}
		switch opt.Name {
		case "ff":
			c.FF = value
		case "require-squash":
			c.RequireSquash = value
		case "use-semver":
			c.UseSemver = value
		case "edit-tag-message":
			c.EditTagMessage = value
		case "edit-squash-message":
			c.EditSquashMessage = value
		case "force-push-squash":
			c.ForcePushSquash = value
		}
		return nil
	}
	switch opt.Name {
	case "trunk-branch":
		c.TrunkBranch = raw
	case "fetch-branch-pattern":
		c.FetchBranchPattern = raw
	case "version-prefix":
		c.VersionPrefix = raw
	case "release-branch-prefix":
		c.ReleaseBranchPrefix = raw
	case "submodule-path-spec":
		c.SubmodulePathSpec = raw
	}
	return nil
}

func parseBool(opt Option, raw string) (bool, error) {
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, apperrors.NewConfigError(
			fmt.Sprintf("%s.%s", section, opt.Key),
			fmt.Sprintf("expected a boolean, got %q", raw),
		)
	}
	return value, nil
}

// Normalize validates a raw value against the option type and returns the
// canonical form written to the store.
func Normalize(opt Option, raw string) (string, error) {
	if opt.Kind == KindBool {
		value, err := parseBool(opt, raw)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(value), nil
	}
	return strings.TrimSpace(raw), nil
}

// SubmodulePaths splits the configured path spec into individual paths.
func (c *Config) SubmodulePaths() []string {
	fields := strings.Fields(c.SubmodulePathSpec)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
