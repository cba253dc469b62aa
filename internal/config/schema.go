// Package config holds the workflow option schema and the store persisting
// options in the repository-local git config.
package config

// Kind is the value type of an option.
type Kind int

const (
	KindString Kind = iota
	KindBool
)

// Option describes one workflow setting: its flag name, its key inside the
// trunk config section, its type and its default.
type Option struct {
	Name        string
	Key         string
	Kind        Kind
	Default     string
	Description string
}

// Options is the full schema. The init command derives its flags and the
// confirmation flow from this list; Load resolves each entry against the
// store.
var Options = []Option{
	{
		Name:        "trunk-branch",
		Key:         "trunkbranch",
		Kind:        KindString,
		Default:     "master",
		Description: "Name of the trunk branch all work is forked from and merged back into",
	},
	{
		Name:        "fetch-branch-pattern",
		Key:         "fetchbranchpattern",
		Kind:        KindString,
		Default:     "*",
		Description: "Branch pattern fetched from the remote when starting without a name",
	},
	{
		Name:        "ff",
		Key:         "ff",
		Kind:        KindBool,
		Default:     "true",
		Description: "Merge finished branches fast-forward only instead of with a merge commit",
	},
	{
		Name:        "require-squash",
		Key:         "requiresquash",
		Kind:        KindBool,
		Default:     "false",
		Description: "Refuse to finish branches that carry more than one commit",
	},
	{
		Name:        "version-prefix",
		Key:         "versionprefix",
		Kind:        KindString,
		Default:     "",
		Description: "Prefix attached to version numbers when tagging, e.g. v",
	},
	{
		Name:        "release-branch-prefix",
		Key:         "releasebranchprefix",
		Kind:        KindString,
		Default:     "release/",
		Description: "Branches with this prefix are deleted on finish instead of merged",
	},
	{
		Name:        "use-semver",
		Key:         "usesemver",
		Kind:        KindBool,
		Default:     "true",
		Description: "Order versions by semantic versioning rules and derive bumps automatically",
	},
	{
		Name:        "edit-tag-message",
		Key:         "edittagmessage",
		Kind:        KindBool,
		Default:     "true",
		Description: "Open the editor for the tag message when releasing interactively",
	},
	{
		Name:        "edit-squash-message",
		Key:         "editsquashmessage",
		Kind:        KindBool,
		Default:     "true",
		Description: "Open the editor for the commit message when squashing interactively",
	},
	{
		Name:        "force-push-squash",
		Key:         "forcepushsquash",
		Kind:        KindBool,
		Default:     "true",
		Description: "Force-push the branch after squashing when it has an upstream",
	},
	{
		Name:        "submodule-path-spec",
		Key:         "submodulepathspec",
		Kind:        KindString,
		Default:     "",
		Description: "Space separated submodule paths affected by submodule-update, empty for all",
	},
}

// Lookup returns the option with the given flag name.
func Lookup(name string) (Option, bool) {
	for _, opt := range Options {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}
