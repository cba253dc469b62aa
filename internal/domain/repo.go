package domain

// Commit is a single commit as rendered in tag messages.
type Commit struct {
	Hash    string
	Subject string
}

// TrackingBranch describes the upstream of a local branch.
type TrackingBranch struct {
	// Remote is the remote name, e.g. "origin".
	Remote string
	// MergeRef is the short branch name on the remote.
	MergeRef string
}

// RepoContext is the resolved repository state an engine operates on. Branch
// is updated explicitly on every checkout and never re-queried mid-operation.
type RepoContext struct {
	WorkDir string
	Branch  string
	Trunk   string
	// Remote is the resolved tracking remote; empty for remote-less
	// repositories, in which case all remote operations are no-ops.
	Remote string
	// SubmodulePath is the path of the repository relative to its
	// superproject, empty for the main repository.
	SubmodulePath string
}

// HasRemote reports whether remote operations apply to this repository.
func (c *RepoContext) HasRemote() bool {
	return c.Remote != ""
}

// OnTrunk reports whether the current branch is the trunk branch.
func (c *RepoContext) OnTrunk() bool {
	return c.Branch == c.Trunk
}
