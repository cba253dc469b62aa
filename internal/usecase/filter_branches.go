package usecase

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/maruel/natural"

	apperrors "github.com/trunkit/trunkit/internal/errors"
)

// FilterBranchesUseCase selects the remote branch a new local branch is
// started from.

type FilterBranchesUseCase struct{}

// Execute returns the first candidate in natural order: remote heads that no
// local branch tracks yet, optionally narrowed by a regular expression.
func (uc *FilterBranchesUseCase) Execute(remoteHeads, trackedHeads []string, pattern string) (string, error) {
	var filter *regexp.Regexp
	if pattern != "" {
		var err error
		filter, err = regexp.Compile(pattern)
		if err != nil {
			return "", apperrors.NewPreconditionError(apperrors.ErrPrecondition,
				fmt.Sprintf("invalid branch pattern %q: %v", pattern, err))
		}
	}
	tracked := make(map[string]struct{}, len(trackedHeads))
	for _, head := range trackedHeads {
		tracked[head] = struct{}{}
	}
	var candidates []string
	for _, head := range remoteHeads {
		if _, ok := tracked[head]; ok {
			continue
		}
		if filter != nil && !filter.MatchString(head) {
			continue
		}
		candidates = append(candidates, head)
	}
	if len(candidates) == 0 {
		return "", apperrors.NewPreconditionError(apperrors.ErrNoMatchingBranch,
			"no remote branch matches that is not already tracked")
	}
	sort.Sort(natural.StringSlice(candidates))
	return candidates[0], nil
}
