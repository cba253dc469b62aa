package usecase

import (
	"fmt"
	"strings"

	"github.com/trunkit/trunkit/internal/domain"
)

// TagMessageUseCase composes the annotated tag message for a release.

type TagMessageUseCase struct{}

// Execute renders the tag name followed by the released commits, newest
// first, one "<hash> <subject>" line each.
func (uc *TagMessageUseCase) Execute(tag string, commits []domain.Commit) string {
	if len(commits) == 0 {
		return tag
	}
	lines := make([]string, 0, len(commits))
	for _, c := range commits {
		lines = append(lines, fmt.Sprintf("%s %s", c.Hash, c.Subject))
	}
	return fmt.Sprintf("%s\n\n%s", tag, strings.Join(lines, "\n"))
}
