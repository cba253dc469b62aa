package usecase

import (
	"strings"

	apperrors "github.com/trunkit/trunkit/internal/errors"
)

// SquashMessageUseCase composes the commit message for a squashed commit.

type SquashMessageUseCase struct{}

// Execute picks the message: a custom one wins, then the concatenated bodies
// of the squashed commits. Without either the caller must be able to open an
// editor, otherwise there is no message to commit with.
func (uc *SquashMessageUseCase) Execute(customMsg string, includeBodies bool, bodies string, canEdit bool) (string, error) {
	if customMsg != "" {
		return customMsg, nil
	}
	if includeBodies {
		msg := strings.TrimSpace(bodies)
		if msg != "" {
			return msg, nil
		}
	}
	if !canEdit {
		return "", apperrors.NewPreconditionError(apperrors.ErrMessageRequired,
			"no squash message available and interactive editing is disabled")
	}
	return "", nil
}
