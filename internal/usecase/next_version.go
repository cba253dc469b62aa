package usecase

import (
	"fmt"

	"github.com/trunkit/trunkit/internal/domain"
	apperrors "github.com/trunkit/trunkit/internal/errors"
)

// NextVersionUseCase contains the logic deriving the version for a release.

type NextVersionUseCase struct {
	Scheme domain.VersionScheme
}

// Execute validates an explicit version or derives the next one from the
// latest released version. Unless force is set the result must strictly
// exceed the latest version; an already released version is always rejected.
func (uc *NextVersionUseCase) Execute(versions []string, explicit string, part domain.Part, force bool) (string, error) {
	latest := uc.Scheme.Latest(versions)
	next := explicit
	if next != "" {
		if err := uc.Scheme.Validate(next); err != nil {
			return "", err
		}
	} else {
		var err error
		next, err = uc.Scheme.Next(latest, part)
		if err != nil {
			return "", err
		}
	}
	for _, v := range versions {
		if uc.Scheme.Compare(v, next) == 0 {
			return "", apperrors.NewPreconditionError(apperrors.ErrVersionExists,
				fmt.Sprintf("version %s is already released", next))
		}
	}
	if !force && latest != "" && uc.Scheme.Compare(next, latest) <= 0 {
		return "", apperrors.NewPreconditionError(apperrors.ErrPrecondition,
			fmt.Sprintf("version %s does not exceed the latest version %s", next, latest))
	}
	return next, nil
}
