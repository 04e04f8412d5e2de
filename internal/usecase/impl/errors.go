package impl

import (
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
)

// translateRepoError maps repository sentinel errors onto the AppError
// vocabulary understood by the delivery layer. Unknown errors pass through
// untouched so their stack context survives to the error middleware.
func translateRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrBusinessProfileNotFound):
		return domainerrors.ErrBusinessProfileNotFound
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrCategoryNotFound):
		return domainerrors.ErrCategoryNotFound
	case errors.Is(err, repository.ErrAdminLogNotFound):
		return domainerrors.ErrLogNotFound
	case errors.Is(err, repository.ErrDuplicateBusinessOwner):
		return domainerrors.ErrBusinessProfileExists
	case errors.Is(err, repository.ErrDuplicateBusinessSlug):
		return domainerrors.ErrBusinessProfileExists
	default:
		return err
	}
}
