package service

import (
	"errors"

	appErrors "github.com/aaravmahajanofficial/pos-admin/internal/errors"
	repository "github.com/aaravmahajanofficial/pos-admin/internal/repositories"
)

// repoError translates repository sentinels into client-facing errors.
// entity names the record for not-found messages; action completes "Failed to ...".
func repoError(err error, entity, action string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return appErrors.NotFoundError(entity + " not found").WithError(err)
	case errors.Is(err, repository.ErrDuplicate):
		return appErrors.DuplicateEntryError(entity + " already exists").WithError(err)
	case errors.Is(err, repository.ErrForeignKey):
		return appErrors.BadRequestError("Referenced record does not exist").WithError(err)
	case errors.Is(err, repository.ErrInvalidState):
		return appErrors.ConflictError(entity + " is not in a state that allows this change").WithError(err)
	default:
		return appErrors.DatabaseError("Failed to " + action).WithError(err)
	}
}
