package statestore

import "git.home.luguber.info/inful/sansstate/internal/foundation/errors"

var (
	// ErrNotFound indicates no snapshot has the requested ID.
	ErrNotFound = errors.StoreError("snapshot not found").Build()
)

func storeError(err error, op string) error {
	return errors.WrapError(err, errors.CategoryStore, "snapshot store "+op+" failed").
		WithContext("operation", op).
		Build()
}
