package commands

import (
	"errors"

	"procurement/internal/pkg/errs"
)

// maxNumberingAttempts bounds how often a create is replayed after losing a race
// for the next document number.
const maxNumberingAttempts = 3

// retryOnDuplicateNumber runs attempt, each time in a fresh unit of work, until it
// no longer fails with errs.ErrObjectAlreadyExists or the attempts are used up.
func retryOnDuplicateNumber[T any](attempt func() (T, error)) (T, error) {
	var (
		result T
		err    error
	)
	for range maxNumberingAttempts {
		result, err = attempt()
		if !errors.Is(err, errs.ErrObjectAlreadyExists) {
			return result, err
		}
	}
	return result, err
}
