package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both a row that does not exist and a row owned by
	// another user. Callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks input that fails field constraints.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateEmail marks a registration against an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrUnavailable marks a store that is unreachable or timed out.
	ErrUnavailable = errors.New("store unavailable")

	// ErrConsistency marks a cascade that was only partially applied.
	ErrConsistency = errors.New("consistency violation")
)

// storeError classifies a failed gorm call. Timeouts and cancellations become
// ErrUnavailable; anything else passes through for the handler's generic 500.
func storeError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}

// lookupError resolves a First() error on a single-row lookup.
func lookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return storeError(err)
}
