package database

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrDuplicate wraps unique_violation (23505).
	ErrDuplicate = errors.New("duplicate key")
	// ErrForeignKey wraps foreign_key_violation (23503).
	ErrForeignKey = errors.New("foreign key violation")
)

// MapError turns postgres constraint violations into sentinel errors.
// Any other error is returned unchanged.
func MapError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case "23505":
		return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Constraint)
	case "23503":
		return fmt.Errorf("%w: %s", ErrForeignKey, pqErr.Constraint)
	default:
		return err
	}
}
