package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrIdentityNotFound = errors.New("identity not found")
	ErrUnknownRole      = errors.New("unknown role")
	ErrForbidden        = errors.New("access denied")
)

// StorageError reports a failed persistence write. It is advisory: the
// in-memory state was already updated and remains authoritative for the
// current session, so callers surface it without rolling anything back.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("persist %q: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
