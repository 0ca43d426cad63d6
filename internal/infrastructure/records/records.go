// Package records implements the repository ports on top of a
// localstore.Store. Each repository owns an in-memory collection, loaded once
// at construction and mirrored back to its key after every mutation. The
// in-memory state stays authoritative: a failed mirror is reported as a
// *domain.StorageError without rolling anything back.
package records

import (
	"github.com/eurocore-global/supplyhub-api/internal/domain"
	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/localstore"
)

// Persisted key layout. Absence of a key yields an empty collection
// (nil session for KeySession).
const (
	KeyManufacturers = "manufacturers"
	KeyCustomers     = "customers"
	KeyRFQs          = "rfqs"
	KeySession       = "auth"
)

// replaceByID swaps next into the slot whose id matches, reporting whether a
// match was found. Every update path goes through this so "not found" is an
// explicit outcome, never a silent no-op.
func replaceByID[T any](items []T, id string, idOf func(T) string, next T) bool {
	for i := range items {
		if idOf(items[i]) == id {
			items[i] = next
			return true
		}
	}
	return false
}

func persist(store localstore.Store, key string, value any) error {
	if err := store.Save(key, value); err != nil {
		return &domain.StorageError{Key: key, Err: err}
	}
	return nil
}
