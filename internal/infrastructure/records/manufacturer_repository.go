package records

import (
	"sync"

	"github.com/eurocore-global/supplyhub-api/internal/domain"
	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/localstore"
)

// ManufacturerRepository keeps the manufacturer collection ordered most
// recent first. All accessors hand out copies so callers never alias the
// stored records.
type ManufacturerRepository struct {
	mu    sync.RWMutex
	store localstore.Store
	items []*entity.Manufacturer
}

// NewManufacturerRepository loads the collection from the store; a missing or
// corrupt key starts empty.
func NewManufacturerRepository(store localstore.Store) (*ManufacturerRepository, error) {
	var items []*entity.Manufacturer
	if _, err := store.Load(KeyManufacturers, &items); err != nil {
		return nil, err
	}
	return &ManufacturerRepository{store: store, items: items}, nil
}

func cloneManufacturer(m *entity.Manufacturer) *entity.Manufacturer {
	cp := *m
	cp.Products = append([]entity.Product(nil), m.Products...)
	return &cp
}

// Create prepends the record and mirrors the collection.
func (r *ManufacturerRepository) Create(m *entity.Manufacturer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]*entity.Manufacturer{cloneManufacturer(m)}, r.items...)
	return persist(r.store, KeyManufacturers, r.items)
}

// GetByID returns a copy of the record, or nil when the id is unknown.
func (r *ManufacturerRepository) GetByID(id string) (*entity.Manufacturer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.items {
		if m.ID == id {
			return cloneManufacturer(m), nil
		}
	}
	return nil, nil
}

// GetByEmail returns the most recent record with that email, or nil.
func (r *ManufacturerRepository) GetByEmail(email string) (*entity.Manufacturer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.items {
		if m.Email == email {
			return cloneManufacturer(m), nil
		}
	}
	return nil, nil
}

// List returns copies of the whole collection, most recent first.
func (r *ManufacturerRepository) List() ([]*entity.Manufacturer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Manufacturer, 0, len(r.items))
	for _, m := range r.items {
		out = append(out, cloneManufacturer(m))
	}
	return out, nil
}

// Update replaces the record with the same id and mirrors the collection.
// Returns domain.ErrNotFound when the id is unknown; nothing is written in
// that case.
func (r *ManufacturerRepository) Update(m *entity.Manufacturer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !replaceByID(r.items, m.ID, func(x *entity.Manufacturer) string { return x.ID }, cloneManufacturer(m)) {
		return domain.ErrNotFound
	}
	return persist(r.store, KeyManufacturers, r.items)
}
