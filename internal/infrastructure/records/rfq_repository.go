package records

import (
	"sync"

	"github.com/eurocore-global/supplyhub-api/internal/domain"
	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/localstore"
)

// RFQRepository keeps the RFQ collection ordered most recent first.
type RFQRepository struct {
	mu    sync.RWMutex
	store localstore.Store
	items []*entity.RFQ
}

// NewRFQRepository loads the collection from the store.
func NewRFQRepository(store localstore.Store) (*RFQRepository, error) {
	var items []*entity.RFQ
	if _, err := store.Load(KeyRFQs, &items); err != nil {
		return nil, err
	}
	return &RFQRepository{store: store, items: items}, nil
}

func cloneRFQ(r *entity.RFQ) *entity.RFQ {
	cp := *r
	cp.Quotes = append([]entity.Quote(nil), r.Quotes...)
	return &cp
}

func (r *RFQRepository) Create(q *entity.RFQ) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]*entity.RFQ{cloneRFQ(q)}, r.items...)
	return persist(r.store, KeyRFQs, r.items)
}

func (r *RFQRepository) GetByID(id string) (*entity.RFQ, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.items {
		if q.ID == id {
			return cloneRFQ(q), nil
		}
	}
	return nil, nil
}

func (r *RFQRepository) List() ([]*entity.RFQ, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.RFQ, 0, len(r.items))
	for _, q := range r.items {
		out = append(out, cloneRFQ(q))
	}
	return out, nil
}

// ListByCustomer returns the customer's RFQs, most recent first.
func (r *RFQRepository) ListByCustomer(customerID string) ([]*entity.RFQ, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*entity.RFQ{}
	for _, q := range r.items {
		if q.CustomerID == customerID {
			out = append(out, cloneRFQ(q))
		}
	}
	return out, nil
}

func (r *RFQRepository) Update(q *entity.RFQ) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !replaceByID(r.items, q.ID, func(x *entity.RFQ) string { return x.ID }, cloneRFQ(q)) {
		return domain.ErrNotFound
	}
	return persist(r.store, KeyRFQs, r.items)
}
