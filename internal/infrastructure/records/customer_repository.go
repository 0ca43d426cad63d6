package records

import (
	"sync"

	"github.com/eurocore-global/supplyhub-api/internal/domain"
	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/localstore"
)

// CustomerRepository keeps the customer collection ordered most recent first.
type CustomerRepository struct {
	mu    sync.RWMutex
	store localstore.Store
	items []*entity.Customer
}

// NewCustomerRepository loads the collection from the store.
func NewCustomerRepository(store localstore.Store) (*CustomerRepository, error) {
	var items []*entity.Customer
	if _, err := store.Load(KeyCustomers, &items); err != nil {
		return nil, err
	}
	return &CustomerRepository{store: store, items: items}, nil
}

func cloneCustomer(c *entity.Customer) *entity.Customer {
	cp := *c
	return &cp
}

func (r *CustomerRepository) Create(c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]*entity.Customer{cloneCustomer(c)}, r.items...)
	return persist(r.store, KeyCustomers, r.items)
}

func (r *CustomerRepository) GetByID(id string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID == id {
			return cloneCustomer(c), nil
		}
	}
	return nil, nil
}

func (r *CustomerRepository) GetByEmail(email string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.Email == email {
			return cloneCustomer(c), nil
		}
	}
	return nil, nil
}

func (r *CustomerRepository) List() ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Customer, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, cloneCustomer(c))
	}
	return out, nil
}

func (r *CustomerRepository) Update(c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !replaceByID(r.items, c.ID, func(x *entity.Customer) string { return x.ID }, cloneCustomer(c)) {
		return domain.ErrNotFound
	}
	return persist(r.store, KeyCustomers, r.items)
}
