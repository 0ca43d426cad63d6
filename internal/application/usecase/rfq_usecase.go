package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eurocore-global/supplyhub-api/internal/application/dto"
	"github.com/eurocore-global/supplyhub-api/internal/domain"
	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
	"github.com/eurocore-global/supplyhub-api/internal/domain/repository"
)

// RFQUseCase handles quote requests. Customers file them, admins see all of
// them.
type RFQUseCase struct {
	rfqs      repository.RFQRepository
	customers repository.CustomerRepository
}

// NewRFQUseCase wires the persistence ports. The customer port backs the
// referential check on submission.
func NewRFQUseCase(rfqs repository.RFQRepository, customers repository.CustomerRepository) *RFQUseCase {
	return &RFQUseCase{rfqs: rfqs, customers: customers}
}

// Create files a new request at the head of the collection. Whatever the
// payload claims, the request starts at "New" with no quotes. The customer
// must exist; the reference is lookup-only afterwards.
func (uc *RFQUseCase) Create(in dto.CreateRFQRequest) (*entity.RFQ, error) {
	if in.Part == "" || in.CustomerID == "" {
		return nil, fmt.Errorf("part and customerId are required: %w", domain.ErrInvalidInput)
	}
	qty, err := parseCount("qty", in.Qty)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %q: %w", in.CustomerID, domain.ErrNotFound)
	}
	r := &entity.RFQ{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Part:       in.Part,
		Qty:        qty,
		Delivery:   in.Delivery,
		Notes:      in.Notes,
		Status:     entity.RFQStatusNew,
		Quotes:     []entity.Quote{},
		CreatedAt:  time.Now(),
	}
	return r, uc.rfqs.Create(r)
}

// GetByID returns the request or domain.ErrNotFound.
func (uc *RFQUseCase) GetByID(id string) (*entity.RFQ, error) {
	r, err := uc.rfqs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// List returns every request, most recent first.
func (uc *RFQUseCase) List() ([]*entity.RFQ, error) {
	return uc.rfqs.List()
}

// ListByCustomer returns the customer's requests, most recent first.
func (uc *RFQUseCase) ListByCustomer(customerID string) ([]*entity.RFQ, error) {
	return uc.rfqs.ListByCustomer(customerID)
}
