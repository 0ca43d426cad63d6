package repository

import "github.com/eurocore-global/supplyhub-api/internal/domain/entity"

// RFQRepository defines the persistence port for RFQ.
type RFQRepository interface {
	Create(r *entity.RFQ) error
	GetByID(id string) (*entity.RFQ, error)
	List() ([]*entity.RFQ, error)
	ListByCustomer(customerID string) ([]*entity.RFQ, error)
	Update(r *entity.RFQ) error
}
