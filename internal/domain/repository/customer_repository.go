package repository

import "github.com/eurocore-global/supplyhub-api/internal/domain/entity"

// CustomerRepository defines the persistence port for Customer.
type CustomerRepository interface {
	Create(c *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(c *entity.Customer) error
}
