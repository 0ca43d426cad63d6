package repository

import "github.com/eurocore-global/supplyhub-api/internal/domain/entity"

// ManufacturerRepository defines the persistence port for Manufacturer.
// Create prepends (most recent first); Update replaces the whole record by id
// and returns domain.ErrNotFound when the id is unknown.
type ManufacturerRepository interface {
	Create(m *entity.Manufacturer) error
	GetByID(id string) (*entity.Manufacturer, error)
	GetByEmail(email string) (*entity.Manufacturer, error)
	List() ([]*entity.Manufacturer, error)
	Update(m *entity.Manufacturer) error
}
