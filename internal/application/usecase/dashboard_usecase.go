package usecase

import (
	"github.com/eurocore-global/supplyhub-api/internal/application/dto"
	"github.com/eurocore-global/supplyhub-api/internal/domain"
	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
	"github.com/eurocore-global/supplyhub-api/internal/domain/repository"
)

// DashboardUseCase assembles the role-scoped dashboard: a manufacturer sees
// its own record, a customer its record plus its RFQs, an admin everything.
type DashboardUseCase struct {
	manufacturers repository.ManufacturerRepository
	customers     repository.CustomerRepository
	rfqs          repository.RFQRepository
}

// NewDashboardUseCase wires the persistence ports.
func NewDashboardUseCase(
	manufacturers repository.ManufacturerRepository,
	customers repository.CustomerRepository,
	rfqs repository.RFQRepository,
) *DashboardUseCase {
	return &DashboardUseCase{manufacturers: manufacturers, customers: customers, rfqs: rfqs}
}

// For builds the dashboard for the given session.
func (uc *DashboardUseCase) For(sess *entity.Session) (*dto.DashboardResponse, error) {
	out := &dto.DashboardResponse{Role: sess.Role, Name: sess.Name}
	switch sess.Role {
	case entity.RoleManufacturer:
		m, err := uc.manufacturers.GetByID(sess.ID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrNotFound
		}
		out.Manufacturer = m
	case entity.RoleCustomer:
		c, err := uc.customers.GetByID(sess.ID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, domain.ErrNotFound
		}
		rfqs, err := uc.rfqs.ListByCustomer(sess.ID)
		if err != nil {
			return nil, err
		}
		out.Customer = c
		out.RFQs = rfqs
	case entity.RoleAdmin:
		var err error
		if out.Manufacturers, err = uc.manufacturers.List(); err != nil {
			return nil, err
		}
		if out.Customers, err = uc.customers.List(); err != nil {
			return nil, err
		}
		if out.RFQs, err = uc.rfqs.List(); err != nil {
			return nil, err
		}
	default:
		return nil, domain.ErrUnknownRole
	}
	return out, nil
}
