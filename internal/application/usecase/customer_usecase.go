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

// CustomerUseCase applies the customer lifecycle: application and approval.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase wires the persistence port.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Register files a new application at the head of the collection with status
// "Application Submitted". Duplicate emails are accepted silently.
func (uc *CustomerUseCase) Register(in dto.RegisterCustomerRequest) (*entity.Customer, error) {
	if in.Company == "" || in.Country == "" || in.Email == "" {
		return nil, fmt.Errorf("company, country and email are required: %w", domain.ErrInvalidInput)
	}
	now := time.Now()
	c := &entity.Customer{
		ID:                 uuid.New().String(),
		Company:            in.Company,
		Country:            in.Country,
		RegistrationNumber: in.RegistrationNumber,
		Contact:            in.Contact,
		Email:              in.Email,
		Phone:              in.Phone,
		Status:             entity.StatusSubmitted,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return c, uc.repo.Create(c)
}

// Approve moves the record to "Approved"; one-way and idempotent.
func (uc *CustomerUseCase) Approve(id string) (*entity.Customer, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.Status == entity.StatusApproved {
		return c, nil
	}
	c.Status = entity.StatusApproved
	c.UpdatedAt = time.Now()
	return c, uc.repo.Update(c)
}

// GetByID returns the record or domain.ErrNotFound.
func (uc *CustomerUseCase) GetByID(id string) (*entity.Customer, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// List returns the whole collection, most recent first.
func (uc *CustomerUseCase) List() ([]*entity.Customer, error) {
	return uc.repo.List()
}
