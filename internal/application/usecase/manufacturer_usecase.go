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

// ManufacturerUseCase applies the manufacturer lifecycle: application,
// approval, profile edits and product uploads.
//
// Mutations may return a *domain.StorageError together with a non-nil record:
// the record is live in memory and the persistence failure is advisory.
type ManufacturerUseCase struct {
	repo repository.ManufacturerRepository
}

// NewManufacturerUseCase wires the persistence port.
func NewManufacturerUseCase(repo repository.ManufacturerRepository) *ManufacturerUseCase {
	return &ManufacturerUseCase{repo: repo}
}

// Register files a new application. The record gets a fresh id, lands at the
// head of the collection and starts at "Application Submitted". Duplicate
// registrations for the same email are accepted silently.
func (uc *ManufacturerUseCase) Register(in dto.RegisterManufacturerRequest) (*entity.Manufacturer, error) {
	if in.Company == "" || in.Country == "" || in.Email == "" {
		return nil, fmt.Errorf("company, country and email are required: %w", domain.ErrInvalidInput)
	}
	membership := in.Membership
	if membership == "" {
		membership = entity.MembershipBasic
	}
	if !validMembership(membership) {
		return nil, fmt.Errorf("membership %q: %w", in.Membership, domain.ErrInvalidInput)
	}
	now := time.Now()
	m := &entity.Manufacturer{
		ID:                 uuid.New().String(),
		Company:            in.Company,
		Country:            in.Country,
		RegistrationNumber: in.RegistrationNumber,
		Contact:            in.Contact,
		Email:              in.Email,
		Phone:              in.Phone,
		NCAGE:              in.NCAGE,
		Membership:         membership,
		Profile:            in.Profile,
		Products:           []entity.Product{},
		Status:             entity.StatusSubmitted,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return m, uc.repo.Create(m)
}

// Approve moves the record to "Approved". The transition is one-way and
// idempotent: an already-approved record is returned untouched.
func (uc *ManufacturerUseCase) Approve(id string) (*entity.Manufacturer, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if m.Status == entity.StatusApproved {
		return m, nil
	}
	m.Status = entity.StatusApproved
	m.UpdatedAt = time.Now()
	return m, uc.repo.Update(m)
}

// UpdateProfile shallow-merges the set fields into the record. ID and status
// never change here.
func (uc *ManufacturerUseCase) UpdateProfile(id string, in dto.UpdateManufacturerProfileRequest) (*entity.Manufacturer, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.Membership != nil && !validMembership(*in.Membership) {
		return nil, fmt.Errorf("membership %q: %w", *in.Membership, domain.ErrInvalidInput)
	}
	applyIfSet(&m.Company, in.Company)
	applyIfSet(&m.Country, in.Country)
	applyIfSet(&m.RegistrationNumber, in.RegistrationNumber)
	applyIfSet(&m.Contact, in.Contact)
	applyIfSet(&m.Email, in.Email)
	applyIfSet(&m.Phone, in.Phone)
	applyIfSet(&m.NCAGE, in.NCAGE)
	applyIfSet(&m.Membership, in.Membership)
	applyIfSet(&m.Profile, in.Profile)
	m.UpdatedAt = time.Now()
	return m, uc.repo.Update(m)
}

// AddProduct validates and coerces the form fields, then appends the product
// to the manufacturer's catalogue with a fresh id.
func (uc *ManufacturerUseCase) AddProduct(manufacturerID string, in dto.AddProductRequest) (*entity.Manufacturer, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("product name is required: %w", domain.ErrInvalidInput)
	}
	qty, err := parseCount("qty", in.Qty)
	if err != nil {
		return nil, err
	}
	lead, err := parseCount("lead", in.Lead)
	if err != nil {
		return nil, err
	}
	price, err := parseAmount("price", in.Price)
	if err != nil {
		return nil, err
	}
	m, err := uc.repo.GetByID(manufacturerID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	m.Products = append(m.Products, entity.Product{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Qty:      qty,
		LeadDays: lead,
		Price:    price,
	})
	m.UpdatedAt = time.Now()
	return m, uc.repo.Update(m)
}

// GetByID returns the record or domain.ErrNotFound.
func (uc *ManufacturerUseCase) GetByID(id string) (*entity.Manufacturer, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

// List returns the whole collection, most recent first.
func (uc *ManufacturerUseCase) List() ([]*entity.Manufacturer, error) {
	return uc.repo.List()
}

func applyIfSet(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
