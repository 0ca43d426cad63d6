package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eurocore-global/supplyhub-api/internal/application/dto"
	"github.com/eurocore-global/supplyhub-api/internal/application/usecase"
	"github.com/eurocore-global/supplyhub-api/internal/domain"
	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/localstore"
	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/records"
)

func newManufacturerUC(t *testing.T) (*usecase.ManufacturerUseCase, *records.ManufacturerRepository) {
	t.Helper()
	repo, err := records.NewManufacturerRepository(localstore.NewMemoryStore())
	require.NoError(t, err)
	return usecase.NewManufacturerUseCase(repo), repo
}

func acmeRequest() dto.RegisterManufacturerRequest {
	return dto.RegisterManufacturerRequest{
		Company: "Acme Co",
		Country: "Finland",
		Email:   "a@acme.test",
	}
}

// Registering puts the record at the head of the collection with a fresh id,
// empty catalogue and the initial status.
func TestManufacturerRegister(t *testing.T) {
	uc, _ := newManufacturerUC(t)

	m, err := uc.Register(acmeRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, entity.StatusSubmitted, m.Status)
	assert.Equal(t, entity.MembershipBasic, m.Membership)
	assert.Equal(t, []entity.Product{}, m.Products)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, m.ID, list[0].ID)

	// A second registration lands at the head with its own id.
	second, err := uc.Register(dto.RegisterManufacturerRequest{Company: "Borealis Arms", Country: "Sweden", Email: "b@borealis.test"})
	require.NoError(t, err)
	assert.NotEqual(t, m.ID, second.ID)
	list, err = uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
}

func TestManufacturerRegister_RequiredFields(t *testing.T) {
	uc, _ := newManufacturerUC(t)

	for _, in := range []dto.RegisterManufacturerRequest{
		{Country: "Finland", Email: "a@acme.test"},
		{Company: "Acme Co", Email: "a@acme.test"},
		{Company: "Acme Co", Country: "Finland"},
	} {
		_, err := uc.Register(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestManufacturerRegister_UnknownMembership(t *testing.T) {
	uc, _ := newManufacturerUC(t)

	in := acmeRequest()
	in.Membership = "Platinum"
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Duplicate emails are accepted silently; both records exist.
func TestManufacturerRegister_DuplicateEmailAllowed(t *testing.T) {
	uc, _ := newManufacturerUC(t)

	_, err := uc.Register(acmeRequest())
	require.NoError(t, err)
	_, err = uc.Register(acmeRequest())
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

// The full application scenario: register, then approve. Approval flips only
// the status and is idempotent.
func TestManufacturerApprove(t *testing.T) {
	uc, _ := newManufacturerUC(t)

	m, err := uc.Register(acmeRequest())
	require.NoError(t, err)

	approved, err := uc.Approve(m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, approved.Status)
	assert.Equal(t, m.ID, approved.ID)
	assert.Equal(t, m.Company, approved.Company)
	assert.Equal(t, m.Email, approved.Email)

	// Second approval changes nothing at all.
	again, err := uc.Approve(m.ID)
	require.NoError(t, err)
	assert.Equal(t, approved, again)
}

func TestManufacturerApprove_UnknownID(t *testing.T) {
	uc, _ := newManufacturerUC(t)
	before, err := uc.List()
	require.NoError(t, err)

	_, err = uc.Approve("ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	after, err := uc.List()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

// Profile edits shallow-merge the set fields; unset fields and the status
// stay as they were.
func TestManufacturerUpdateProfile(t *testing.T) {
	uc, _ := newManufacturerUC(t)
	m, err := uc.Register(acmeRequest())
	require.NoError(t, err)

	profile := "Precision machining since 1987."
	membership := entity.MembershipModerate
	updated, err := uc.UpdateProfile(m.ID, dto.UpdateManufacturerProfileRequest{
		Profile:    &profile,
		Membership: &membership,
	})
	require.NoError(t, err)
	assert.Equal(t, profile, updated.Profile)
	assert.Equal(t, membership, updated.Membership)
	assert.Equal(t, m.Company, updated.Company)
	assert.Equal(t, entity.StatusSubmitted, updated.Status)
}

func TestManufacturerUpdateProfile_UnknownID(t *testing.T) {
	uc, _ := newManufacturerUC(t)
	profile := "whatever"
	_, err := uc.UpdateProfile("ghost", dto.UpdateManufacturerProfileRequest{Profile: &profile})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Product form text is coerced into numeric fields; the product gets its own
// fresh id and appends to the catalogue.
func TestManufacturerAddProduct(t *testing.T) {
	uc, _ := newManufacturerUC(t)
	m, err := uc.Register(acmeRequest())
	require.NoError(t, err)

	updated, err := uc.AddProduct(m.ID, dto.AddProductRequest{
		Name: "Drone Motor", Qty: "50", Lead: "21", Price: "240.50",
	})
	require.NoError(t, err)
	require.Len(t, updated.Products, 1)
	p := updated.Products[0]
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Drone Motor", p.Name)
	assert.Equal(t, 50, p.Qty)
	assert.Equal(t, 21, p.LeadDays)
	assert.True(t, decimal.RequireFromString("240.50").Equal(p.Price))

	// Appending keeps earlier products in place.
	updated, err = uc.AddProduct(m.ID, dto.AddProductRequest{Name: "Gimbal Mount", Qty: "10", Lead: "7", Price: "99"})
	require.NoError(t, err)
	require.Len(t, updated.Products, 2)
	assert.Equal(t, "Drone Motor", updated.Products[0].Name)
	assert.Equal(t, "Gimbal Mount", updated.Products[1].Name)
}

func TestManufacturerAddProduct_Validation(t *testing.T) {
	uc, _ := newManufacturerUC(t)
	m, err := uc.Register(acmeRequest())
	require.NoError(t, err)

	cases := []dto.AddProductRequest{
		{Qty: "50", Lead: "21", Price: "240"},                          // missing name
		{Name: "Drone Motor", Qty: "fifty", Lead: "21", Price: "240"},  // non-numeric qty
		{Name: "Drone Motor", Qty: "-1", Lead: "21", Price: "240"},     // negative qty
		{Name: "Drone Motor", Qty: "50", Lead: "21", Price: "cheap"},   // non-numeric price
		{Name: "Drone Motor", Qty: "50", Lead: "21", Price: "-240.50"}, // negative price
		{Name: "Drone Motor", Qty: "50", Lead: "-3", Price: "240"},     // negative lead
	}
	for _, in := range cases {
		_, err := uc.AddProduct(m.ID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "payload %+v", in)
	}

	got, err := uc.GetByID(m.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Products)
}
