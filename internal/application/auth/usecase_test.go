package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eurocore-global/supplyhub-api/internal/application/auth"
	"github.com/eurocore-global/supplyhub-api/internal/application/dto"
	"github.com/eurocore-global/supplyhub-api/internal/domain"
	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/localstore"
	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/records"
)

type fixtures struct {
	uc       *auth.SessionUseCase
	sessions *records.SessionRepository
}

func newFixtures(t *testing.T) fixtures {
	t.Helper()
	store := localstore.NewMemoryStore()
	sessions, err := records.NewSessionRepository(store)
	require.NoError(t, err)
	manufacturers, err := records.NewManufacturerRepository(store)
	require.NoError(t, err)
	customers, err := records.NewCustomerRepository(store)
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, manufacturers.Create(&entity.Manufacturer{
		ID: "m1", Company: "Nordic Defence Components", Country: "Finland",
		Email: "contact@nordicdefence.test", Products: []entity.Product{},
		Status: entity.StatusApproved, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, customers.Create(&entity.Customer{
		ID: "c1", Company: "ArmaTech", Country: "Ukraine",
		Email: "procurement@armatech.test",
		Status: entity.StatusApproved, CreatedAt: now, UpdatedAt: now,
	}))

	return fixtures{
		uc:       auth.NewSessionUseCase(sessions, manufacturers, customers),
		sessions: sessions,
	}
}

// Admin needs no backing record; the session carries the fixed display name.
func TestLogin_Admin(t *testing.T) {
	f := newFixtures(t)

	sess, err := f.uc.Login(dto.LoginRequest{Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, sess.Role)
	assert.Empty(t, sess.ID)
	assert.Equal(t, auth.AdminDisplayName, sess.Name)
}

// A manufacturer login resolves by email and denormalises the company name
// into the session.
func TestLogin_Manufacturer(t *testing.T) {
	f := newFixtures(t)

	sess, err := f.uc.Login(dto.LoginRequest{Role: entity.RoleManufacturer, Email: "contact@nordicdefence.test"})
	require.NoError(t, err)
	assert.Equal(t, "m1", sess.ID)
	assert.Equal(t, "Nordic Defence Components", sess.Name)

	current, err := f.uc.Current()
	require.NoError(t, err)
	assert.Equal(t, sess, current)
}

func TestLogin_Customer(t *testing.T) {
	f := newFixtures(t)

	sess, err := f.uc.Login(dto.LoginRequest{Role: entity.RoleCustomer, Email: "procurement@armatech.test"})
	require.NoError(t, err)
	assert.Equal(t, "c1", sess.ID)
	assert.Equal(t, "ArmaTech", sess.Name)
}

// An unknown email aborts the login and leaves any existing session in place.
func TestLogin_UnknownEmail(t *testing.T) {
	f := newFixtures(t)

	_, err := f.uc.Login(dto.LoginRequest{Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = f.uc.Login(dto.LoginRequest{Role: entity.RoleCustomer, Email: "nobody@example.test"})
	assert.ErrorIs(t, err, domain.ErrIdentityNotFound)

	current, err := f.uc.Current()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, entity.RoleAdmin, current.Role)
}

func TestLogin_UnknownRole(t *testing.T) {
	f := newFixtures(t)
	_, err := f.uc.Login(dto.LoginRequest{Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestLogout(t *testing.T) {
	f := newFixtures(t)

	_, err := f.uc.Login(dto.LoginRequest{Role: entity.RoleAdmin})
	require.NoError(t, err)
	require.NoError(t, f.uc.Logout())

	current, err := f.uc.Current()
	require.NoError(t, err)
	assert.Nil(t, current)
}
