package records_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eurocore-global/supplyhub-api/internal/domain"
	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/localstore"
	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/records"
)

// brokenStore fails every write; reads behave like an empty store.
type brokenStore struct{}

func (brokenStore) Load(string, any) (bool, error) { return false, nil }
func (brokenStore) Save(string, any) error         { return errors.New("disk full") }

func manufacturer(id, company string) *entity.Manufacturer {
	now := time.Now()
	return &entity.Manufacturer{
		ID:        id,
		Company:   company,
		Country:   "Finland",
		Email:     company + "@example.test",
		Products:  []entity.Product{},
		Status:    entity.StatusSubmitted,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Create prepends: the collection stays ordered most recent first.
func TestManufacturerRepository_CreatePrepends(t *testing.T) {
	repo, err := records.NewManufacturerRepository(localstore.NewMemoryStore())
	require.NoError(t, err)

	require.NoError(t, repo.Create(manufacturer("m1", "First")))
	require.NoError(t, repo.Create(manufacturer("m2", "Second")))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "m2", list[0].ID)
	assert.Equal(t, "m1", list[1].ID)
}

// Every mutation mirrors the collection: a fresh repository over the same
// store sees the records.
func TestManufacturerRepository_PersistsAcrossReload(t *testing.T) {
	store := localstore.NewMemoryStore()

	repo, err := records.NewManufacturerRepository(store)
	require.NoError(t, err)
	require.NoError(t, repo.Create(manufacturer("m1", "Acme Co")))

	reloaded, err := records.NewManufacturerRepository(store)
	require.NoError(t, err)
	m, err := reloaded.GetByID("m1")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "Acme Co", m.Company)
}

func TestManufacturerRepository_UpdateUnknownID(t *testing.T) {
	repo, err := records.NewManufacturerRepository(localstore.NewMemoryStore())
	require.NoError(t, err)
	require.NoError(t, repo.Create(manufacturer("m1", "Acme Co")))

	err = repo.Update(manufacturer("ghost", "Nobody"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "m1", list[0].ID)
}

func TestManufacturerRepository_GetByEmail(t *testing.T) {
	repo, err := records.NewManufacturerRepository(localstore.NewMemoryStore())
	require.NoError(t, err)
	require.NoError(t, repo.Create(manufacturer("m1", "Acme Co")))

	m, err := repo.GetByEmail("Acme Co@example.test")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "m1", m.ID)

	missing, err := repo.GetByEmail("nobody@example.test")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// Accessors hand out copies: mutating a returned record must not leak into
// the stored one.
func TestManufacturerRepository_ReturnsCopies(t *testing.T) {
	repo, err := records.NewManufacturerRepository(localstore.NewMemoryStore())
	require.NoError(t, err)
	require.NoError(t, repo.Create(manufacturer("m1", "Acme Co")))

	m, err := repo.GetByID("m1")
	require.NoError(t, err)
	m.Company = "Mutated"

	again, err := repo.GetByID("m1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Co", again.Company)
}

// A failed mirror surfaces as *domain.StorageError while the in-memory
// collection keeps the change.
func TestManufacturerRepository_StorageErrorIsAdvisory(t *testing.T) {
	repo, err := records.NewManufacturerRepository(brokenStore{})
	require.NoError(t, err)

	err = repo.Create(manufacturer("m1", "Acme Co"))
	var se *domain.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, records.KeyManufacturers, se.Key)

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "m1", list[0].ID)
}

func TestSessionRepository_SetGetClear(t *testing.T) {
	store := localstore.NewMemoryStore()
	repo, err := records.NewSessionRepository(store)
	require.NoError(t, err)

	sess, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, sess)

	require.NoError(t, repo.Set(&entity.Session{Role: entity.RoleAdmin, Name: "Platform Admin"}))

	// The session survives a reload from the same store.
	reloaded, err := records.NewSessionRepository(store)
	require.NoError(t, err)
	sess, err = reloaded.Get()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, entity.RoleAdmin, sess.Role)

	require.NoError(t, reloaded.Clear())
	sess, err = reloaded.Get()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestRFQRepository_ListByCustomer(t *testing.T) {
	repo, err := records.NewRFQRepository(localstore.NewMemoryStore())
	require.NoError(t, err)

	require.NoError(t, repo.Create(&entity.RFQ{ID: "r1", CustomerID: "c1", Part: "Drone Motor", Status: entity.RFQStatusNew, Quotes: []entity.Quote{}}))
	require.NoError(t, repo.Create(&entity.RFQ{ID: "r2", CustomerID: "c2", Part: "Optical Sensor", Status: entity.RFQStatusNew, Quotes: []entity.Quote{}}))
	require.NoError(t, repo.Create(&entity.RFQ{ID: "r3", CustomerID: "c1", Part: "Gimbal Mount", Status: entity.RFQStatusNew, Quotes: []entity.Quote{}}))

	mine, err := repo.ListByCustomer("c1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "r3", mine[0].ID)
	assert.Equal(t, "r1", mine[1].ID)

	none, err := repo.ListByCustomer("ghost")
	require.NoError(t, err)
	assert.Empty(t, none)
}
