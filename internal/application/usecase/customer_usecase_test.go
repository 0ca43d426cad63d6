package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eurocore-global/supplyhub-api/internal/application/dto"
	"github.com/eurocore-global/supplyhub-api/internal/application/usecase"
	"github.com/eurocore-global/supplyhub-api/internal/domain"
	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/localstore"
	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/records"
)

func newCustomerUC(t *testing.T) *usecase.CustomerUseCase {
	t.Helper()
	repo, err := records.NewCustomerRepository(localstore.NewMemoryStore())
	require.NoError(t, err)
	return usecase.NewCustomerUseCase(repo)
}

func TestCustomerRegister(t *testing.T) {
	uc := newCustomerUC(t)

	c, err := uc.Register(dto.RegisterCustomerRequest{
		Company: "ArmaTech", Country: "Ukraine", Email: "procurement@armatech.test",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, entity.StatusSubmitted, c.Status)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)
}

func TestCustomerRegister_RequiredFields(t *testing.T) {
	uc := newCustomerUC(t)

	_, err := uc.Register(dto.RegisterCustomerRequest{Company: "ArmaTech"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerApprove(t *testing.T) {
	uc := newCustomerUC(t)
	c, err := uc.Register(dto.RegisterCustomerRequest{
		Company: "ArmaTech", Country: "Ukraine", Email: "procurement@armatech.test",
	})
	require.NoError(t, err)

	approved, err := uc.Approve(c.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, approved.Status)

	again, err := uc.Approve(c.ID)
	require.NoError(t, err)
	assert.Equal(t, approved, again)
}

func TestCustomerApprove_UnknownID(t *testing.T) {
	uc := newCustomerUC(t)
	_, err := uc.Approve("ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
