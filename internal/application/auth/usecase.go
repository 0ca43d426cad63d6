// Package auth implements the session layer. It is deliberately a
// role-selection stub: an email resolves an identity, nothing is verified.
package auth

import (
	"github.com/eurocore-global/supplyhub-api/internal/application/dto"
	"github.com/eurocore-global/supplyhub-api/internal/domain"
	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
	"github.com/eurocore-global/supplyhub-api/internal/domain/repository"
)

// AdminDisplayName is the fixed display name for admin sessions; admins have
// no backing record.
const AdminDisplayName = "Platform Admin"

// SessionUseCase signs identities in and out.
type SessionUseCase struct {
	sessions      repository.SessionRepository
	manufacturers repository.ManufacturerRepository
	customers     repository.CustomerRepository
}

// NewSessionUseCase wires the session store and the collections logins
// resolve against.
func NewSessionUseCase(
	sessions repository.SessionRepository,
	manufacturers repository.ManufacturerRepository,
	customers repository.CustomerRepository,
) *SessionUseCase {
	return &SessionUseCase{sessions: sessions, manufacturers: manufacturers, customers: customers}
}

// Login resolves the email in the collection matching the role and persists
// the session. An unknown email returns domain.ErrIdentityNotFound and leaves
// any existing session untouched.
func (uc *SessionUseCase) Login(in dto.LoginRequest) (*entity.Session, error) {
	var sess *entity.Session
	switch in.Role {
	case entity.RoleAdmin:
		sess = &entity.Session{Role: entity.RoleAdmin, Name: AdminDisplayName}
	case entity.RoleManufacturer:
		m, err := uc.manufacturers.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrIdentityNotFound
		}
		sess = &entity.Session{Role: entity.RoleManufacturer, ID: m.ID, Name: m.Company}
	case entity.RoleCustomer:
		c, err := uc.customers.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, domain.ErrIdentityNotFound
		}
		sess = &entity.Session{Role: entity.RoleCustomer, ID: c.ID, Name: c.Company}
	default:
		return nil, domain.ErrUnknownRole
	}
	return sess, uc.sessions.Set(sess)
}

// Logout clears the session.
func (uc *SessionUseCase) Logout() error {
	return uc.sessions.Clear()
}

// Current returns the signed-in session, or nil.
func (uc *SessionUseCase) Current() (*entity.Session, error) {
	return uc.sessions.Get()
}
