package records

import (
	"sync"

	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/localstore"
)

// SessionRepository holds the single current session under KeySession.
type SessionRepository struct {
	mu      sync.RWMutex
	store   localstore.Store
	current *entity.Session
}

// NewSessionRepository loads the persisted session, if any.
func NewSessionRepository(store localstore.Store) (*SessionRepository, error) {
	var current *entity.Session
	if _, err := store.Load(KeySession, &current); err != nil {
		return nil, err
	}
	return &SessionRepository{store: store, current: current}, nil
}

// Get returns a copy of the current session, or nil when signed out.
func (r *SessionRepository) Get() (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return nil, nil
	}
	cp := *r.current
	return &cp, nil
}

// Set replaces the current session and mirrors it.
func (r *SessionRepository) Set(s *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.current = &cp
	return persist(r.store, KeySession, r.current)
}

// Clear signs out: the persisted value becomes null.
func (r *SessionRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = nil
	return persist(r.store, KeySession, nil)
}
