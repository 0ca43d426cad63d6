package repository

import "github.com/eurocore-global/supplyhub-api/internal/domain/entity"

// SessionRepository holds the single current session. Get returns nil when
// nobody is signed in.
type SessionRepository interface {
	Get() (*entity.Session, error)
	Set(s *entity.Session) error
	Clear() error
}
