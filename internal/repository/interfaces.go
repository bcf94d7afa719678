package repository

import (
	"context"
	"errors"

	"worklog/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// SessionRepo is the session store contract consumed by the services.
// Implementations assign ID and CreatedAt on Create and keep both immutable
// afterwards; ListAll orders by date descending, then created_at descending.
type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	ListAll(ctx context.Context) ([]*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
