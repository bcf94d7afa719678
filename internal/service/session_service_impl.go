package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"worklog/internal/domain"
	"worklog/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
	log      *slog.Logger
}

func NewSessionService(sessions repository.SessionRepo, log *slog.Logger) SessionService {
	return &sessionService{sessions: sessions, log: log}
}

// Log validates and persists a new session. ID and CreatedAt are assigned by
// the store.
func (s *sessionService) Log(ctx context.Context, sess *domain.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return s.storeFailure("saving session", err)
	}
	return nil
}

func (s *sessionService) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, s.storeFailure("loading session", err)
	}
	return sess, nil
}

func (s *sessionService) ListAll(ctx context.Context) ([]*domain.Session, error) {
	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, s.storeFailure("loading sessions", err)
	}
	return sessions, nil
}

// Update rewrites date, hours and notes of an existing session. A missing id
// surfaces as repository.ErrNotFound rather than a silent no-op.
func (s *sessionService) Update(ctx context.Context, sess *domain.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	if err := s.sessions.Update(ctx, sess); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return s.storeFailure("updating session", err)
	}
	return nil
}

func (s *sessionService) Delete(ctx context.Context, id int64) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return s.storeFailure("deleting session", err)
	}
	return nil
}

// storeFailure logs the underlying store error and returns a generic
// user-facing failure in its place.
func (s *sessionService) storeFailure(op string, err error) error {
	s.log.Error(op, "error", err)
	return fmt.Errorf("%s failed", op)
}
