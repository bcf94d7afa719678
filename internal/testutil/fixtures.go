package testutil

import (
	"io"
	"log/slog"
	"time"

	"worklog/internal/domain"
)

// SessionOption customizes a test session fixture.
type SessionOption func(*domain.Session)

// WithNotes sets the session notes.
func WithNotes(notes string) SessionOption {
	return func(s *domain.Session) { s.Notes = notes }
}

// WithCreatedAt pre-sets the creation timestamp, as the backup import does.
func WithCreatedAt(t time.Time) SessionOption {
	return func(s *domain.Session) { s.CreatedAt = t }
}

// NewTestSession builds a session fixture for the given date and hours.
func NewTestSession(date string, hours float64, opts ...SessionOption) *domain.Session {
	s := &domain.Session{
		Date:  date,
		Hours: hours,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DiscardLogger returns a logger that drops everything, for wiring services
// under test.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
