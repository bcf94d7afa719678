package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the storage format for session dates.
const DateLayout = "2006-01-02"

// Session is one logged unit of work.
type Session struct {
	ID        int64
	Date      string // YYYY-MM-DD
	Hours     float64
	Notes     string
	CreatedAt time.Time
}

// Signature returns the composite duplicate-detection key over (Date, CreatedAt).
// CreatedAt is canonicalized to UTC RFC3339 so a record round-tripped through
// a backup document keeps the same signature.
func (s *Session) Signature() string {
	return s.Date + "|" + s.CreatedAt.UTC().Format(time.RFC3339)
}

// Validate checks user-supplied fields before a session reaches the store.
func (s *Session) Validate() error {
	if strings.TrimSpace(s.Date) == "" {
		return ValidationError{Field: "date", Reason: "is required"}
	}
	if _, err := time.Parse(DateLayout, s.Date); err != nil {
		return ValidationError{Field: "date", Reason: fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", s.Date)}
	}
	if s.Hours < 0 {
		return ValidationError{Field: "hours", Reason: "must not be negative"}
	}
	return nil
}
