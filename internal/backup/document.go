// Package backup defines the versioned JSON snapshot of the session store
// and its codec. Encoding is all-or-nothing: the document is fully marshaled
// before a single byte is written. Decoding distinguishes syntactically
// invalid input (ErrMalformedDocument) from well-formed input of the wrong
// shape (ErrInvalidFormat); neither touches the store.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"worklog/internal/domain"
)

// Version is the current backup schema version.
const Version = 1

// Document is the top-level backup structure.
type Document struct {
	Version   int             `json:"version"`
	Timestamp string          `json:"timestamp"`
	Sessions  []SessionRecord `json:"sessions"`
}

// SessionRecord is one session as it appears on the wire. ID and CreatedAt
// carry the exporting store's values; on import the ID is advisory only.
type SessionRecord struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Hours     float64 `json:"hours"`
	Notes     *string `json:"notes"`
	CreatedAt string  `json:"created_at"`
}

// createdAtLayouts are the accepted timestamp formats. RFC3339 is what this
// tool writes; the space-separated layout appears in backups taken from
// stores that let SQLite assign CURRENT_TIMESTAMP.
var createdAtLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

// CreatedTime parses the record's created_at timestamp.
func (r *SessionRecord) CreatedTime() (time.Time, error) {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, r.CreatedAt); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable created_at %q", r.CreatedAt)
}

// FromSession converts a stored session to its wire form. Empty notes are
// emitted as JSON null.
func FromSession(s *domain.Session) SessionRecord {
	rec := SessionRecord{
		ID:        s.ID,
		Date:      s.Date,
		Hours:     s.Hours,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	}
	if s.Notes != "" {
		notes := s.Notes
		rec.Notes = &notes
	}
	return rec
}

// NotesValue returns the record's notes with JSON null mapped to "".
func (r *SessionRecord) NotesValue() string {
	if r.Notes == nil {
		return ""
	}
	return *r.Notes
}

// Encode writes a version-1 backup document containing the given sessions.
// The document is marshaled in full before writing, so a failed write never
// leaves a syntactically broken prefix followed by later output.
func Encode(w io.Writer, sessions []*domain.Session, now time.Time) error {
	doc := Document{
		Version:   Version,
		Timestamp: now.UTC().Format(time.RFC3339),
		Sessions:  make([]SessionRecord, 0, len(sessions)),
	}
	for _, s := range sessions {
		doc.Sessions = append(doc.Sessions, FromSession(s))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding backup document: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing backup document: %w", err)
	}
	return nil
}

// Decode reads and shape-validates a backup document.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading backup document: %w", err)
	}
	if !json.Valid(data) {
		return nil, ErrMalformedDocument
	}

	var raw struct {
		Version   int             `json:"version"`
		Timestamp string          `json:"timestamp"`
		Sessions  json.RawMessage `json:"sessions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: expected a backup object", ErrInvalidFormat)
	}
	if len(raw.Sessions) == 0 || string(raw.Sessions) == "null" {
		return nil, fmt.Errorf("%w: missing sessions array", ErrInvalidFormat)
	}

	var sessions []SessionRecord
	if err := json.Unmarshal(raw.Sessions, &sessions); err != nil {
		return nil, fmt.Errorf("%w: sessions is not an array of session records", ErrInvalidFormat)
	}

	return &Document{
		Version:   raw.Version,
		Timestamp: raw.Timestamp,
		Sessions:  sessions,
	}, nil
}
