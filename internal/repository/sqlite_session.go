package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"worklog/internal/db"
	"worklog/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo against a SQLite database. It
// accepts any db.DBTX, so the same implementation serves both direct calls
// and transaction-scoped usage during backup import.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(dbtx db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: dbtx}
}

// Create inserts a new session and fills in the store-assigned ID.
// CreatedAt is assigned by the store unless the caller pre-set it, which the
// backup import does to preserve the original record timestamp.
func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO work_sessions (date, hours, notes, created_at) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		s.Date,
		s.Hours,
		s.Notes,
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting work session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted session id: %w", err)
	}
	s.ID = id
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	query := `SELECT id, date, hours, notes, created_at FROM work_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var s domain.Session
	var createdAtStr string
	if err := row.Scan(&s.ID, &s.Date, &s.Hours, &s.Notes, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work session %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work session: %w", err)
	}
	return populateSession(&s, createdAtStr)
}

// ListAll returns every session ordered by date descending, then created_at
// descending, with id descending as a final tie-break for same-instant rows.
func (r *SQLiteSessionRepo) ListAll(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT id, date, hours, notes, created_at
		FROM work_sessions
		ORDER BY date DESC, created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing work sessions: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

// Update rewrites date, hours and notes for an existing session. ID and
// created_at never change. A missing id is reported as ErrNotFound.
func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	query := `UPDATE work_sessions SET date = ?, hours = ?, notes = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, s.Date, s.Hours, s.Notes, s.ID)
	if err != nil {
		return fmt.Errorf("updating work session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("work session %d: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM work_sessions WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting work session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM work_sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting work sessions: %w", err)
	}
	return n, nil
}

// scanSessions scans multiple sessions from *sql.Rows.
func scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		var createdAtStr string
		if err := rows.Scan(&s.ID, &s.Date, &s.Hours, &s.Notes, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		session, err := populateSession(&s, createdAtStr)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields after scanning raw strings.
func populateSession(s *domain.Session, createdAtStr string) (*domain.Session, error) {
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.CreatedAt = createdAt
	return s, nil
}

var _ SessionRepo = (*SQLiteSessionRepo)(nil)
