package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"worklog/internal/backup"
	"worklog/internal/db"
	"worklog/internal/domain"
	"worklog/internal/repository"
)

type backupService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	log      *slog.Logger
	now      func() time.Time
}

func NewBackupService(sessions repository.SessionRepo, uow db.UnitOfWork, log *slog.Logger) BackupService {
	return &backupService{sessions: sessions, uow: uow, log: log, now: time.Now}
}

// Export writes a version-1 backup document with every stored session to w.
func (s *backupService) Export(ctx context.Context, w io.Writer) error {
	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		s.log.Error("loading sessions for export", "error", err)
		return fmt.Errorf("loading sessions failed")
	}
	return backup.Encode(w, sessions, s.now())
}

// ExportToFile exports to path via a temp file in the same directory followed
// by a rename, so a failed export never leaves a truncated document behind.
func (s *backupService) ExportToFile(ctx context.Context, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating backup file: %w", err)
	}
	tmpName := tmp.Name()

	if err := s.Export(ctx, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing backup file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("moving backup into place: %w", err)
	}
	return nil
}

// Import merges a backup document into the store. Records whose
// (date, created_at) signature already exists are skipped; the rest are
// inserted in document order with a fresh id but their original created_at
// preserved, which keeps re-imports of the same document idempotent.
// The whole merge runs in one transaction: a failure writes nothing.
func (s *backupService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	doc, err := backup.Decode(r)
	if err != nil {
		return nil, err
	}

	var result ImportResult
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		existing, err := txSessions.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("loading existing sessions: %w", err)
		}
		seen := make(map[string]bool, len(existing))
		for _, sess := range existing {
			seen[sess.Signature()] = true
		}

		for i, rec := range doc.Sessions {
			createdAt, err := rec.CreatedTime()
			if err != nil {
				return fmt.Errorf("%w: sessions[%d]: %v", backup.ErrInvalidFormat, i, err)
			}
			incoming := domain.Session{
				Date:      rec.Date,
				Hours:     rec.Hours,
				Notes:     rec.NotesValue(),
				CreatedAt: createdAt,
			}
			if seen[incoming.Signature()] {
				result.Skipped++
				continue
			}
			if err := txSessions.Create(ctx, &incoming); err != nil {
				return fmt.Errorf("inserting sessions[%d]: %w", i, err)
			}
			seen[incoming.Signature()] = true
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ImportFromFile imports the document at path. An empty path means the user
// aborted the file selection and is reported as backup.ErrCanceled without
// touching the store.
func (s *backupService) ImportFromFile(ctx context.Context, path string) (*ImportResult, error) {
	if path == "" {
		return nil, backup.ErrCanceled
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening backup file: %w", err)
	}
	defer f.Close()
	return s.Import(ctx, f)
}
