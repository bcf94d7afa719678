package service

import (
	"context"
	"io"

	"worklog/internal/domain"
	"worklog/internal/stats"
)

type SessionService interface {
	Log(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	ListAll(ctx context.Context) ([]*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id int64) error
}

type StatsService interface {
	Report(ctx context.Context, mode domain.ViewMode) ([]stats.Bucket, error)
	Summary(ctx context.Context) (stats.Summary, error)
}

// ImportResult holds the outcome of a backup import.
type ImportResult struct {
	Imported int
	Skipped  int
}

type BackupService interface {
	Export(ctx context.Context, w io.Writer) error
	ExportToFile(ctx context.Context, path string) error
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
	ImportFromFile(ctx context.Context, path string) (*ImportResult, error)
}
