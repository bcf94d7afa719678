package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"worklog/internal/domain"
	"worklog/internal/repository"
	"worklog/internal/stats"
)

type statsService struct {
	sessions repository.SessionRepo
	log      *slog.Logger
	now      func() time.Time
}

func NewStatsService(sessions repository.SessionRepo, log *slog.Logger) StatsService {
	return &statsService{sessions: sessions, log: log, now: time.Now}
}

// Report reads all sessions and groups them into period buckets for the
// given view mode, reverse chronological.
func (s *statsService) Report(ctx context.Context, mode domain.ViewMode) ([]stats.Bucket, error) {
	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		s.log.Error("loading sessions for report", "error", err)
		return nil, fmt.Errorf("loading sessions failed")
	}
	return stats.Aggregate(sessions, mode), nil
}

// Summary returns the all-time total and the current-calendar-month total.
func (s *statsService) Summary(ctx context.Context) (stats.Summary, error) {
	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		s.log.Error("loading sessions for summary", "error", err)
		return stats.Summary{}, fmt.Errorf("loading sessions failed")
	}
	return stats.Summarize(sessions, s.now()), nil
}
