// Package stats aggregates session records into period-bucketed reports.
package stats

import (
	"sort"
	"time"

	"worklog/internal/domain"
	"worklog/internal/period"
)

// Bucket is one row of an aggregated report: a grouping key, its display
// label, and the summed hours of every session falling in that period.
type Bucket struct {
	Key        string
	Label      string
	TotalHours float64
}

// Aggregate groups sessions by period key for the given mode and sums their
// hours. Buckets come back sorted by key descending, which is reverse
// chronological for every mode. Sessions with a blank or unparseable date
// are skipped; a single bad record never fails the whole report.
func Aggregate(sessions []*domain.Session, mode domain.ViewMode) []Bucket {
	totals := make(map[string]float64)
	for _, s := range sessions {
		if s.Date == "" {
			continue
		}
		key, err := period.Key(s.Date, mode)
		if err != nil {
			continue
		}
		totals[key] += s.Hours
	}

	buckets := make([]Bucket, 0, len(totals))
	for key, hours := range totals {
		buckets = append(buckets, Bucket{
			Key:        key,
			Label:      period.Label(key, mode),
			TotalHours: hours,
		})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Key > buckets[j].Key })
	return buckets
}

// Summary holds the headline totals shown above the bucket report.
type Summary struct {
	AllTimeHours float64
	MonthHours   float64
}

// Summarize computes the all-time total and the current-calendar-month total,
// with "current month" taken from now (local wall clock at query time).
func Summarize(sessions []*domain.Session, now time.Time) Summary {
	var sum Summary
	for _, s := range sessions {
		sum.AllTimeHours += s.Hours
		t, err := time.Parse(domain.DateLayout, s.Date)
		if err != nil {
			continue
		}
		if t.Year() == now.Year() && t.Month() == now.Month() {
			sum.MonthHours += s.Hours
		}
	}
	return sum
}
