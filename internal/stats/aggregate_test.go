package stats

import (
	"math/rand"
	"testing"
	"time"

	"worklog/internal/domain"
	"worklog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_Daily(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("2024-03-05", 2),
		testutil.NewTestSession("2024-03-05", 1.5),
		testutil.NewTestSession("2024-03-04", 4),
	}

	buckets := Aggregate(sessions, domain.ViewDaily)
	require.Len(t, buckets, 2)

	// Reverse chronological.
	assert.Equal(t, "2024-03-05", buckets[0].Key)
	assert.Equal(t, "05.03.2024 (Tuesday)", buckets[0].Label)
	assert.InDelta(t, 3.5, buckets[0].TotalHours, 1e-9)

	assert.Equal(t, "2024-03-04", buckets[1].Key)
	assert.InDelta(t, 4, buckets[1].TotalHours, 1e-9)
}

func TestAggregate_YearlyPreservesTotalHours(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("2023-12-31", 3),
		testutil.NewTestSession("2024-01-01", 2.25),
		testutil.NewTestSession("2024-06-15", 1.75),
		testutil.NewTestSession("2022-02-02", 8),
	}

	var want float64
	for _, s := range sessions {
		want += s.Hours
	}

	buckets := Aggregate(sessions, domain.ViewYearly)
	var got float64
	for _, b := range buckets {
		got += b.TotalHours
	}
	assert.InDelta(t, want, got, 1e-9, "yearly bucket totals must sum to the input total")
}

func TestAggregate_StableUnderReordering(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("2024-01-01", 1),
		testutil.NewTestSession("2024-01-08", 2),
		testutil.NewTestSession("2024-01-15", 3),
		testutil.NewTestSession("2024-02-01", 4),
		testutil.NewTestSession("2024-01-01", 5),
	}

	want := Aggregate(sessions, domain.ViewWeekly)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]*domain.Session, len(sessions))
		copy(shuffled, sessions)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, Aggregate(shuffled, domain.ViewWeekly))
	}
}

func TestAggregate_WeeklyYearBoundary(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("2024-12-30", 2),
		testutil.NewTestSession("2024-12-31", 3),
		testutil.NewTestSession("2025-01-02", 1),
	}

	buckets := Aggregate(sessions, domain.ViewWeekly)
	require.Len(t, buckets, 1, "all three dates share ISO week 1 of 2025")
	assert.Equal(t, "2025 - Week 01", buckets[0].Key)
	assert.InDelta(t, 6, buckets[0].TotalHours, 1e-9)
}

func TestAggregate_SkipsMalformedDates(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("2024-03-05", 2),
		testutil.NewTestSession("", 99),
		testutil.NewTestSession("not-a-date", 99),
	}

	buckets := Aggregate(sessions, domain.ViewMonthly)
	require.Len(t, buckets, 1)
	assert.InDelta(t, 2, buckets[0].TotalHours, 1e-9)
}

func TestAggregate_EmptyInput(t *testing.T) {
	assert.Empty(t, Aggregate(nil, domain.ViewDaily))
	assert.Empty(t, Aggregate([]*domain.Session{}, domain.ViewYearly))
}

func TestSummarize(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	sessions := []*domain.Session{
		testutil.NewTestSession("2024-03-01", 2),
		testutil.NewTestSession("2024-03-31", 3),
		testutil.NewTestSession("2024-02-29", 4),
		testutil.NewTestSession("2023-03-10", 5),
	}

	sum := Summarize(sessions, now)
	assert.InDelta(t, 14, sum.AllTimeHours, 1e-9)
	assert.InDelta(t, 5, sum.MonthHours, 1e-9, "only March 2024 sessions count toward the month figure")
}

func TestSummarize_MalformedDateStillCountsAllTime(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	sessions := []*domain.Session{
		testutil.NewTestSession("bogus", 2),
	}

	sum := Summarize(sessions, now)
	assert.InDelta(t, 2, sum.AllTimeHours, 1e-9)
	assert.InDelta(t, 0, sum.MonthHours, 1e-9)
}
