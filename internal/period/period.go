// Package period maps calendar dates to grouping keys and display labels for
// the daily/weekly/monthly/yearly statistics views. All functions are pure.
package period

import (
	"fmt"
	"time"

	"worklog/internal/domain"
)

// Key returns the sortable grouping key for a session date under the given
// mode. Keys sort lexicographically in chronological order: YYYY-MM-DD for
// daily, YYYY-MM for monthly, YYYY for yearly, and "<ISO-week-year> - Week <nn>"
// (week zero-padded) for weekly. An unparseable date yields an error; callers
// skip such records instead of failing.
func Key(date string, mode domain.ViewMode) (string, error) {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("parsing date %q: %w", date, err)
	}
	switch mode {
	case domain.ViewDaily:
		return t.Format("2006-01-02"), nil
	case domain.ViewWeekly:
		return WeekLabel(t), nil
	case domain.ViewMonthly:
		return t.Format("2006-01"), nil
	case domain.ViewYearly:
		return t.Format("2006"), nil
	}
	return "", fmt.Errorf("unknown view mode %q", mode)
}

// Label renders a grouping key for display. Weekly and yearly keys are shown
// as-is; daily keys become DD.MM.YYYY with the weekday name, monthly keys
// become MM.YYYY.
func Label(key string, mode domain.ViewMode) string {
	switch mode {
	case domain.ViewDaily:
		return FormatDate(key, true)
	case domain.ViewMonthly:
		return FormatMonth(key)
	default:
		return key
	}
}

// WeekLabel returns the ISO-8601 week bucket for t, e.g. "2025 - Week 01".
// The week-year and number follow ISO numbering, so late-December dates may
// belong to week 1 of the following year and early-January dates to week
// 52/53 of the previous one. The week number is zero-padded to keep
// lexicographic and chronological order aligned within a year.
func WeekLabel(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d - Week %02d", year, week)
}

// FormatDate renders a YYYY-MM-DD date as DD.MM.YYYY, optionally suffixed
// with the weekday name, e.g. "05.03.2024 (Tuesday)". Returns "" for an
// empty or unparseable input.
func FormatDate(date string, withWeekday bool) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return ""
	}
	formatted := t.Format("02.01.2006")
	if withWeekday {
		return fmt.Sprintf("%s (%s)", formatted, t.Weekday())
	}
	return formatted
}

// FormatMonth renders a YYYY-MM key (or a full YYYY-MM-DD date) as MM.YYYY.
// Returns "" for an empty or unparseable input.
func FormatMonth(key string) string {
	if key == "" {
		return ""
	}
	t, err := time.Parse("2006-01", key)
	if err != nil {
		t, err = time.Parse(domain.DateLayout, key)
		if err != nil {
			return ""
		}
	}
	return t.Format("01.2006")
}
