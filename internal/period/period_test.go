package period

import (
	"fmt"
	"testing"
	"time"

	"worklog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05.03.2024 (Tuesday)", FormatDate("2024-03-05", true))
	assert.Equal(t, "05.03.2024", FormatDate("2024-03-05", false))
	assert.Equal(t, "01.01.2023 (Sunday)", FormatDate("2023-01-01", true))
}

func TestFormatDate_InvalidInput(t *testing.T) {
	assert.Equal(t, "", FormatDate("", true))
	assert.Equal(t, "", FormatDate("not-a-date", true))
	assert.Equal(t, "", FormatDate("2024-13-40", false))
}

func TestFormatDate_RoundTripsDateParts(t *testing.T) {
	dates := []string{"2024-01-01", "2024-02-29", "2024-12-31", "1999-07-15"}
	for _, date := range dates {
		formatted := FormatDate(date, false)
		require.Len(t, formatted, 10, "formatted %q", date)

		// DD.MM.YYYY back to YYYY-MM-DD reconstructs the input.
		reconstructed := fmt.Sprintf("%s-%s-%s", formatted[6:10], formatted[3:5], formatted[0:2])
		assert.Equal(t, date, reconstructed)
	}
}

func TestFormatMonth(t *testing.T) {
	assert.Equal(t, "03.2024", FormatMonth("2024-03"))
	assert.Equal(t, "12.1999", FormatMonth("1999-12"))
	assert.Equal(t, "03.2024", FormatMonth("2024-03-05"), "full dates are accepted too")
	assert.Equal(t, "", FormatMonth(""))
	assert.Equal(t, "", FormatMonth("bogus"))
}

func TestWeekLabel_ISOBoundary(t *testing.T) {
	// Late-December dates belong to week 1 of the following ISO year.
	dec30 := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)
	dec31 := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025 - Week 01", WeekLabel(dec30))
	assert.Equal(t, "2025 - Week 01", WeekLabel(dec31))

	// Early-January dates can belong to week 52/53 of the previous year.
	jan1 := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2020 - Week 53", WeekLabel(jan1))

	jan2 := time.Date(2016, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2015 - Week 53", WeekLabel(jan2))
}

func TestWeekLabel_ZeroPadsWeekNumber(t *testing.T) {
	// Without padding, "Week 9" would sort after "Week 10".
	week9 := time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC)
	week10 := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024 - Week 09", WeekLabel(week9))
	assert.Equal(t, "2024 - Week 10", WeekLabel(week10))
	assert.Less(t, WeekLabel(week9), WeekLabel(week10))
}

func TestKey(t *testing.T) {
	tests := []struct {
		date string
		mode domain.ViewMode
		want string
	}{
		{"2024-03-05", domain.ViewDaily, "2024-03-05"},
		{"2024-03-05", domain.ViewMonthly, "2024-03"},
		{"2024-03-05", domain.ViewYearly, "2024"},
		{"2024-03-05", domain.ViewWeekly, "2024 - Week 10"},
		{"2024-12-30", domain.ViewWeekly, "2025 - Week 01"},
	}
	for _, tc := range tests {
		got, err := Key(tc.date, tc.mode)
		require.NoError(t, err, "%s %s", tc.date, tc.mode)
		assert.Equal(t, tc.want, got)
	}
}

func TestKey_InvalidDate(t *testing.T) {
	_, err := Key("garbage", domain.ViewDaily)
	assert.Error(t, err)

	_, err = Key("", domain.ViewWeekly)
	assert.Error(t, err)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "05.03.2024 (Tuesday)", Label("2024-03-05", domain.ViewDaily))
	assert.Equal(t, "03.2024", Label("2024-03", domain.ViewMonthly))
	assert.Equal(t, "2024", Label("2024", domain.ViewYearly))
	assert.Equal(t, "2024 - Week 10", Label("2024 - Week 10", domain.ViewWeekly))
}
