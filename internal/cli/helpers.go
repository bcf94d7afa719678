package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"worklog/internal/domain"
	"worklog/internal/period"
)

// displayDate renders a stored date for listing, falling back to the raw
// value when it does not parse.
func displayDate(date string) string {
	if formatted := period.FormatDate(date, true); formatted != "" {
		return formatted
	}
	return date
}

// validateDate accepts a YYYY-MM-DD date string.
func validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("enter a date")
	}
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

// validateHours accepts a non-negative decimal number of hours.
func validateHours(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("enter hours")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("hours must be a number")
	}
	if v < 0 {
		return fmt.Errorf("hours must not be negative")
	}
	return nil
}
