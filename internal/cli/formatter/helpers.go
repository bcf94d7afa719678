package formatter

import (
	"strconv"
	"strings"
	"time"
)

// FormatHours renders an hour quantity with one decimal place, dropping a
// trailing ".0" so whole hours read cleanly.
func FormatHours(hours float64) string {
	s := strconv.FormatFloat(hours, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// HumanTimestamp renders a timestamp for table display.
func HumanTimestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// TruncNote shortens a note for single-line display.
func TruncNote(note string, max int) string {
	note = strings.ReplaceAll(note, "\n", " ")
	if len(note) <= max {
		return note
	}
	if max <= 3 {
		return note[:max]
	}
	return note[:max-3] + "..."
}
