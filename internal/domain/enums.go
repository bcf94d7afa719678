package domain

import "fmt"

// ViewMode selects the statistics grouping period.
type ViewMode string

const (
	ViewDaily   ViewMode = "daily"
	ViewWeekly  ViewMode = "weekly"
	ViewMonthly ViewMode = "monthly"
	ViewYearly  ViewMode = "yearly"
)

// ViewModes lists all modes in cycling order.
var ViewModes = []ViewMode{ViewDaily, ViewWeekly, ViewMonthly, ViewYearly}

// ParseViewMode maps a user-facing string to a ViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewDaily, ViewWeekly, ViewMonthly, ViewYearly:
		return ViewMode(s), nil
	}
	return "", fmt.Errorf("unknown view mode %q (expected daily, weekly, monthly or yearly)", s)
}

// Next returns the mode following m in cycling order.
func (m ViewMode) Next() ViewMode {
	for i, v := range ViewModes {
		if v == m {
			return ViewModes[(i+1)%len(ViewModes)]
		}
	}
	return ViewDaily
}
