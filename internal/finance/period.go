// Package finance turns raw expense, EMI, recurring and savings records into the
// derived figures shown on dashboards. Every function is pure: it takes explicit
// input, keeps no state between calls and never returns an error.
package finance

import (
	"strings"
	"time"

	"github.com/Dan9191/finance-tracker/internal/models"
)

// PeriodKind selects the window used for "current period" summaries
type PeriodKind string

const (
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
)

// ParsePeriodKind maps a query value to a period kind, defaulting to month
func ParsePeriodKind(s string) PeriodKind {
	if strings.EqualFold(strings.TrimSpace(s), string(PeriodWeek)) {
		return PeriodWeek
	}
	return PeriodMonth
}

// Window is an inclusive range of calendar days
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls on a day inside the window
func (w Window) Contains(t time.Time) bool {
	d := TruncateDay(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Days is the number of calendar days covered by the window
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// WindowFor computes the window for ref. A month window covers ref's calendar
// month; a week window is the trailing seven days ending on ref.
func WindowFor(ref time.Time, kind PeriodKind) Window {
	day := TruncateDay(ref)
	if kind == PeriodWeek {
		return Window{Start: day.AddDate(0, 0, -7), End: day}
	}
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, -1)}
}

// TruncateDay zeroes the time of day
func TruncateDay(t time.Time) time.Time {
	return models.DateOnly(t)
}

// MonthKey formats the month of t as YYYY-MM
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// SameMonth reports whether a and b fall in the same month of the same year
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysInMonth returns the number of days in t's month
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
