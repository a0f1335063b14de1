package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Schedule is the capability shared by definitions that produce periodic charges
// (EMIs and recurring expenses).
type Schedule interface {
	Ref() SourceRef
	Label() string
	ActiveAsOf(ref time.Time) bool
	// ChargeAmount is the amount of a single materialized charge.
	ChargeAmount() decimal.Decimal
	// MonthlyContribution is the amount counted towards monthly obligations.
	MonthlyContribution() decimal.Decimal
	ChargeCategory() string
	// DueDay is the day of month a charge falls on, 1..31.
	DueDay() int
	// MaterializedPeriod is the YYYY-MM month last materialized, or "".
	MaterializedPeriod() string
}

// DateOnly drops the time of day, keeping the calendar date in UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// onOrAfter reports whether end is the same calendar day as ref or later
func onOrAfter(end, ref time.Time) bool {
	return !DateOnly(end).Before(DateOnly(ref))
}
