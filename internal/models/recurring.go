package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency is how often a recurring expense repeats
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports whether f is a known frequency
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// RecurringExpense represents a repeating charge such as a subscription or rent
type RecurringExpense struct {
	ID                     uuid.UUID       `json:"id"`
	UserID                 uuid.UUID       `json:"user_id"`
	Name                   string          `json:"name"`
	Amount                 decimal.Decimal `json:"amount"`
	Category               string          `json:"category"`
	Frequency              Frequency       `json:"frequency"`
	StartDate              time.Time       `json:"start_date"`
	EndDate                *time.Time      `json:"end_date,omitempty"`
	DayOfMonth             *int            `json:"day_of_month,omitempty"`
	DayOfWeek              *int            `json:"day_of_week,omitempty"`
	IsActive               bool            `json:"is_active"`
	LastMaterializedPeriod string          `json:"last_materialized_period,omitempty"`
	Notes                  string          `json:"notes,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

func (r RecurringExpense) Ref() SourceRef { return SourceRef{Kind: SourceRecurring, ID: r.ID} }

func (r RecurringExpense) Label() string { return r.Name }

// ActiveAsOf reports whether the recurring expense is enabled and, when it has
// an end date, that date is not before ref.
func (r RecurringExpense) ActiveAsOf(ref time.Time) bool {
	if !r.IsActive {
		return false
	}
	return r.EndDate == nil || onOrAfter(*r.EndDate, ref)
}

func (r RecurringExpense) ChargeAmount() decimal.Decimal { return r.Amount }

// MonthlyContribution only counts monthly items; other frequencies are not
// normalised to a monthly equivalent.
func (r RecurringExpense) MonthlyContribution() decimal.Decimal {
	if r.Frequency != FrequencyMonthly {
		return decimal.Zero
	}
	return r.Amount
}

func (r RecurringExpense) ChargeCategory() string { return r.Category }

// DueDay falls back to the start date's day when no day of month is set
func (r RecurringExpense) DueDay() int {
	if r.DayOfMonth != nil {
		return *r.DayOfMonth
	}
	return r.StartDate.Day()
}

func (r RecurringExpense) MaterializedPeriod() string { return r.LastMaterializedPeriod }
