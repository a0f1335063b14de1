package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultEMICategory is the category given to EMI payments
const DefaultEMICategory = "EMI"

// EMI represents an installment loan
type EMI struct {
	ID                     uuid.UUID           `json:"id"`
	UserID                 uuid.UUID           `json:"user_id"`
	Name                   string              `json:"name"`
	TotalAmount            decimal.Decimal     `json:"total_amount"`
	MonthlyAmount          decimal.Decimal     `json:"monthly_amount"`
	RemainingAmount        decimal.Decimal     `json:"remaining_amount"`
	InterestRate           decimal.NullDecimal `json:"interest_rate"`
	StartDate              time.Time           `json:"start_date"`
	EndDate                time.Time           `json:"end_date"`
	DueDayOfMonth          int                 `json:"due_day"`
	Category               string              `json:"category"`
	IsActive               bool                `json:"is_active"`
	LastMaterializedPeriod string              `json:"last_materialized_period,omitempty"`
	Notes                  string              `json:"notes,omitempty"`
	CreatedAt              time.Time           `json:"created_at"`
	UpdatedAt              time.Time           `json:"updated_at"`
}

func (e EMI) Ref() SourceRef { return SourceRef{Kind: SourceEMI, ID: e.ID} }

func (e EMI) Label() string { return e.Name }

// ActiveAsOf reports whether the EMI is enabled and has not ended before ref.
// The end date itself still counts as active.
func (e EMI) ActiveAsOf(ref time.Time) bool {
	return e.IsActive && onOrAfter(e.EndDate, ref)
}

func (e EMI) ChargeAmount() decimal.Decimal { return e.MonthlyAmount }

func (e EMI) MonthlyContribution() decimal.Decimal { return e.MonthlyAmount }

func (e EMI) ChargeCategory() string {
	if e.Category == "" {
		return DefaultEMICategory
	}
	return e.Category
}

func (e EMI) DueDay() int { return e.DueDayOfMonth }

func (e EMI) MaterializedPeriod() string { return e.LastMaterializedPeriod }
