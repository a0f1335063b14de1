package finance

import (
	"fmt"
	"time"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// amountTolerance is how far a materialized EMI expense may drift from the installment
var amountTolerance = decimal.New(1, -2)

// IsMaterialized reports whether def already produced an expense for ref's month,
// either as recorded on the definition or through a linked expense dated in
// that month. EMI expenses must also match the installment amount.
func IsMaterialized(def models.Schedule, expenses []models.Expense, ref time.Time) bool {
	if def.MaterializedPeriod() == MonthKey(ref) {
		return true
	}
	src := def.Ref()
	for _, e := range expenses {
		if !e.LinkedTo(src) || !SameMonth(e.Date, ref) {
			continue
		}
		if src.Kind == models.SourceEMI && e.Amount.Sub(def.ChargeAmount()).Abs().GreaterThanOrEqual(amountTolerance) {
			continue
		}
		return true
	}
	return false
}

// IsPendingThisMonth reports whether def is active and has not been materialized for ref's month
func IsPendingThisMonth(def models.Schedule, expenses []models.Expense, ref time.Time) bool {
	return def.ActiveAsOf(ref) && !IsMaterialized(def, expenses, ref)
}

// DueDate returns the next due date for dueDay counted from ref: this month
// when the day has not passed yet, otherwise next month. Days beyond the end
// of the month are clamped to its last day.
func DueDate(dueDay int, ref time.Time) time.Time {
	day := TruncateDay(ref)
	month := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	if day.Day() > dueDay {
		month = month.AddDate(0, 1, 0)
	}
	return month.AddDate(0, 0, min(max(dueDay, 1), DaysInMonth(month))-1)
}

// Materialize builds the expense draft for def's charge due from ref
func Materialize(def models.Schedule, ref time.Time) models.ExpenseDraft {
	src := def.Ref()
	description := def.Label()
	if src.Kind == models.SourceEMI {
		description = fmt.Sprintf("%s - EMI Payment", def.Label())
	}
	return models.ExpenseDraft{
		Description: description,
		Amount:      def.ChargeAmount(),
		Category:    def.ChargeCategory(),
		Date:        DueDate(def.DueDay(), ref),
		Source:      src,
	}
}

// PendingSet lists the drafts that still need to be materialized
type PendingSet struct {
	Items       []models.ExpenseDraft `json:"items"`
	TotalCount  int                   `json:"total_count"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
}

// Pending collects a draft for every definition pending in ref's month
func Pending(defs []models.Schedule, expenses []models.Expense, ref time.Time) PendingSet {
	set := PendingSet{Items: make([]models.ExpenseDraft, 0), TotalAmount: decimal.Zero}
	for _, def := range defs {
		if !IsPendingThisMonth(def, expenses, ref) {
			continue
		}
		draft := Materialize(def, ref)
		set.Items = append(set.Items, draft)
		set.TotalAmount = set.TotalAmount.Add(draft.Amount)
	}
	set.TotalCount = len(set.Items)
	return set
}
