package finance

import (
	"math"
	"time"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// Obligations is the monthly commitment from active EMIs and monthly recurring expenses
type Obligations struct {
	EMITotal        decimal.Decimal `json:"emi_total"`
	RecurringTotal  decimal.Decimal `json:"recurring_total"`
	Total           decimal.Decimal `json:"total"`
	ActiveEMIs      int             `json:"active_emis"`
	ActiveRecurring int             `json:"active_recurring"`
}

// ActiveSchedules keeps the items that are active as of ref, preserving order
func ActiveSchedules[S models.Schedule](items []S, ref time.Time) []S {
	active := make([]S, 0, len(items))
	for _, item := range items {
		if item.ActiveAsOf(ref) {
			active = append(active, item)
		}
	}
	return active
}

// ActiveEMIs returns EMIs that are enabled and end on or after ref
func ActiveEMIs(emis []models.EMI, ref time.Time) []models.EMI {
	return ActiveSchedules(emis, ref)
}

// ActiveRecurring returns recurring expenses that are enabled and have not ended before ref
func ActiveRecurring(list []models.RecurringExpense, ref time.Time) []models.RecurringExpense {
	return ActiveSchedules(list, ref)
}

// ObligationTotal sums the monthly contribution of every schedule active as of ref
func ObligationTotal(schedules []models.Schedule, ref time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, s := range schedules {
		if s.ActiveAsOf(ref) {
			total = total.Add(s.MonthlyContribution())
		}
	}
	return total
}

// MonthlyObligationTotal sums monthly amounts of active EMIs and amounts of
// active recurring expenses with a monthly frequency.
func MonthlyObligationTotal(emis []models.EMI, recurring []models.RecurringExpense, ref time.Time) decimal.Decimal {
	return ObligationTotal(Schedules(emis, recurring), ref)
}

// Breakdown splits the monthly obligation total by source
func Breakdown(emis []models.EMI, recurring []models.RecurringExpense, ref time.Time) Obligations {
	activeEMIs := ActiveEMIs(emis, ref)
	activeRecurring := ActiveRecurring(recurring, ref)

	o := Obligations{
		EMITotal:        decimal.Zero,
		RecurringTotal:  decimal.Zero,
		ActiveEMIs:      len(activeEMIs),
		ActiveRecurring: len(activeRecurring),
	}
	for _, e := range activeEMIs {
		o.EMITotal = o.EMITotal.Add(e.MonthlyContribution())
	}
	for _, r := range activeRecurring {
		o.RecurringTotal = o.RecurringTotal.Add(r.MonthlyContribution())
	}
	o.Total = o.EMITotal.Add(o.RecurringTotal)
	return o
}

// Schedules merges EMIs and recurring expenses into a single list
func Schedules(emis []models.EMI, recurring []models.RecurringExpense) []models.Schedule {
	out := make([]models.Schedule, 0, len(emis)+len(recurring))
	for _, e := range emis {
		out = append(out, e)
	}
	for _, r := range recurring {
		out = append(out, r)
	}
	return out
}

// MonthsBetween counts whole calendar months from start to end, never negative
func MonthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// EMITotal derives an EMI's total amount from its monthly installment and term
func EMITotal(monthly decimal.Decimal, start, end time.Time) decimal.Decimal {
	return monthly.Mul(decimal.NewFromInt(int64(MonthsBetween(start, end))))
}

// MonthsRemaining estimates the installments left until the EMI ends, counting
// thirty-day blocks from ref and rounding up.
func MonthsRemaining(emi models.EMI, ref time.Time) int {
	days := TruncateDay(emi.EndDate).Sub(TruncateDay(ref)).Hours() / 24
	if days <= 0 {
		return 0
	}
	return int(math.Ceil(days / 30))
}

// EMIProgress is the share of the loan term already elapsed at ref, 0..100
func EMIProgress(emi models.EMI, ref time.Time) float64 {
	total := TruncateDay(emi.EndDate).Sub(TruncateDay(emi.StartDate))
	if total <= 0 {
		return 100
	}
	elapsed := TruncateDay(ref).Sub(TruncateDay(emi.StartDate))
	return math.Min(math.Max(float64(elapsed)/float64(total)*100, 0), 100)
}
