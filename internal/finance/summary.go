package finance

import (
	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summary is the core set of figures for a period
type Summary struct {
	Window               Window          `json:"window"`
	ExpenseCount         int             `json:"expense_count"`
	TotalSpent           decimal.Decimal `json:"total_spent"`
	ObligationsTotal     decimal.Decimal `json:"obligations_total"`
	TotalWithObligations decimal.Decimal `json:"total_with_obligations"`
	Remaining            decimal.Decimal `json:"remaining"`
	SpendingRate         float64         `json:"spending_rate"`
	SavingsRate          float64         `json:"savings_rate"`
}

// FilterByWindow returns the expenses dated inside w, preserving order
func FilterByWindow(expenses []models.Expense, w Window) []models.Expense {
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if w.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// TotalAmount sums expense amounts
func TotalAmount(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// Summarize aggregates the expenses dated inside window together with the
// monthly obligations. Remaining may be negative and rates are not clamped.
// The savings rate leaves obligations out.
func Summarize(expenses []models.Expense, income, obligationsTotal decimal.Decimal, window Window) Summary {
	period := FilterByWindow(expenses, window)
	totalSpent := TotalAmount(period)
	withObligations := totalSpent.Add(obligationsTotal)

	return Summary{
		Window:               window,
		ExpenseCount:         len(period),
		TotalSpent:           totalSpent,
		ObligationsTotal:     obligationsTotal,
		TotalWithObligations: withObligations,
		Remaining:            income.Sub(withObligations),
		SpendingRate:         Percent(withObligations, income),
		SavingsRate:          Percent(income.Sub(totalSpent), income),
	}
}

// Percent returns part as a percentage of whole, or 0 when whole is not positive
func Percent(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}
