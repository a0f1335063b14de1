package finance

import (
	"time"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// MonthOverMonth is the percentage change from prev to cur. It is 0 when prev is not positive.
func MonthOverMonth(cur, prev decimal.Decimal) float64 {
	return Percent(cur.Sub(prev), prev)
}

// MonthComparison sets ref's month against the month before it
type MonthComparison struct {
	CurrentMonth  string          `json:"current_month"`
	PreviousMonth string          `json:"previous_month"`
	CurrentTotal  decimal.Decimal `json:"current_total"`
	PreviousTotal decimal.Decimal `json:"previous_total"`
	ChangePercent float64         `json:"change_percent"`
}

// CompareMonths totals the expenses of ref's calendar month and of the previous one
func CompareMonths(expenses []models.Expense, ref time.Time) MonthComparison {
	month := WindowFor(ref, PeriodMonth)
	prev := WindowFor(month.Start.AddDate(0, 0, -1), PeriodMonth)

	cur := TotalAmount(FilterByWindow(expenses, month))
	before := TotalAmount(FilterByWindow(expenses, prev))
	return MonthComparison{
		CurrentMonth:  MonthKey(month.Start),
		PreviousMonth: MonthKey(prev.Start),
		CurrentTotal:  cur,
		PreviousTotal: before,
		ChangePercent: MonthOverMonth(cur, before),
	}
}

// HighestExpense returns the largest expense, the earliest in order on ties, or nil when there are none
func HighestExpense(expenses []models.Expense) *models.Expense {
	if len(expenses) == 0 {
		return nil
	}
	highest := expenses[0]
	for _, e := range expenses[1:] {
		if e.Amount.GreaterThan(highest.Amount) {
			highest = e
		}
	}
	return &highest
}

// DayTotal is the spending recorded on one day
type DayTotal struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// DailyTotals returns one entry per day of w, oldest first. Days without expenses are zero.
func DailyTotals(expenses []models.Expense, w Window) []DayTotal {
	days := w.Days()
	if days <= 0 {
		return []DayTotal{}
	}
	series := make([]DayTotal, days)
	for i := range series {
		series[i] = DayTotal{Date: w.Start.AddDate(0, 0, i), Amount: decimal.Zero}
	}
	for _, e := range FilterByWindow(expenses, w) {
		i := int(TruncateDay(e.Date).Sub(w.Start).Hours() / 24)
		series[i].Amount = series[i].Amount.Add(e.Amount)
		series[i].Count++
	}
	return series
}
