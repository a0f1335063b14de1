package finance

import (
	"testing"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name        string
		spending    float64
		savings     float64
		obligations string
		income      string
		want        int
	}{
		{name: "balanced budget", spending: 50, savings: 50, obligations: "0", income: "1000", want: 100},
		{name: "spending above 80", spending: 85, savings: 20, obligations: "0", income: "1000", want: 85},
		{name: "spending above 100", spending: 120, savings: -20, obligations: "0", income: "1000", want: 70},
		{name: "spending exactly 100", spending: 100, savings: 0, obligations: "0", income: "1000", want: 85},
		{name: "obligations above 40", spending: 60, savings: 40, obligations: "450", income: "1000", want: 85},
		{name: "obligations above 60", spending: 90, savings: 30, obligations: "650", income: "1000", want: 60},
		{name: "high savings bonus is clamped", spending: 10, savings: 90, obligations: "0", income: "1000", want: 100},
		{name: "moderate savings bonus after penalty", spending: 85, savings: 60, obligations: "0", income: "1000", want: 90},
		{name: "worst case", spending: 500, savings: -400, obligations: "5000", income: "1000", want: 45},
		{name: "zero income", spending: 0, savings: 0, obligations: "100", income: "0", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summary{SpendingRate: tt.spending, SavingsRate: tt.savings}
			got := Score(s, dec(tt.obligations), dec(tt.income), 0)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScore_ScenarioB(t *testing.T) {
	ref := day(2025, 9, 12)
	loan := emi("500", day(2027, 1, 1), true)
	expenses := []models.Expense{
		expense("shopping", "1800", day(2025, 9, 2)),
		expense("food", "1000", day(2025, 9, 10)),
	}
	income := dec("3000")

	obligations := MonthlyObligationTotal([]models.EMI{loan}, nil, ref)
	s := Summarize(expenses, income, obligations, WindowFor(ref, PeriodMonth))

	assertDecimal(t, "3300", s.TotalWithObligations)
	assertDecimal(t, "-300", s.Remaining)
	assert.InDelta(t, 110.0, s.SpendingRate, 1e-9)

	h := Assess(s, obligations, income, 2)
	assert.Equal(t, 70, h.Score)
	assert.Equal(t, LabelGood, h.Label)
	assert.InDelta(t, 16.667, h.ObligationRate, 1e-3)
	assert.Equal(t, 2, h.SavingsGoals)
}

func TestScore_AlwaysInRange(t *testing.T) {
	rates := []float64{-1000, -50, 0, 40, 50.5, 80, 80.01, 100, 100.01, 1e6}
	amounts := []string{"0", "1", "399", "400.01", "600.01", "100000"}
	for _, spending := range rates {
		for _, savings := range rates {
			for _, obligations := range amounts {
				for _, income := range []decimal.Decimal{decimal.Zero, dec("1000")} {
					got := Score(Summary{SpendingRate: spending, SavingsRate: savings}, dec(obligations), income, 3)
					assert.GreaterOrEqual(t, got, 0)
					assert.LessOrEqual(t, got, 100)
				}
			}
		}
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, LabelExcellent, Label(100))
	assert.Equal(t, LabelExcellent, Label(80))
	assert.Equal(t, LabelGood, Label(79))
	assert.Equal(t, LabelGood, Label(60))
	assert.Equal(t, LabelFair, Label(59))
	assert.Equal(t, LabelFair, Label(40))
	assert.Equal(t, LabelNeedsAttention, Label(39))
	assert.Equal(t, LabelNeedsAttention, Label(0))
}
