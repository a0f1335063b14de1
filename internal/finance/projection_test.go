package finance

import (
	"testing"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthPace(t *testing.T) {
	p := MonthPace(dec("300"), day(2025, 4, 10))

	assert.Equal(t, 10, p.DaysElapsed)
	assert.Equal(t, 30, p.DaysInMonth)
	assertDecimal(t, "30", p.DailyAverage)
	assertDecimal(t, "900", p.ProjectedMonthly)

	assertDecimal(t, "0", DailyAverage(dec("100"), 0))
}

func TestRecommendations(t *testing.T) {
	ref := day(2025, 4, 10)
	var expenses []models.Expense
	for i := 0; i < 5; i++ {
		expenses = append(expenses, expense("food", "60", day(2025, 4, i+1)))
	}

	recs := Recommendations(expenses, dec("5000"), ref)
	require.Len(t, recs, 3)

	assert.Equal(t, RecommendCurrentPace, recs[0].Kind)
	assertDecimal(t, "990", recs[0].Amount)

	assert.Equal(t, RecommendRule503020, recs[1].Kind)
	assertDecimal(t, "4000", recs[1].Amount)
	require.NotNil(t, recs[1].Breakdown)
	assertDecimal(t, "2500", recs[1].Breakdown.Needs)
	assertDecimal(t, "1500", recs[1].Breakdown.Wants)
	assertDecimal(t, "1000", recs[1].Breakdown.Savings)

	assert.Equal(t, RecommendConservative, recs[2].Kind)
	assertDecimal(t, "4000", recs[2].Amount)
}

func TestRecommendations_NotEnoughData(t *testing.T) {
	ref := day(2025, 4, 10)
	assert.Empty(t, Recommendations(nil, decimal.Zero, ref))

	recs := Recommendations([]models.Expense{expense("food", "60", ref)}, dec("1000"), ref)
	require.Len(t, recs, 2)
	assert.Equal(t, RecommendRule503020, recs[0].Kind)
}

func TestSavings(t *testing.T) {
	goals := []models.SavingsGoal{
		{Name: "Emergency", TargetAmount: dec("1000"), CurrentAmount: dec("250")},
		{Name: "Trip", TargetAmount: dec("500"), CurrentAmount: dec("500")},
		{Name: "Car", TargetAmount: dec("500"), CurrentAmount: dec("0"), IsCompleted: true},
	}

	p := Savings(goals)
	assert.Equal(t, 3, p.Goals)
	assert.Equal(t, 2, p.Completed)
	assertDecimal(t, "2000", p.Target)
	assertDecimal(t, "750", p.Current)
	assert.InDelta(t, 37.5, p.Percent, 1e-9)

	require.Len(t, p.ByGoal, 3)
	assert.Equal(t, "Emergency", p.ByGoal[0].Name)
	assert.InDelta(t, 25.0, p.ByGoal[0].Percent, 1e-9)
	assertDecimal(t, "750", p.ByGoal[0].Remaining)
	assert.False(t, p.ByGoal[0].Completed)
	assert.True(t, p.ByGoal[1].Completed)
	assertDecimal(t, "0", p.ByGoal[1].Remaining)
	assert.True(t, p.ByGoal[2].Completed)

	assert.Empty(t, Savings(nil).ByGoal)

	assert.InDelta(t, 25.0, GoalProgress(goals[0]), 1e-9)
	assert.Zero(t, GoalProgress(models.SavingsGoal{TargetAmount: dec("0"), CurrentAmount: dec("10")}))
}
