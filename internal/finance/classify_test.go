package finance

import (
	"testing"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNeed(t *testing.T) {
	for _, c := range []string{"rent", "Housing", "UTILITIES", "food", "healthcare", "transportation", "Transport"} {
		assert.True(t, IsNeed(c), c)
	}
	for _, c := range []string{"shopping", "entertainment", "coffee", "Groceries", "", "foods"} {
		assert.False(t, IsNeed(c), c)
	}
}

func TestSplitNeedsWants(t *testing.T) {
	ref := day(2025, 4, 10)
	expenses := []models.Expense{
		expense("Rent", "1200", ref),
		expense("food", "300", ref),
		expense("gaming", "150", ref),
		expense("entertainment", "350", ref),
	}

	split := SplitNeedsWants(expenses, dec("2000"))

	assertDecimal(t, "1500", split.Needs)
	assertDecimal(t, "500", split.Wants)
	assert.InDelta(t, 75.0, split.NeedsPct, 1e-9)
	assert.InDelta(t, 25.0, split.WantsPct, 1e-9)
}

func TestSplitNeedsWants_ZeroIncome(t *testing.T) {
	split := SplitNeedsWants([]models.Expense{expense("food", "10", day(2025, 1, 1))}, dec("0"))
	assertDecimal(t, "10", split.Needs)
	assert.Zero(t, split.NeedsPct)
	assert.Zero(t, split.WantsPct)
}

func TestCategoryBreakdown(t *testing.T) {
	ref := day(2025, 4, 10)
	expenses := []models.Expense{
		expense("coffee", "50", ref),
		expense("food", "100", ref),
		expense("travel", "50", ref),
		expense("food", "100", ref),
		expense("rent", "200", ref),
	}

	shares := CategoryBreakdown(expenses)
	require.Len(t, shares, 4)

	var got []string
	for _, s := range shares {
		got = append(got, s.Category)
	}
	// food and rent tie at 200; food was seen first. coffee precedes travel likewise.
	assert.Equal(t, []string{"food", "rent", "coffee", "travel"}, got)
	assertDecimal(t, "200", shares[0].Amount)
	assert.InDelta(t, 40.0, shares[0].Percent, 1e-9)
	assert.InDelta(t, 10.0, shares[3].Percent, 1e-9)

	total := dec("0")
	for _, s := range shares {
		total = total.Add(s.Amount)
	}
	assert.True(t, TotalAmount(expenses).Equal(total))
}

func TestCategoryBreakdown_Empty(t *testing.T) {
	assert.Empty(t, CategoryBreakdown(nil))
}

func TestTopCategories(t *testing.T) {
	ref := day(2025, 4, 10)
	expenses := []models.Expense{
		expense("a", "1", ref),
		expense("b", "2", ref),
		expense("c", "3", ref),
	}
	top := TopCategories(expenses, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "c", top[0].Category)
	assert.Equal(t, "b", top[1].Category)
	assert.Len(t, TopCategories(expenses, 10), 3)
}
