package finance

import (
	"sort"
	"strings"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/shopspring/decimal"
)

var needsCategories = map[string]struct{}{
	"rent":           {},
	"housing":        {},
	"utilities":      {},
	"food":           {},
	"healthcare":     {},
	"transportation": {},
	"transport":      {},
}

// IsNeed reports whether category belongs to the fixed needs set.
// Matching ignores case; any other category, custom ones included, is a want.
func IsNeed(category string) bool {
	_, ok := needsCategories[strings.ToLower(category)]
	return ok
}

// NeedsWants is the 50/30/20 split of period spending. Percentages are of income.
type NeedsWants struct {
	Needs    decimal.Decimal `json:"needs"`
	Wants    decimal.Decimal `json:"wants"`
	NeedsPct float64         `json:"needs_pct"`
	WantsPct float64         `json:"wants_pct"`
}

// SplitNeedsWants classifies period expenses into needs and wants
func SplitNeedsWants(periodExpenses []models.Expense, income decimal.Decimal) NeedsWants {
	needs := decimal.Zero
	for _, e := range periodExpenses {
		if IsNeed(e.Category) {
			needs = needs.Add(e.Amount)
		}
	}
	wants := TotalAmount(periodExpenses).Sub(needs)
	return NeedsWants{
		Needs:    needs,
		Wants:    wants,
		NeedsPct: Percent(needs, income),
		WantsPct: Percent(wants, income),
	}
}

// CategoryShare is one row of a category breakdown
type CategoryShare struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Percent  float64         `json:"percent"`
}

// CategoryBreakdown totals expenses per category, largest first. Categories
// with equal totals keep the order in which they were first seen.
func CategoryBreakdown(expenses []models.Expense) []CategoryShare {
	index := make(map[string]int)
	shares := make([]CategoryShare, 0)
	total := decimal.Zero

	for _, e := range expenses {
		total = total.Add(e.Amount)
		i, ok := index[e.Category]
		if !ok {
			i = len(shares)
			index[e.Category] = i
			shares = append(shares, CategoryShare{Category: e.Category, Amount: decimal.Zero})
		}
		shares[i].Amount = shares[i].Amount.Add(e.Amount)
	}

	for i := range shares {
		shares[i].Percent = Percent(shares[i].Amount, total)
	}
	sort.SliceStable(shares, func(a, b int) bool {
		return shares[a].Amount.GreaterThan(shares[b].Amount)
	})
	return shares
}

// TopCategories returns at most limit rows of the breakdown
func TopCategories(expenses []models.Expense, limit int) []CategoryShare {
	shares := CategoryBreakdown(expenses)
	if limit >= 0 && len(shares) > limit {
		shares = shares[:limit]
	}
	return shares
}
