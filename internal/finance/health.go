package finance

import (
	"github.com/shopspring/decimal"
)

// Health labels
const (
	LabelExcellent      = "Excellent"
	LabelGood           = "Good"
	LabelFair           = "Fair"
	LabelNeedsAttention = "Needs Attention"
)

// Health is the financial health assessment shown on the dashboard
type Health struct {
	Score          int     `json:"score"`
	Label          string  `json:"label"`
	ObligationRate float64 `json:"obligation_rate"`
	SavingsGoals   int     `json:"savings_goals"`
}

// Score rates spending discipline, obligation load and savings on a 0..100 scale.
// The savings goal count is carried for reporting and does not move the score.
func Score(s Summary, obligationsTotal, income decimal.Decimal, savingsGoalsCount int) int {
	score := 100

	switch {
	case s.SpendingRate > 100:
		score -= 30
	case s.SpendingRate > 80:
		score -= 15
	}

	obligationRate := Percent(obligationsTotal, income)
	switch {
	case obligationRate > 60:
		score -= 25
	case obligationRate > 40:
		score -= 15
	}

	switch {
	case s.SavingsRate > 80:
		score += 10
	case s.SavingsRate > 50:
		score += 5
	}

	return min(max(score, 0), 100)
}

// Label maps a score to its qualitative label
func Label(score int) string {
	switch {
	case score >= 80:
		return LabelExcellent
	case score >= 60:
		return LabelGood
	case score >= 40:
		return LabelFair
	default:
		return LabelNeedsAttention
	}
}

// Assess scores the summary and attaches its label
func Assess(s Summary, obligationsTotal, income decimal.Decimal, savingsGoalsCount int) Health {
	score := Score(s, obligationsTotal, income, savingsGoalsCount)
	return Health{
		Score:          score,
		Label:          Label(score),
		ObligationRate: Percent(obligationsTotal, income),
		SavingsGoals:   savingsGoalsCount,
	}
}
