package finance

import (
	"time"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pace describes month-to-date spending speed
type Pace struct {
	DaysElapsed      int             `json:"days_elapsed"`
	DaysInMonth      int             `json:"days_in_month"`
	DailyAverage     decimal.Decimal `json:"daily_average"`
	ProjectedMonthly decimal.Decimal `json:"projected_monthly"`
}

// DailyAverage divides total over days, or returns zero when days is not positive
func DailyAverage(total decimal.Decimal, days int) decimal.Decimal {
	if days <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(days)))
}

// MonthPace projects monthToDate spending to the end of ref's month
func MonthPace(monthToDate decimal.Decimal, ref time.Time) Pace {
	elapsed := ref.Day()
	days := DaysInMonth(ref)
	avg := DailyAverage(monthToDate, elapsed)
	return Pace{
		DaysElapsed:      elapsed,
		DaysInMonth:      days,
		DailyAverage:     avg,
		ProjectedMonthly: avg.Mul(decimal.NewFromInt(int64(days))),
	}
}

// Rule is a 50/30/20 allocation of income
type Rule struct {
	Needs   decimal.Decimal `json:"needs"`
	Wants   decimal.Decimal `json:"wants"`
	Savings decimal.Decimal `json:"savings"`
}

// BudgetRule splits income into 50% needs, 30% wants and 20% savings
func BudgetRule(income decimal.Decimal) Rule {
	return Rule{
		Needs:   income.Mul(decimal.NewFromFloat(0.5)),
		Wants:   income.Mul(decimal.NewFromFloat(0.3)),
		Savings: income.Mul(decimal.NewFromFloat(0.2)),
	}
}

// Recommendation kinds
const (
	RecommendCurrentPace  = "current_pace"
	RecommendRule503020   = "50_30_20"
	RecommendConservative = "conservative"
)

// minExpensesForPace is how many period expenses are needed before the pace
// based budget is offered.
const minExpensesForPace = 5

// Recommendation is a suggested monthly budget
type Recommendation struct {
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Breakdown *Rule           `json:"breakdown,omitempty"`
}

// Recommendations proposes monthly budgets from the current month's expenses and income
func Recommendations(periodExpenses []models.Expense, income decimal.Decimal, ref time.Time) []Recommendation {
	recs := make([]Recommendation, 0, 3)

	if len(periodExpenses) >= minExpensesForPace {
		pace := MonthPace(TotalAmount(periodExpenses), ref)
		recs = append(recs, Recommendation{
			Kind:   RecommendCurrentPace,
			Amount: pace.ProjectedMonthly.Mul(decimal.NewFromFloat(1.1)).Ceil(),
		})
	}

	if income.IsPositive() {
		rule := BudgetRule(income)
		recs = append(recs,
			Recommendation{
				Kind:      RecommendRule503020,
				Amount:    rule.Needs.Add(rule.Wants).Round(0),
				Breakdown: &rule,
			},
			Recommendation{
				Kind:   RecommendConservative,
				Amount: income.Mul(decimal.NewFromFloat(0.8)).Round(0),
			},
		)
	}
	return recs
}

// SavingsProgress aggregates savings goals
type SavingsProgress struct {
	Goals     int             `json:"goals"`
	Completed int             `json:"completed"`
	Target    decimal.Decimal `json:"target"`
	Current   decimal.Decimal `json:"current"`
	Percent   float64         `json:"percent"`
	ByGoal    []GoalStatus    `json:"by_goal"`
}

// GoalStatus is one goal's progress
type GoalStatus struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Remaining decimal.Decimal `json:"remaining"`
	Percent   float64         `json:"percent"`
	Completed bool            `json:"completed"`
}

// GoalProgress is the percentage of a goal's target reached so far
func GoalProgress(goal models.SavingsGoal) float64 {
	return Percent(goal.CurrentAmount, goal.TargetAmount)
}

// Savings totals targets and current amounts across goals
func Savings(goals []models.SavingsGoal) SavingsProgress {
	p := SavingsProgress{
		Goals:   len(goals),
		Target:  decimal.Zero,
		Current: decimal.Zero,
		ByGoal:  make([]GoalStatus, 0, len(goals)),
	}
	for _, g := range goals {
		p.Target = p.Target.Add(g.TargetAmount)
		p.Current = p.Current.Add(g.CurrentAmount)
		done := g.IsCompleted || (g.TargetAmount.IsPositive() && g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount))
		if done {
			p.Completed++
		}
		p.ByGoal = append(p.ByGoal, GoalStatus{
			ID:        g.ID,
			Name:      g.Name,
			Remaining: decimal.Max(g.TargetAmount.Sub(g.CurrentAmount), decimal.Zero),
			Percent:   GoalProgress(g),
			Completed: done,
		})
	}
	p.Percent = Percent(p.Current, p.Target)
	return p
}
