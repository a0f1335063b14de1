package service

import (
	"context"
	"time"

	"github.com/Dan9191/finance-tracker/internal/finance"
	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// topCategoryLimit is how many categories the dashboard highlights
const topCategoryLimit = 5

// Dashboard is every derived figure for one period
type Dashboard struct {
	Period          finance.PeriodKind       `json:"period"`
	ReferenceDate   time.Time                `json:"reference_date"`
	Currency        string                   `json:"currency"`
	MonthlyIncome   decimal.Decimal          `json:"monthly_income"`
	Summary         finance.Summary          `json:"summary"`
	Obligations     finance.Obligations      `json:"obligations"`
	NeedsWants      finance.NeedsWants       `json:"needs_wants"`
	Categories      []finance.CategoryShare  `json:"categories"`
	TopCategories   []finance.CategoryShare  `json:"top_categories"`
	Health          finance.Health           `json:"health"`
	Pace            finance.Pace             `json:"pace"`
	MonthOverMonth  finance.MonthComparison  `json:"month_over_month"`
	HighestExpense  *models.Expense          `json:"highest_expense"`
	Daily           []finance.DayTotal       `json:"daily"`
	Recommendations []finance.Recommendation `json:"recommendations"`
	Savings         finance.SavingsProgress  `json:"savings"`
	Pending         finance.PendingSet       `json:"pending"`
	Loans           []LoanStatus             `json:"loans"`
}

// LoanStatus tracks how far an active EMI has progressed
type LoanStatus struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	MonthlyAmount   decimal.Decimal `json:"monthly_amount"`
	MonthsRemaining int             `json:"months_remaining"`
	Progress        float64         `json:"progress"`
}

// Dashboard loads the caller's records and runs them through the finance engine for
// the period of kind containing ref
func (s *Service) Dashboard(ctx context.Context, kind finance.PeriodKind, ref time.Time) (*Dashboard, error) {
	user, err := s.Me(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repo.ListExpenses(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	emis, err := s.repo.ListEMIs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	recurring, err := s.repo.ListRecurring(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	goals, err := s.repo.ListSavingsGoals(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	ref = finance.TruncateDay(ref)
	income := user.MonthlyIncome
	window := finance.WindowFor(ref, kind)
	obligations := finance.Breakdown(emis, recurring, ref)
	summary := finance.Summarize(expenses, income, obligations.Total, window)
	periodExpenses := finance.FilterByWindow(expenses, window)

	month := finance.WindowFor(ref, finance.PeriodMonth)
	monthExpenses := finance.FilterByWindow(expenses, month)
	monthToDate := finance.FilterByWindow(monthExpenses, finance.Window{Start: month.Start, End: ref})

	d := &Dashboard{
		Period:          finance.ParsePeriodKind(string(kind)),
		ReferenceDate:   ref,
		Currency:        user.Currency,
		MonthlyIncome:   income,
		Summary:         summary,
		Obligations:     obligations,
		NeedsWants:      finance.SplitNeedsWants(periodExpenses, income),
		Categories:      finance.CategoryBreakdown(periodExpenses),
		TopCategories:   finance.TopCategories(periodExpenses, topCategoryLimit),
		Health:          finance.Assess(summary, obligations.Total, income, len(goals)),
		Pace:            finance.MonthPace(finance.TotalAmount(monthToDate), ref),
		MonthOverMonth:  finance.CompareMonths(expenses, ref),
		HighestExpense:  finance.HighestExpense(periodExpenses),
		Daily:           finance.DailyTotals(periodExpenses, window),
		Recommendations: finance.Recommendations(monthExpenses, income, ref),
		Savings:         finance.Savings(goals),
		Pending:         finance.Pending(finance.Schedules(emis, recurring), expenses, ref),
		Loans:           make([]LoanStatus, 0),
	}
	for _, e := range finance.ActiveEMIs(emis, ref) {
		d.Loans = append(d.Loans, LoanStatus{
			ID:              e.ID,
			Name:            e.Name,
			MonthlyAmount:   e.MonthlyAmount,
			MonthsRemaining: finance.MonthsRemaining(e, ref),
			Progress:        finance.EMIProgress(e, ref),
		})
	}
	return d, nil
}
