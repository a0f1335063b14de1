package finance

import (
	"testing"
	"time"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func emi(monthly string, end time.Time, active bool) models.EMI {
	return models.EMI{
		ID:            uuid.New(),
		Name:          "Car Loan",
		MonthlyAmount: dec(monthly),
		StartDate:     day(2024, 1, 1),
		EndDate:       end,
		DueDayOfMonth: 5,
		IsActive:      active,
	}
}

func recurring(amount string, freq models.Frequency, end *time.Time, active bool) models.RecurringExpense {
	return models.RecurringExpense{
		ID:        uuid.New(),
		Name:      "Netflix",
		Amount:    dec(amount),
		Category:  "entertainment",
		Frequency: freq,
		StartDate: day(2024, 1, 10),
		EndDate:   end,
		IsActive:  active,
	}
}

func TestActiveEMIs_EndDateBoundary(t *testing.T) {
	ref := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	endsToday := emi("500", day(2025, 6, 15), true)
	endedYesterday := emi("300", day(2025, 6, 14), true)
	disabled := emi("200", day(2026, 1, 1), false)

	active := ActiveEMIs([]models.EMI{endsToday, endedYesterday, disabled}, ref)
	assert.Equal(t, []models.EMI{endsToday}, active)

	nextDay := ref.AddDate(0, 0, 1)
	assert.Empty(t, ActiveEMIs([]models.EMI{endsToday}, nextDay))
}

func TestActiveRecurring(t *testing.T) {
	ref := day(2025, 6, 15)
	past := day(2025, 6, 1)
	same := day(2025, 6, 15)

	open := recurring("15", models.FrequencyMonthly, nil, true)
	endsToday := recurring("20", models.FrequencyMonthly, &same, true)
	ended := recurring("25", models.FrequencyMonthly, &past, true)
	paused := recurring("30", models.FrequencyMonthly, nil, false)

	active := ActiveRecurring([]models.RecurringExpense{open, endsToday, ended, paused}, ref)
	assert.Equal(t, []models.RecurringExpense{open, endsToday}, active)
}

func TestMonthlyObligationTotal(t *testing.T) {
	ref := day(2025, 6, 15)
	emis := []models.EMI{
		emi("500", day(2026, 1, 1), true),
		emi("250.50", day(2025, 6, 15), true),
		emi("999", day(2025, 1, 1), true),
	}
	list := []models.RecurringExpense{
		recurring("15.99", models.FrequencyMonthly, nil, true),
		recurring("5", models.FrequencyWeekly, nil, true),
		recurring("120", models.FrequencyYearly, nil, true),
		recurring("3", models.FrequencyDaily, nil, true),
	}

	assertDecimal(t, "766.49", MonthlyObligationTotal(emis, list, ref))
	assertDecimal(t, "0", MonthlyObligationTotal(nil, nil, ref))

	b := Breakdown(emis, list, ref)
	assertDecimal(t, "750.50", b.EMITotal)
	assertDecimal(t, "15.99", b.RecurringTotal)
	assertDecimal(t, "766.49", b.Total)
	assert.Equal(t, 2, b.ActiveEMIs)
	assert.Equal(t, 4, b.ActiveRecurring)
}

func TestObligationTotal_Schedules(t *testing.T) {
	ref := day(2025, 6, 15)
	schedules := Schedules(
		[]models.EMI{emi("100", day(2026, 1, 1), true)},
		[]models.RecurringExpense{recurring("40", models.FrequencyMonthly, nil, true)},
	)
	assert.Len(t, schedules, 2)
	assertDecimal(t, "140", ObligationTotal(schedules, ref))
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 12, MonthsBetween(day(2025, 1, 1), day(2026, 1, 1)))
	assert.Equal(t, 3, MonthsBetween(day(2025, 11, 15), day(2026, 2, 15)))
	assert.Equal(t, 0, MonthsBetween(day(2025, 5, 1), day(2025, 5, 31)))
	assert.Equal(t, 0, MonthsBetween(day(2026, 1, 1), day(2025, 1, 1)))

	assertDecimal(t, "6000", EMITotal(dec("500"), day(2025, 1, 1), day(2026, 1, 1)))
}

func TestMonthsRemainingAndProgress(t *testing.T) {
	loan := emi("500", day(2025, 12, 31), true)
	loan.StartDate = day(2025, 1, 1)

	assert.Equal(t, 0, MonthsRemaining(loan, day(2026, 1, 5)))
	assert.Equal(t, 1, MonthsRemaining(loan, day(2025, 12, 1)))
	assert.Equal(t, 2, MonthsRemaining(loan, day(2025, 11, 1)))

	assert.InDelta(t, 0, EMIProgress(loan, day(2024, 6, 1)), 0.0001)
	assert.InDelta(t, 100, EMIProgress(loan, day(2026, 6, 1)), 0.0001)
	assert.InDelta(t, 50, EMIProgress(loan, day(2025, 7, 2)), 0.5)
}
