package finance

import (
	"testing"
	"time"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func expense(category, amount string, date time.Time) models.Expense {
	return models.Expense{
		ID:          uuid.New(),
		Description: category,
		Amount:      dec(amount),
		Category:    category,
		Date:        date,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}
