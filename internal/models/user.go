package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is assigned to new users
const DefaultCurrency = "USD"

// User represents a user in the system. MonthlyIncome and Currency form the
// financial profile every calculation reads.
type User struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	PasswordHash       string          `json:"-"` // Not serialized
	MonthlyIncome      decimal.Decimal `json:"monthly_income"`
	Currency           string          `json:"currency"`
	OnboardingComplete bool            `json:"onboarding_complete"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

