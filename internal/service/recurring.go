package service

import (
	"context"
	"slices"
	"strings"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringInput creates or updates a recurring expense; nil fields are left unchanged.
// An empty end date removes it, and Clear unsets day_of_month or day_of_week.
type RecurringInput struct {
	Name       *string           `json:"name"`
	Amount     *decimal.Decimal  `json:"amount"`
	Category   *string           `json:"category"`
	Frequency  *models.Frequency `json:"frequency"`
	StartDate  *Date             `json:"start_date"`
	EndDate    *Date             `json:"end_date"`
	DayOfMonth *int              `json:"day_of_month"`
	DayOfWeek  *int              `json:"day_of_week"`
	IsActive   *bool             `json:"is_active"`
	Notes      *string           `json:"notes"`
	Clear      []string          `json:"clear"`
}

const (
	clearDayOfMonth = "day_of_month"
	clearDayOfWeek  = "day_of_week"
)

func (in RecurringInput) apply(r *models.RecurringExpense) {
	if in.Name != nil {
		r.Name = strings.TrimSpace(*in.Name)
	}
	if in.Amount != nil {
		r.Amount = *in.Amount
	}
	if in.Category != nil {
		r.Category = strings.TrimSpace(*in.Category)
	}
	if in.Frequency != nil {
		r.Frequency = *in.Frequency
	}
	if in.StartDate != nil && !in.StartDate.IsZero() {
		r.StartDate = in.StartDate.Time
	}
	optionalDate(in.EndDate, &r.EndDate)
	if in.DayOfMonth != nil {
		r.DayOfMonth = in.DayOfMonth
	}
	if in.DayOfWeek != nil {
		r.DayOfWeek = in.DayOfWeek
	}
	if slices.Contains(in.Clear, clearDayOfMonth) {
		r.DayOfMonth = nil
	}
	if slices.Contains(in.Clear, clearDayOfWeek) {
		r.DayOfWeek = nil
	}
	if in.IsActive != nil {
		r.IsActive = *in.IsActive
	}
	if in.Notes != nil {
		r.Notes = *in.Notes
	}
}

func validateRecurring(r *models.RecurringExpense) error {
	var v validator
	v.text("name", r.Name)
	v.check(r.Amount.IsPositive(), "amount must be positive")
	v.check(r.Amount.LessThanOrEqual(maxAmount), "amount cannot exceed %s", maxAmount.String())
	v.check(r.Category != "", "category is required")
	v.check(r.Frequency.Valid(), "frequency must be daily, weekly, monthly or yearly")
	if r.EndDate != nil {
		v.check(!r.EndDate.Before(r.StartDate), "end date must not be before start date")
	}
	if r.DayOfMonth != nil {
		v.check(*r.DayOfMonth >= 1 && *r.DayOfMonth <= 31, "day of month must be between 1 and 31")
	}
	if r.DayOfWeek != nil {
		v.check(*r.DayOfWeek >= 0 && *r.DayOfWeek <= 6, "day of week must be between 0 and 6")
	}
	return v.err()
}

// CreateRecurring records a new recurring expense, monthly unless stated otherwise
func (s *Service) CreateRecurring(ctx context.Context, in RecurringInput) (*models.RecurringExpense, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkClear(in.Clear, clearDayOfMonth, clearDayOfWeek); err != nil {
		return nil, err
	}

	r := &models.RecurringExpense{
		UserID:    userID,
		Frequency: models.FrequencyMonthly,
		StartDate: s.today(),
		IsActive:  true,
	}
	in.apply(r)
	if err := validateRecurring(r); err != nil {
		return nil, err
	}
	if err := s.repo.CreateRecurring(ctx, r); err != nil {
		return nil, err
	}

	s.log.WithField("user_id", userID).Infof("Recurring expense created: %s (%s)", r.Name, r.Frequency)
	return r, nil
}

// ListRecurring returns the caller's recurring expenses
func (s *Service) ListRecurring(ctx context.Context) ([]models.RecurringExpense, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListRecurring(ctx, userID)
}

// UpdateRecurring changes one of the caller's recurring expenses
func (s *Service) UpdateRecurring(ctx context.Context, id uuid.UUID, in RecurringInput) (*models.RecurringExpense, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkClear(in.Clear, clearDayOfMonth, clearDayOfWeek); err != nil {
		return nil, err
	}
	r, err := s.repo.FindRecurring(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	in.apply(r)
	if err := validateRecurring(r); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateRecurring(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// DeleteRecurring removes one of the caller's recurring expenses
func (s *Service) DeleteRecurring(ctx context.Context, id uuid.UUID) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}
	return s.repo.DeleteRecurring(ctx, userID, id)
}
