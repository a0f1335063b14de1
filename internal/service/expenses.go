package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseInput creates or updates an expense; nil fields are left unchanged
type ExpenseInput struct {
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	Category      *string          `json:"category"`
	Date          *Date            `json:"date"`
	PaymentMethod *string          `json:"payment_method"`
	Notes         *string          `json:"notes"`
}

func (in ExpenseInput) apply(e *models.Expense) {
	if in.Description != nil {
		e.Description = strings.TrimSpace(*in.Description)
	}
	if in.Amount != nil {
		e.Amount = *in.Amount
	}
	if in.Category != nil {
		e.Category = strings.TrimSpace(*in.Category)
	}
	if in.Date != nil && !in.Date.IsZero() {
		e.Date = in.Date.Time
	}
	if in.PaymentMethod != nil {
		e.PaymentMethod = *in.PaymentMethod
	}
	if in.Notes != nil {
		e.Notes = *in.Notes
	}
}

func validateExpense(e *models.Expense) error {
	var v validator
	v.text("description", e.Description)
	v.between("amount", e.Amount, minExpenseAmount, maxAmount)
	v.check(e.Category != "", "category is required")
	v.check(slices.Contains(models.PaymentMethods, e.PaymentMethod), "payment method must be one of %s",
		strings.Join(models.PaymentMethods, ", "))
	return v.err()
}

// CreateExpense records a new expense dated today unless a date is given
func (s *Service) CreateExpense(ctx context.Context, in ExpenseInput) (*models.Expense, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	e := &models.Expense{UserID: userID, Date: s.today(), PaymentMethod: models.PaymentCash}
	in.apply(e)
	if err := validateExpense(e); err != nil {
		return nil, err
	}
	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	s.log.WithField("user_id", userID).Debugf("Expense created: %s", e.ID)
	return e, nil
}

// ListExpenses returns all of the caller's expenses, newest first
func (s *Service) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListExpenses(ctx, userID)
}

// ListExpensesBetween returns the caller's expenses dated from start to end inclusive
func (s *Service) ListExpensesBetween(ctx context.Context, start, end time.Time) ([]models.Expense, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	var v validator
	v.check(!end.Before(start), "end date must not be before start date")
	if err := v.err(); err != nil {
		return nil, err
	}
	return s.repo.ListExpensesBetween(ctx, userID, start, end)
}

// UpdateExpense changes one of the caller's expenses
func (s *Service) UpdateExpense(ctx context.Context, id uuid.UUID, in ExpenseInput) (*models.Expense, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.repo.FindExpense(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	in.apply(e)
	if err := validateExpense(e); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateExpense(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteExpense removes one of the caller's expenses
func (s *Service) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}
	return s.repo.DeleteExpense(ctx, userID, id)
}
