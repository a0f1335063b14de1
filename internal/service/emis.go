package service

import (
	"context"
	"slices"
	"strings"

	"github.com/Dan9191/finance-tracker/internal/finance"
	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EMIInput creates or updates an EMI; nil fields are left unchanged.
// The total amount is always derived from the monthly amount and the dates.
// Clear may name interest_rate to remove a recorded rate.
type EMIInput struct {
	Name            *string          `json:"name"`
	MonthlyAmount   *decimal.Decimal `json:"monthly_amount"`
	RemainingAmount *decimal.Decimal `json:"remaining_amount"`
	InterestRate    *decimal.Decimal `json:"interest_rate"`
	StartDate       *Date            `json:"start_date"`
	EndDate         *Date            `json:"end_date"`
	DueDay          *int             `json:"due_day"`
	Category        *string          `json:"category"`
	IsActive        *bool            `json:"is_active"`
	Notes           *string          `json:"notes"`
	Clear           []string         `json:"clear"`
}

const clearInterestRate = "interest_rate"

func (in EMIInput) apply(e *models.EMI) {
	if in.Name != nil {
		e.Name = strings.TrimSpace(*in.Name)
	}
	if in.MonthlyAmount != nil {
		e.MonthlyAmount = *in.MonthlyAmount
	}
	if in.RemainingAmount != nil {
		e.RemainingAmount = *in.RemainingAmount
	}
	if in.InterestRate != nil {
		e.InterestRate = decimal.NewNullDecimal(*in.InterestRate)
	}
	if slices.Contains(in.Clear, clearInterestRate) {
		e.InterestRate = decimal.NullDecimal{}
	}
	if in.StartDate != nil && !in.StartDate.IsZero() {
		e.StartDate = in.StartDate.Time
	}
	if in.EndDate != nil && !in.EndDate.IsZero() {
		e.EndDate = in.EndDate.Time
	}
	if in.DueDay != nil {
		e.DueDayOfMonth = *in.DueDay
	}
	if in.Category != nil {
		e.Category = strings.TrimSpace(*in.Category)
	}
	if in.IsActive != nil {
		e.IsActive = *in.IsActive
	}
	if in.Notes != nil {
		e.Notes = *in.Notes
	}
	if e.Category == "" {
		e.Category = models.DefaultEMICategory
	}
	e.TotalAmount = finance.EMITotal(e.MonthlyAmount, e.StartDate, e.EndDate)
}

func validateEMI(e *models.EMI) error {
	var v validator
	v.text("name", e.Name)
	v.check(e.MonthlyAmount.IsPositive(), "monthly amount must be positive")
	v.check(e.MonthlyAmount.LessThanOrEqual(maxAmount), "monthly amount cannot exceed %s", maxAmount.String())
	v.check(!e.RemainingAmount.IsNegative(), "remaining amount cannot be negative")
	if e.InterestRate.Valid {
		v.between("interest rate", e.InterestRate.Decimal, decimal.Zero, maxInterestRate)
	}
	v.check(!e.EndDate.IsZero(), "end date is required")
	v.check(!e.EndDate.Before(e.StartDate), "end date must not be before start date")
	v.check(e.DueDayOfMonth >= 1 && e.DueDayOfMonth <= 31, "due day must be between 1 and 31")
	return v.err()
}

// CreateEMI records a new EMI. Remaining amount defaults to the derived total.
func (s *Service) CreateEMI(ctx context.Context, in EMIInput) (*models.EMI, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkClear(in.Clear, clearInterestRate); err != nil {
		return nil, err
	}

	e := &models.EMI{UserID: userID, StartDate: s.today(), IsActive: true}
	in.apply(e)
	if in.RemainingAmount == nil {
		e.RemainingAmount = e.TotalAmount
	}
	if err := validateEMI(e); err != nil {
		return nil, err
	}
	if err := s.repo.CreateEMI(ctx, e); err != nil {
		return nil, err
	}

	s.log.WithField("user_id", userID).Infof("EMI created: %s (%s x %d)", e.Name, e.MonthlyAmount,
		finance.MonthsBetween(e.StartDate, e.EndDate))
	return e, nil
}

// ListEMIs returns the caller's EMIs
func (s *Service) ListEMIs(ctx context.Context) ([]models.EMI, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListEMIs(ctx, userID)
}

// UpdateEMI changes one of the caller's EMIs
func (s *Service) UpdateEMI(ctx context.Context, id uuid.UUID, in EMIInput) (*models.EMI, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkClear(in.Clear, clearInterestRate); err != nil {
		return nil, err
	}
	e, err := s.repo.FindEMI(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	in.apply(e)
	if err := validateEMI(e); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateEMI(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEMI removes one of the caller's EMIs
func (s *Service) DeleteEMI(ctx context.Context, id uuid.UUID) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}
	return s.repo.DeleteEMI(ctx, userID, id)
}
