package service

import (
	"context"
	"strings"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoalInput creates or updates a savings goal; nil fields are left unchanged
// and an empty deadline removes it
type SavingsGoalInput struct {
	Name          *string          `json:"name"`
	TargetAmount  *decimal.Decimal `json:"target_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount"`
	Deadline      *Date            `json:"deadline"`
	Description   *string          `json:"description"`
	IsCompleted   *bool            `json:"is_completed"`
}

func (in SavingsGoalInput) apply(g *models.SavingsGoal) {
	if in.Name != nil {
		g.Name = strings.TrimSpace(*in.Name)
	}
	if in.TargetAmount != nil {
		g.TargetAmount = *in.TargetAmount
	}
	if in.CurrentAmount != nil {
		g.CurrentAmount = *in.CurrentAmount
	}
	optionalDate(in.Deadline, &g.Deadline)
	if in.Description != nil {
		g.Description = *in.Description
	}
	if in.IsCompleted != nil {
		g.IsCompleted = *in.IsCompleted
	}
}

func validateSavingsGoal(g *models.SavingsGoal) error {
	var v validator
	v.text("name", g.Name)
	v.check(g.TargetAmount.IsPositive(), "target amount must be positive")
	v.check(g.TargetAmount.LessThanOrEqual(maxIncome), "target amount cannot exceed %s", maxIncome.String())
	v.between("current amount", g.CurrentAmount, decimal.Zero, maxIncome)
	v.check(len([]rune(g.Description)) <= maxTextLength, "description cannot exceed %d characters", maxTextLength)
	return v.err()
}

// CreateSavingsGoal records a new savings goal
func (s *Service) CreateSavingsGoal(ctx context.Context, in SavingsGoalInput) (*models.SavingsGoal, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	g := &models.SavingsGoal{UserID: userID, CurrentAmount: decimal.Zero}
	in.apply(g)
	if err := validateSavingsGoal(g); err != nil {
		return nil, err
	}
	if err := s.repo.CreateSavingsGoal(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// ListSavingsGoals returns the caller's savings goals
func (s *Service) ListSavingsGoals(ctx context.Context) ([]models.SavingsGoal, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListSavingsGoals(ctx, userID)
}

// UpdateSavingsGoal changes one of the caller's savings goals
func (s *Service) UpdateSavingsGoal(ctx context.Context, id uuid.UUID, in SavingsGoalInput) (*models.SavingsGoal, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	g, err := s.repo.FindSavingsGoal(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	in.apply(g)
	if err := validateSavingsGoal(g); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateSavingsGoal(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// DeleteSavingsGoal removes one of the caller's savings goals
func (s *Service) DeleteSavingsGoal(ctx context.Context, id uuid.UUID) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}
	return s.repo.DeleteSavingsGoal(ctx, userID, id)
}
