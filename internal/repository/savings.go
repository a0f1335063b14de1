package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/google/uuid"
)

const savingsColumns = `id, user_id, name, target_amount, current_amount, deadline, description, is_completed,
	created_at, updated_at`

// CreateSavingsGoal inserts a new savings goal
func (r *Repository) CreateSavingsGoal(ctx context.Context, g *models.SavingsGoal) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	now := time.Now().UTC()
	g.CreatedAt, g.UpdatedAt = now, now
	normalizeDeadline(g)

	query := `
		INSERT INTO savings_goals (id, user_id, name, target_amount, current_amount, deadline, description,
			is_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.ExecContext(ctx, query, g.ID, g.UserID, g.Name, g.TargetAmount, g.CurrentAmount, g.Deadline,
		nullString(g.Description), g.IsCompleted, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create savings goal: %w", err)
	}
	return nil
}

// ListSavingsGoals returns the user's savings goals, newest first
func (r *Repository) ListSavingsGoals(ctx context.Context, userID uuid.UUID) ([]models.SavingsGoal, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+savingsColumns+` FROM savings_goals WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}
	defer rows.Close()

	goals := make([]models.SavingsGoal, 0)
	for rows.Next() {
		g, err := scanSavingsGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}
	return goals, nil
}

// FindSavingsGoal retrieves one of the user's savings goals
func (r *Repository) FindSavingsGoal(ctx context.Context, userID, id uuid.UUID) (*models.SavingsGoal, error) {
	return scanSavingsGoal(r.q.QueryRowContext(ctx,
		`SELECT `+savingsColumns+` FROM savings_goals WHERE id = $1 AND user_id = $2`, id, userID))
}

// UpdateSavingsGoal saves a savings goal
func (r *Repository) UpdateSavingsGoal(ctx context.Context, g *models.SavingsGoal) error {
	g.UpdatedAt = time.Now().UTC()
	normalizeDeadline(g)
	query := `
		UPDATE savings_goals
		SET name = $1, target_amount = $2, current_amount = $3, deadline = $4, description = $5,
			is_completed = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9`
	res, err := r.q.ExecContext(ctx, query, g.Name, g.TargetAmount, g.CurrentAmount, g.Deadline,
		nullString(g.Description), g.IsCompleted, g.UpdatedAt, g.ID, g.UserID)
	return expectOne(res, err, "update savings goal")
}

// DeleteSavingsGoal removes one of the user's savings goals
func (r *Repository) DeleteSavingsGoal(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM savings_goals WHERE id = $1 AND user_id = $2`, id, userID)
	return expectOne(res, err, "delete savings goal")
}

func normalizeDeadline(g *models.SavingsGoal) {
	if g.Deadline != nil {
		d := models.DateOnly(*g.Deadline)
		g.Deadline = &d
	}
}

func scanSavingsGoal(row rowScanner) (*models.SavingsGoal, error) {
	g := &models.SavingsGoal{}
	var description sql.NullString
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline, &description,
		&g.IsCompleted, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan savings goal: %w", err)
	}
	g.Description = description.String
	return g, nil
}
