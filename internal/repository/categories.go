package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/google/uuid"
)

// CreateCategory inserts a custom category; names are unique per user
func (r *Repository) CreateCategory(ctx context.Context, c *models.CustomCategory) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now

	query := `
		INSERT INTO custom_categories (id, user_id, name, icon, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.ExecContext(ctx, query, c.ID, c.UserID, c.Name, c.Icon, c.Color, c.CreatedAt, c.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// ListCategories returns the user's custom categories, newest first
func (r *Repository) ListCategories(ctx context.Context, userID uuid.UUID) ([]models.CustomCategory, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, name, icon, color, created_at, updated_at
		FROM custom_categories WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.CustomCategory, 0)
	for rows.Next() {
		var c models.CustomCategory
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Icon, &c.Color, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// DeleteCategory removes a custom category. Expenses keep the category name.
func (r *Repository) DeleteCategory(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM custom_categories WHERE id = $1 AND user_id = $2`, id, userID)
	return expectOne(res, err, "delete category")
}
