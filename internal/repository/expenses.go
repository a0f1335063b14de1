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

const expenseColumns = `id, user_id, description, amount, category, date, payment_method, notes,
	source_kind, source_id, created_at, updated_at`

// CreateExpense inserts a new expense
func (r *Repository) CreateExpense(ctx context.Context, e *models.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	now := time.Now().UTC()
	e.CreatedAt, e.UpdatedAt = now, now
	e.Date = models.DateOnly(e.Date)

	query := `
		INSERT INTO expenses (id, user_id, description, amount, category, date, payment_method, notes,
			source_kind, source_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.ExecContext(ctx, query, e.ID, e.UserID, e.Description, e.Amount, e.Category, e.Date,
		e.PaymentMethod, nullString(e.Notes), string(e.SourceKind), e.SourceID, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// ListExpenses returns all of the user's expenses, newest first
func (r *Repository) ListExpenses(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1 ORDER BY date DESC, created_at DESC`
	return r.queryExpenses(ctx, query, userID)
}

// ListExpensesBetween returns the user's expenses dated within [start, end], newest first
func (r *Repository) ListExpensesBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC, created_at DESC`
	return r.queryExpenses(ctx, query, userID, models.DateOnly(start), models.DateOnly(end))
}

// FindExpense retrieves one of the user's expenses
func (r *Repository) FindExpense(ctx context.Context, userID, id uuid.UUID) (*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1 AND user_id = $2`
	return scanExpense(r.q.QueryRowContext(ctx, query, id, userID))
}

// UpdateExpense saves the editable fields of an expense
func (r *Repository) UpdateExpense(ctx context.Context, e *models.Expense) error {
	e.UpdatedAt = time.Now().UTC()
	e.Date = models.DateOnly(e.Date)
	query := `
		UPDATE expenses
		SET description = $1, amount = $2, category = $3, date = $4, payment_method = $5, notes = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9`
	res, err := r.q.ExecContext(ctx, query, e.Description, e.Amount, e.Category, e.Date, e.PaymentMethod,
		nullString(e.Notes), e.UpdatedAt, e.ID, e.UserID)
	return expectOne(res, err, "update expense")
}

// DeleteExpense removes one of the user's expenses
func (r *Repository) DeleteExpense(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
	return expectOne(res, err, "delete expense")
}

func (r *Repository) queryExpenses(ctx context.Context, query string, args ...any) ([]models.Expense, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func scanExpense(row rowScanner) (*models.Expense, error) {
	e := &models.Expense{}
	var notes sql.NullString
	var kind string
	err := row.Scan(&e.ID, &e.UserID, &e.Description, &e.Amount, &e.Category, &e.Date, &e.PaymentMethod,
		&notes, &kind, &e.SourceID, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan expense: %w", err)
	}
	e.Notes = notes.String
	e.SourceKind = models.SourceKind(kind)
	return e, nil
}
