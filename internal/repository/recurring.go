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

const recurringColumns = `id, user_id, name, amount, category, frequency, start_date, end_date, day_of_month,
	day_of_week, is_active, last_materialized_period, notes, created_at, updated_at`

// CreateRecurring inserts a new recurring expense
func (r *Repository) CreateRecurring(ctx context.Context, rec *models.RecurringExpense) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	now := time.Now().UTC()
	rec.CreatedAt, rec.UpdatedAt = now, now
	normalizeRecurringDates(rec)

	query := `
		INSERT INTO recurring_expenses (id, user_id, name, amount, category, frequency, start_date, end_date,
			day_of_month, day_of_week, is_active, last_materialized_period, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.ExecContext(ctx, query, rec.ID, rec.UserID, rec.Name, rec.Amount, rec.Category, string(rec.Frequency),
		rec.StartDate, rec.EndDate, rec.DayOfMonth, rec.DayOfWeek, rec.IsActive, rec.LastMaterializedPeriod,
		nullString(rec.Notes), rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create recurring expense: %w", err)
	}
	return nil
}

// ListRecurring returns the user's recurring expenses, newest first
func (r *Repository) ListRecurring(ctx context.Context, userID uuid.UUID) ([]models.RecurringExpense, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+recurringColumns+` FROM recurring_expenses WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}
	defer rows.Close()

	list := make([]models.RecurringExpense, 0)
	for rows.Next() {
		rec, err := scanRecurring(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}
	return list, nil
}

// FindRecurring retrieves one of the user's recurring expenses
func (r *Repository) FindRecurring(ctx context.Context, userID, id uuid.UUID) (*models.RecurringExpense, error) {
	return scanRecurring(r.q.QueryRowContext(ctx,
		`SELECT `+recurringColumns+` FROM recurring_expenses WHERE id = $1 AND user_id = $2`, id, userID))
}

// UpdateRecurring saves a recurring expense
func (r *Repository) UpdateRecurring(ctx context.Context, rec *models.RecurringExpense) error {
	rec.UpdatedAt = time.Now().UTC()
	normalizeRecurringDates(rec)
	query := `
		UPDATE recurring_expenses
		SET name = $1, amount = $2, category = $3, frequency = $4, start_date = $5, end_date = $6,
			day_of_month = $7, day_of_week = $8, is_active = $9, notes = $10, updated_at = $11
		WHERE id = $12 AND user_id = $13`
	res, err := r.q.ExecContext(ctx, query, rec.Name, rec.Amount, rec.Category, string(rec.Frequency), rec.StartDate,
		rec.EndDate, rec.DayOfMonth, rec.DayOfWeek, rec.IsActive, nullString(rec.Notes), rec.UpdatedAt, rec.ID, rec.UserID)
	return expectOne(res, err, "update recurring expense")
}

// MarkRecurringMaterialized records the month for which the charge was materialized
func (r *Repository) MarkRecurringMaterialized(ctx context.Context, userID, id uuid.UUID, period string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE recurring_expenses SET last_materialized_period = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`,
		period, time.Now().UTC(), id, userID)
	return expectOne(res, err, "mark recurring expense materialized")
}

// DeleteRecurring removes one of the user's recurring expenses
func (r *Repository) DeleteRecurring(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM recurring_expenses WHERE id = $1 AND user_id = $2`, id, userID)
	return expectOne(res, err, "delete recurring expense")
}

func normalizeRecurringDates(rec *models.RecurringExpense) {
	rec.StartDate = models.DateOnly(rec.StartDate)
	if rec.EndDate != nil {
		end := models.DateOnly(*rec.EndDate)
		rec.EndDate = &end
	}
}

func scanRecurring(row rowScanner) (*models.RecurringExpense, error) {
	rec := &models.RecurringExpense{}
	var frequency string
	var notes sql.NullString
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Name, &rec.Amount, &rec.Category, &frequency, &rec.StartDate,
		&rec.EndDate, &rec.DayOfMonth, &rec.DayOfWeek, &rec.IsActive, &rec.LastMaterializedPeriod, &notes,
		&rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan recurring expense: %w", err)
	}
	rec.Frequency = models.Frequency(frequency)
	rec.Notes = notes.String
	return rec, nil
}
