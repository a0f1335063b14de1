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

const emiColumns = `id, user_id, name, total_amount, monthly_amount, remaining_amount, interest_rate,
	start_date, end_date, due_day, category, is_active, last_materialized_period, notes, created_at, updated_at`

// CreateEMI inserts a new EMI
func (r *Repository) CreateEMI(ctx context.Context, e *models.EMI) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	now := time.Now().UTC()
	e.CreatedAt, e.UpdatedAt = now, now
	e.StartDate, e.EndDate = models.DateOnly(e.StartDate), models.DateOnly(e.EndDate)

	query := `
		INSERT INTO emis (id, user_id, name, total_amount, monthly_amount, remaining_amount, interest_rate,
			start_date, end_date, due_day, category, is_active, last_materialized_period, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.ExecContext(ctx, query, e.ID, e.UserID, e.Name, e.TotalAmount, e.MonthlyAmount, e.RemainingAmount,
		e.InterestRate, e.StartDate, e.EndDate, e.DueDayOfMonth, e.Category, e.IsActive, e.LastMaterializedPeriod,
		nullString(e.Notes), e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create EMI: %w", err)
	}
	return nil
}

// ListEMIs returns the user's EMIs, newest first
func (r *Repository) ListEMIs(ctx context.Context, userID uuid.UUID) ([]models.EMI, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+emiColumns+` FROM emis WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list EMIs: %w", err)
	}
	defer rows.Close()

	emis := make([]models.EMI, 0)
	for rows.Next() {
		e, err := scanEMI(rows)
		if err != nil {
			return nil, err
		}
		emis = append(emis, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list EMIs: %w", err)
	}
	return emis, nil
}

// FindEMI retrieves one of the user's EMIs
func (r *Repository) FindEMI(ctx context.Context, userID, id uuid.UUID) (*models.EMI, error) {
	return scanEMI(r.q.QueryRowContext(ctx,
		`SELECT `+emiColumns+` FROM emis WHERE id = $1 AND user_id = $2`, id, userID))
}

// UpdateEMI saves an EMI
func (r *Repository) UpdateEMI(ctx context.Context, e *models.EMI) error {
	e.UpdatedAt = time.Now().UTC()
	e.StartDate, e.EndDate = models.DateOnly(e.StartDate), models.DateOnly(e.EndDate)
	query := `
		UPDATE emis
		SET name = $1, total_amount = $2, monthly_amount = $3, remaining_amount = $4, interest_rate = $5,
			start_date = $6, end_date = $7, due_day = $8, category = $9, is_active = $10, notes = $11, updated_at = $12
		WHERE id = $13 AND user_id = $14`
	res, err := r.q.ExecContext(ctx, query, e.Name, e.TotalAmount, e.MonthlyAmount, e.RemainingAmount, e.InterestRate,
		e.StartDate, e.EndDate, e.DueDayOfMonth, e.Category, e.IsActive, nullString(e.Notes), e.UpdatedAt, e.ID, e.UserID)
	return expectOne(res, err, "update EMI")
}

// MarkEMIMaterialized records the month for which the EMI's payment was materialized
func (r *Repository) MarkEMIMaterialized(ctx context.Context, userID, id uuid.UUID, period string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE emis SET last_materialized_period = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`,
		period, time.Now().UTC(), id, userID)
	return expectOne(res, err, "mark EMI materialized")
}

// DeleteEMI removes one of the user's EMIs
func (r *Repository) DeleteEMI(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM emis WHERE id = $1 AND user_id = $2`, id, userID)
	return expectOne(res, err, "delete EMI")
}

func scanEMI(row rowScanner) (*models.EMI, error) {
	e := &models.EMI{}
	var notes sql.NullString
	err := row.Scan(&e.ID, &e.UserID, &e.Name, &e.TotalAmount, &e.MonthlyAmount, &e.RemainingAmount, &e.InterestRate,
		&e.StartDate, &e.EndDate, &e.DueDayOfMonth, &e.Category, &e.IsActive, &e.LastMaterializedPeriod,
		&notes, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan EMI: %w", err)
	}
	e.Notes = notes.String
	return e, nil
}
