package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Migration represents a database schema migration
type Migration struct {
	Version     int
	Description string
	Statements  []string
}

// The SQL below is shared by Postgres and SQLite, so it sticks to types both understand.
var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				email TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				monthly_income NUMERIC(14,2) NOT NULL DEFAULT 0,
				currency TEXT NOT NULL DEFAULT 'USD',
				onboarding_complete BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS expenses (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				description TEXT NOT NULL,
				amount NUMERIC(14,2) NOT NULL,
				category TEXT NOT NULL,
				date DATE NOT NULL,
				payment_method TEXT NOT NULL DEFAULT 'Cash',
				notes TEXT,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_expenses_user_date ON expenses(user_id, date)`,
			`CREATE INDEX IF NOT EXISTS idx_expenses_user_category ON expenses(user_id, category)`,
			`CREATE TABLE IF NOT EXISTS emis (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				name TEXT NOT NULL,
				total_amount NUMERIC(14,2) NOT NULL,
				monthly_amount NUMERIC(14,2) NOT NULL,
				remaining_amount NUMERIC(14,2) NOT NULL,
				interest_rate NUMERIC(5,2),
				start_date DATE NOT NULL,
				end_date DATE NOT NULL,
				due_day INTEGER NOT NULL,
				category TEXT NOT NULL DEFAULT 'EMI',
				is_active BOOLEAN NOT NULL DEFAULT TRUE,
				notes TEXT,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_emis_user_active ON emis(user_id, is_active)`,
			`CREATE TABLE IF NOT EXISTS recurring_expenses (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				name TEXT NOT NULL,
				amount NUMERIC(14,2) NOT NULL,
				category TEXT NOT NULL,
				frequency TEXT NOT NULL DEFAULT 'monthly',
				start_date DATE NOT NULL,
				end_date DATE,
				day_of_month INTEGER,
				day_of_week INTEGER,
				is_active BOOLEAN NOT NULL DEFAULT TRUE,
				notes TEXT,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_recurring_user_active ON recurring_expenses(user_id, is_active)`,
			`CREATE TABLE IF NOT EXISTS savings_goals (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				name TEXT NOT NULL,
				target_amount NUMERIC(14,2) NOT NULL,
				current_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
				deadline DATE,
				description TEXT,
				is_completed BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_savings_user ON savings_goals(user_id)`,
			`CREATE TABLE IF NOT EXISTS custom_categories (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				name TEXT NOT NULL,
				icon TEXT NOT NULL,
				color TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL,
				UNIQUE (user_id, name)
			)`,
		},
	},
	{
		Version:     2,
		Description: "Link materialized expenses to their definitions",
		Statements: []string{
			`ALTER TABLE expenses ADD COLUMN source_kind TEXT NOT NULL DEFAULT ''`,
			`ALTER TABLE expenses ADD COLUMN source_id TEXT`,
			`CREATE INDEX IF NOT EXISTS idx_expenses_source ON expenses(source_kind, source_id)`,
			`ALTER TABLE emis ADD COLUMN last_materialized_period TEXT NOT NULL DEFAULT ''`,
			`ALTER TABLE recurring_expenses ADD COLUMN last_materialized_period TEXT NOT NULL DEFAULT ''`,
		},
	},
}

// LatestVersion is the schema version the application expects
func LatestVersion() int {
	return migrations[len(migrations)-1].Version
}

// Migrate applies every migration newer than the current schema version
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		description TEXT NOT NULL,
		applied_at TIMESTAMP NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	current, err := r.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		err := r.InTx(ctx, func(tx *Repository) error {
			for _, stmt := range m.Statements {
				if _, err := tx.q.ExecContext(ctx, stmt); err != nil {
					return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
				}
			}
			_, err := tx.q.ExecContext(ctx,
				`INSERT INTO schema_migrations (version, description, applied_at) VALUES ($1, $2, $3)`,
				m.Version, m.Description, time.Now().UTC())
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", m.Version, err)
		}
	}
	return nil
}

// SchemaVersion returns the highest applied migration version, 0 for a fresh database
func (r *Repository) SchemaVersion(ctx context.Context) (int, error) {
	var version sql.NullInt64
	if err := r.q.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_migrations`).Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return int(version.Int64), nil
}
