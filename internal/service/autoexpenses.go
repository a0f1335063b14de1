package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/Dan9191/finance-tracker/internal/finance"
	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/Dan9191/finance-tracker/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// loadSchedules reads the user's definitions and the expenses of ref's month
func loadSchedules(ctx context.Context, repo *repository.Repository, userID uuid.UUID, ref time.Time) ([]models.Schedule, []models.Expense, error) {
	emis, err := repo.ListEMIs(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	recurring, err := repo.ListRecurring(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	month := finance.WindowFor(ref, finance.PeriodMonth)
	expenses, err := repo.ListExpensesBetween(ctx, userID, month.Start, month.End)
	if err != nil {
		return nil, nil, err
	}
	return finance.Schedules(emis, recurring), expenses, nil
}

// PendingAutoExpenses lists the EMI payments and recurring charges not yet recorded in ref's month
func (s *Service) PendingAutoExpenses(ctx context.Context, ref time.Time) (finance.PendingSet, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return finance.PendingSet{}, err
	}
	return s.PendingForUser(ctx, userID, ref)
}

// PendingForUser is PendingAutoExpenses for a known user, used by background jobs
func (s *Service) PendingForUser(ctx context.Context, userID uuid.UUID, ref time.Time) (finance.PendingSet, error) {
	defs, expenses, err := loadSchedules(ctx, s.repo, userID, ref)
	if err != nil {
		return finance.PendingSet{}, err
	}
	return finance.Pending(defs, expenses, finance.TruncateDay(ref)), nil
}

// MaterializeAutoExpenses records an expense for every pending definition in ref's
// month, or only for those listed in ids when it is not empty. Each definition is
// marked with the month so it stops being pending.
func (s *Service) MaterializeAutoExpenses(ctx context.Context, ref time.Time, ids []uuid.UUID) ([]models.Expense, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	ref = finance.TruncateDay(ref)
	period := finance.MonthKey(ref)

	created := make([]models.Expense, 0)
	err = s.repo.InTx(ctx, func(tx *repository.Repository) error {
		defs, expenses, err := loadSchedules(ctx, tx, userID, ref)
		if err != nil {
			return err
		}
		for _, def := range defs {
			src := def.Ref()
			if len(ids) > 0 && !slices.Contains(ids, src.ID) {
				continue
			}
			if !finance.IsPendingThisMonth(def, expenses, ref) {
				continue
			}

			e := finance.Materialize(def, ref).ToExpense(userID)
			if err := tx.CreateExpense(ctx, e); err != nil {
				return err
			}
			switch src.Kind {
			case models.SourceEMI:
				err = tx.MarkEMIMaterialized(ctx, userID, src.ID, period)
			case models.SourceRecurring:
				err = tx.MarkRecurringMaterialized(ctx, userID, src.ID, period)
			default:
				err = fmt.Errorf("unknown source kind %q", src.Kind)
			}
			if err != nil {
				return err
			}
			created = append(created, *e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"user_id": userID, "period": period}).
		Infof("Materialized %d auto expense(s)", len(created))
	return created, nil
}
