// Package scheduler runs periodic background jobs.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dan9191/finance-tracker/internal/finance"
	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Source provides the users and their pending charges
type Source interface {
	Users(ctx context.Context) ([]models.User, error)
	PendingForUser(ctx context.Context, userID uuid.UUID, ref time.Time) (finance.PendingSet, error)
}

// Notifier delivers a pending-charges digest to a user
type Notifier interface {
	SendPendingDigest(user models.User, pending finance.PendingSet, ref time.Time) error
}

// Reminder notifies users about EMI payments and recurring charges not yet recorded this month
type Reminder struct {
	source   Source
	notifier Notifier
	log      *logrus.Logger
	now      func() time.Time
}

// NewReminder creates the reminder job
func NewReminder(source Source, notifier Notifier, log *logrus.Logger) *Reminder {
	return &Reminder{source: source, notifier: notifier, log: log, now: time.Now}
}

// RunOnce sends one digest to every user with pending charges and returns how many were sent.
// A failure for one user does not stop the others.
func (r *Reminder) RunOnce(ctx context.Context) (int, error) {
	users, err := r.source.Users(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users: %w", err)
	}

	ref := finance.TruncateDay(r.now().UTC())
	sent := 0
	var errs []error
	for _, user := range users {
		pending, err := r.source.PendingForUser(ctx, user.ID, ref)
		if err != nil {
			errs = append(errs, fmt.Errorf("user %s: %w", user.ID, err))
			continue
		}
		if pending.TotalCount == 0 {
			continue
		}
		if err := r.notifier.SendPendingDigest(user, pending, ref); err != nil {
			errs = append(errs, fmt.Errorf("user %s: %w", user.ID, err))
			continue
		}
		sent++
	}

	r.log.WithFields(logrus.Fields{"users": len(users), "sent": sent, "failed": len(errs)}).Info("Reminder run finished")
	return sent, errors.Join(errs...)
}

// Start schedules RunOnce with a standard five-field cron spec and starts the scheduler.
// The caller stops it with Stop.
func (r *Reminder) Start(spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithLogger(cron.PrintfLogger(r.log)))
	_, err := c.AddFunc(spec, func() {
		if _, err := r.RunOnce(context.Background()); err != nil {
			r.log.Errorf("Reminder run failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	c.Start()
	r.log.Infof("Reminder scheduled: %s", spec)
	return c, nil
}
