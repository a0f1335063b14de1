package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Dan9191/finance-tracker/internal/handler"
	"github.com/Dan9191/finance-tracker/internal/scheduler"
	"github.com/Dan9191/finance-tracker/internal/utils/email"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and start the HTTP API",
		Long: `Apply pending migrations, then serve the REST API on PORT.
When REMINDER_ENABLED is set, pending-charge digests are emailed on REMINDER_SCHEDULE.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.db.Close()

	if err := a.repo.Migrate(ctx); err != nil {
		return err
	}

	if a.cfg.ReminderEnabled {
		reminder := scheduler.NewReminder(a.svc, email.NewSender(a.cfg, a.log), a.log)
		c, err := reminder.Start(a.cfg.ReminderSchedule)
		if err != nil {
			return err
		}
		defer c.Stop()
	}

	h := handler.NewHandler(a.svc, a.log)
	addr := fmt.Sprintf(":%s", a.cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler.NewRouter(h, a.issuer, a.cfg.CORSOrigins, a.log),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
