package main

import (
	"fmt"

	"github.com/Dan9191/finance-tracker/internal/scheduler"
	"github.com/Dan9191/finance-tracker/internal/utils/email"
	"github.com/spf13/cobra"
)

func remindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Email every user a digest of this month's pending charges once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := setup(ctx)
			if err != nil {
				return err
			}
			defer a.db.Close()

			if !a.cfg.MailEnabled() {
				return fmt.Errorf("SMTP_HOST and SENDER_EMAIL are required to send reminders")
			}

			sent, err := scheduler.NewReminder(a.svc, email.NewSender(a.cfg, a.log), a.log).RunOnce(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "sent %d reminder(s)\n", sent)
			return err
		},
	}
}
