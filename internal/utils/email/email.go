package email

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/Dan9191/finance-tracker/internal/config"
	"github.com/Dan9191/finance-tracker/internal/finance"
	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	s := &Sender{
		cfg:    cfg,
		logger: logger,
	}
	s.send = s.smtpSend
	return s
}

func (s *Sender) smtpSend(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	return e.Send(addr, auth)
}

// SendPendingDigest emails the user the list of charges still pending in ref's month
func (s *Sender) SendPendingDigest(user models.User, pending finance.PendingSet, ref time.Time) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{user.Email}
	e.Subject = fmt.Sprintf("%d pending charge(s) for %s", pending.TotalCount, ref.Format("January 2006"))
	e.Text = []byte(digestBody(user, pending, ref))

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", user.Email, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", user.Email, e.Subject)
	return nil
}

func digestBody(user models.User, pending finance.PendingSet, ref time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", user.Name)
	fmt.Fprintf(&b, "The following recurring charges and EMI payments have not been recorded for %s yet:\n\n",
		ref.Format("January 2006"))
	for _, item := range pending.Items {
		fmt.Fprintf(&b, "  - %s: %s %s due on %s (%s)\n",
			item.Description, item.Amount.StringFixed(2), user.Currency, item.Date.Format("2006-01-02"), item.Category)
	}
	fmt.Fprintf(&b, "\nTotal: %s %s\n", pending.TotalAmount.StringFixed(2), user.Currency)
	b.WriteString("Open the app to add them to your expenses in one step.\n")
	b.WriteString("\nBest regards,\nFinance Tracker")
	return b.String()
}
