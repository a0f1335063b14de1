// Package service implements the business operations behind the REST API:
// accounts and profiles, record management, the dashboard pipeline,
// auto-expense materialization and data export/import.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/Dan9191/finance-tracker/internal/auth"
	"github.com/Dan9191/finance-tracker/internal/config"
	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/Dan9191/finance-tracker/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrValidation wraps every input validation failure
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials is returned when login fails
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an email that already exists
	ErrEmailTaken = errors.New("user already exists with this email")
	// ErrUnauthenticated is returned when the context carries no session
	ErrUnauthenticated = errors.New("authentication required")
	// ErrBadSignature is returned when an import bundle fails verification
	ErrBadSignature = errors.New("export signature does not verify")
)

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	log    *logrus.Logger
	config *config.Config
	tokens *auth.Issuer
	now    func() time.Time
}

// NewService initializes a new service
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config, tokens *auth.Issuer) *Service {
	return &Service{repo: repo, log: log, config: cfg, tokens: tokens, now: time.Now}
}

// userID returns the authenticated user of the request
func (s *Service) userID(ctx context.Context) (uuid.UUID, error) {
	session, ok := auth.SessionFrom(ctx)
	if !ok {
		return uuid.Nil, ErrUnauthenticated
	}
	return session.UserID, nil
}

func (s *Service) today() time.Time {
	return models.DateOnly(s.now())
}
