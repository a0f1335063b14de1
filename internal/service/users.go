package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/Dan9191/finance-tracker/internal/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput is the payload for creating an account
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by Register and Login
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// ProfileInput updates the caller's profile; nil fields are left unchanged
type ProfileInput struct {
	Name          *string          `json:"name"`
	MonthlyIncome *decimal.Decimal `json:"monthly_income"`
	Currency      *string          `json:"currency"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user with hashed password
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)

	var v validator
	v.text("name", in.Name)
	_, err := mail.ParseAddress(in.Email)
	v.check(err == nil, "email is invalid")
	v.check(len(in.Password) >= minPasswordLength, "password must be at least %d characters", minPasswordLength)
	if err := v.err(); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:          in.Name,
		Email:         in.Email,
		PasswordHash:  string(hashedPassword),
		MonthlyIncome: decimal.Zero,
		Currency:      models.DefaultCurrency,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return &AuthResult{Token: token, User: user}, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.repo.FindUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	s.log.Infof("User logged in: %s", user.Email)
	return &AuthResult{Token: token, User: user}, nil
}

// Me returns the authenticated user
func (s *Service) Me(ctx context.Context) (*models.User, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.FindUserByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		// the token outlived the account
		return nil, ErrUnauthenticated
	}
	return user, err
}

// UpdateProfile changes name, income or currency. Setting an income completes onboarding.
func (s *Service) UpdateProfile(ctx context.Context, in ProfileInput) (*models.User, error) {
	user, err := s.Me(ctx)
	if err != nil {
		return nil, err
	}

	var v validator
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
		v.text("name", user.Name)
	}
	if in.MonthlyIncome != nil {
		user.MonthlyIncome = *in.MonthlyIncome
		user.OnboardingComplete = true
		v.between("monthly income", user.MonthlyIncome, decimal.Zero, maxIncome)
	}
	if in.Currency != nil {
		user.Currency = strings.ToUpper(strings.TrimSpace(*in.Currency))
		v.check(len(user.Currency) == 3, "currency must be a 3-letter code")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	s.log.WithField("user_id", user.ID).Info("Profile updated")
	return user, nil
}

// Users lists every account, used by background jobs
func (s *Service) Users(ctx context.Context) ([]models.User, error) {
	return s.repo.ListUsers(ctx)
}
