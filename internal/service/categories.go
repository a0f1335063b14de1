package service

import (
	"context"
	"strings"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/google/uuid"
)

// CategoryInput creates a custom category
type CategoryInput struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CreateCategory adds a custom category; names are unique per user
func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (*models.CustomCategory, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	c := &models.CustomCategory{
		UserID: userID,
		Name:   strings.ToLower(strings.TrimSpace(in.Name)),
		Icon:   in.Icon,
		Color:  in.Color,
	}
	if c.Icon == "" {
		c.Icon = models.DefaultCategoryIcon
	}
	if c.Color == "" {
		c.Color = models.DefaultCategoryColor
	}

	var v validator
	v.text("name", c.Name)
	if err := v.err(); err != nil {
		return nil, err
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCategories returns the caller's custom categories
func (s *Service) ListCategories(ctx context.Context) ([]models.CustomCategory, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListCategories(ctx, userID)
}

// DeleteCategory removes a custom category; existing expenses keep their category name
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}
	return s.repo.DeleteCategory(ctx, userID, id)
}
