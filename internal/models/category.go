package models

import (
	"time"

	"github.com/google/uuid"
)

// Defaults for a custom category
const (
	DefaultCategoryIcon  = "📁"
	DefaultCategoryColor = "#6B7280"
)

// CustomCategory is a user-defined expense category
type CustomCategory struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
