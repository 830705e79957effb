package models

import (
	"time"

	"gorm.io/datatypes"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ViewType is the content kind a ViewRecord points at.
type ViewType string

const (
	ViewTypeBlog   ViewType = "blog"
	ViewTypeRecipe ViewType = "recipe"
)

// ViewRecord is one entry in a user's recently-viewed list.
// (Type, ID) is unique within a list.
type ViewRecord struct {
	Type        ViewType  `json:"type"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	URL         string    `json:"url"`
	ViewedAt    time.Time `json:"viewedAt"`
}

// User accounts are created out of band by the identity provider's
// signup flow; login fails if no matching row exists.
type User struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updatedAt" json:"updatedAt"`

	// Email is empty on rows minted by the view tracker, so it cannot
	// carry a unique index.
	Email string `gorm:"index" json:"email"`
	Name  string `json:"name"`
	Role  Role   `gorm:"type:text;default:'user'" json:"role"`

	// The whole list is one JSON document, rewritten on every change.
	// Newest first, capped at 50 entries.
	RecentViews datatypes.JSONSlice[ViewRecord] `gorm:"column:recent_views" json:"recent_views"`
}

func (User) TableName() string {
	return "users"
}
