package models

import (
	"time"

	"gorm.io/datatypes"
)

// Recipe shares the blog's publication lifecycle and adds cooking
// fields. Ingredients, instructions and tags are ordered lists stored
// as JSON documents so the same schema works on Postgres and the
// sqlite test driver.
type Recipe struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updatedAt" json:"updatedAt"`

	Title     string        `json:"title"`
	ShortDesc string        `gorm:"column:shortDesc" json:"shortDesc"`
	Content   string        `gorm:"type:text" json:"content"`
	Status    ContentStatus `gorm:"type:text;index" json:"status"`
	Date      string        `json:"date"`
	Image     string        `json:"image"`
	Author    string        `json:"author"`
	AuthorID  string        `gorm:"column:authorId" json:"authorId"`

	PrepTime     string                      `gorm:"column:prepTime" json:"prepTime"`
	CookTime     string                      `gorm:"column:cookTime" json:"cookTime"`
	Servings     string                      `json:"servings"`
	Category     string                      `json:"category"`
	Ingredients  datatypes.JSONSlice[string] `json:"ingredients"`
	Instructions datatypes.JSONSlice[string] `json:"instructions"`
	Tags         datatypes.JSONSlice[string] `json:"tags"`
}

func (Recipe) TableName() string {
	return "recipes"
}
