package models

import "time"

type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
)

// Blog is a CMS article. Drafts are only visible to admins.
type Blog struct {
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
}

func (Blog) TableName() string {
	return "blogs"
}
