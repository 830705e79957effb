package models

import "time"

// Group is a community chat group. Member and message counts are never
// stored; they are derived by counting child rows at read time.
type Group struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `gorm:"column:createdAt" json:"createdAt"`

	Name           string `json:"name"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Image          string `json:"image"`
	CreatedBy      string `gorm:"column:createdBy" json:"createdBy"`
	CreatedByEmail string `gorm:"column:createdByEmail" json:"createdByEmail"`

	MemberCount   int64 `gorm:"-" json:"memberCount"`
	MessagesCount int64 `gorm:"-" json:"messagesCount"`
}

func (Group) TableName() string {
	return "groups"
}

// GroupMember's existence for a (group, user) pair is the sole
// membership predicate.
type GroupMember struct {
	GroupID   string    `gorm:"primaryKey;column:groupId" json:"-"`
	UserID    string    `gorm:"primaryKey;column:userId" json:"userId"`
	UserEmail string    `gorm:"column:userEmail" json:"userEmail"`
	JoinedAt  time.Time `gorm:"column:joinedAt" json:"joinedAt"`
}

func (GroupMember) TableName() string {
	return "group_members"
}

// GroupMessage is an append-only, time-ordered log entry.
type GroupMessage struct {
	ID      string `gorm:"primaryKey;type:text" json:"id"`
	GroupID string `gorm:"index;column:groupId" json:"-"`

	User      string    `json:"user"`
	UserID    string    `gorm:"column:userId" json:"userId"`
	Content   string    `gorm:"type:text" json:"content"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	Avatar    string    `json:"avatar"`
}

func (GroupMessage) TableName() string {
	return "group_messages"
}
