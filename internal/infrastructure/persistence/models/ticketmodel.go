package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID                uint                        `gorm:"primaryKey"`
	Question          string                      `gorm:"size:300;not null"`
	Description       string                      `gorm:"type:text;not null"`
	Tags              datatypes.JSONSlice[string] `gorm:"not null"`
	CreatorID         uint                        `gorm:"not null;index"`
	Status            string                      `gorm:"size:20;not null;default:open;index"`
	UpvoteCount       int                         `gorm:"not null;default:0"`
	ConversationCount int                         `gorm:"not null;default:0"`
	AssignedAgentID   *uint                       `gorm:"index"`
	CreatedAt         int64                       `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt         int64                       `gorm:"autoUpdateTime:milli;not null"`

	// No foreign key constraints or associations.
	// Creator and assignee emails are joined in at read time.
}

func (TicketModel) TableName() string {
	return "tickets"
}

// TicketRow is a ticket joined with its creator and assignee emails.
type TicketRow struct {
	TicketModel        `gorm:"embedded"`
	CreatorEmail       string
	AssignedAgentEmail *string
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

// CommentRow is a comment joined with its author.
type CommentRow struct {
	CommentModel `gorm:"embedded"`
	AuthorName   string
	AuthorEmail  string
	AuthorRole   string
}

type UpvoteModel struct {
	ID        uint  `gorm:"primaryKey"`
	TicketID  uint  `gorm:"not null;uniqueIndex:idx_ticket_upvotes_ticket_user"`
	UserID    uint  `gorm:"not null;uniqueIndex:idx_ticket_upvotes_ticket_user"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (UpvoteModel) TableName() string {
	return "ticket_upvotes"
}
