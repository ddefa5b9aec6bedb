package ticket

import (
	"context"

	vo "quickdesk/internal/domain/ticket/valueobjects"
)

// TicketRepository persists tickets. GetByID returns (nil, nil) when absent.
type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	// List returns tickets newest first.
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
	// UpdateStatus persists status, assignee and updated_at.
	UpdateStatus(ctx context.Context, ticket *Ticket) error
	// IncrementConversationCount adds one in SQL and touches updated_at.
	IncrementConversationCount(ctx context.Context, ticketID uint) error
	// IncrementUpvoteCount adds one in SQL.
	IncrementUpvoteCount(ctx context.Context, ticketID uint) error
}

// TicketFilter narrows List. Zero values mean no constraint.
type TicketFilter struct {
	Status    *vo.TicketStatus
	CreatorID *uint
	// Tag matches one normalized tag exactly.
	Tag string
	// Query is a case-insensitive substring over question, description and tags.
	Query string
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	// ListByTicket returns comments oldest first with their authors.
	ListByTicket(ctx context.Context, ticketID uint) ([]*Comment, error)
}

type UpvoteRepository interface {
	// Save fails with a duplicate key error when the pair already exists.
	Save(ctx context.Context, upvote *Upvote) error
	Exists(ctx context.Context, ticketID, userID uint) (bool, error)
}
