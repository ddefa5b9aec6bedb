package usecases

import (
	"context"

	"quickdesk/internal/application/ticket/dto"
)

// MarkdownRenderer turns a ticket description into sanitized HTML.
type MarkdownRenderer interface {
	Render(source string) (string, error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error)
}

type ListMyTicketsExecutor interface {
	Execute(ctx context.Context, creatorID uint) ([]*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, ticketID uint) ([]*dto.CommentDTO, error)
}

type UpvoteTicketExecutor interface {
	Execute(ctx context.Context, cmd UpvoteTicketCommand) error
}
