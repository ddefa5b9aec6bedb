package usecases

import (
	"context"
	"fmt"

	"quickdesk/internal/application/ticket/dto"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type ListCommentsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, ticketID uint) ([]*dto.CommentDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket not found")
	}

	comments, err := uc.commentRepo.ListByTicket(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return dto.ToCommentDTOList(comments), nil
}
