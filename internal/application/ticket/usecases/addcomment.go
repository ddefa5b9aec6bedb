package usecases

import (
	"context"
	"fmt"
	"strings"

	"quickdesk/internal/application/ticket/dto"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/db"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	Message  string
	// Author is the commenting user as loaded by the authorization check.
	Author   ticket.Author
	AuthorID uint
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txMgr       db.TxRunner
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txMgr db.TxRunner,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "user_id", cmd.AuthorID)

	if strings.TrimSpace(cmd.Message) == "" {
		return nil, errors.NewValidationError("Comment cannot be empty")
	}
	comment, err := ticket.NewComment(cmd.TicketID, cmd.AuthorID, cmd.Message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// comment insert and counter increment commit or roll back together
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
			return fmt.Errorf("failed to get ticket: %w", err)
		}
		if t == nil {
			return errors.NewNotFoundError("Ticket not found")
		}

		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			uc.logger.Errorw("failed to save comment", "error", err)
			return fmt.Errorf("failed to save comment: %w", err)
		}

		if err := uc.ticketRepo.IncrementConversationCount(txCtx, cmd.TicketID); err != nil {
			uc.logger.Errorw("failed to increment conversation count", "ticket_id", cmd.TicketID, "error", err)
			return err
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	author := cmd.Author
	comment.SetAuthor(&author)

	uc.logger.Infow("comment added successfully", "comment_id", comment.ID(), "ticket_id", cmd.TicketID)
	return dto.ToCommentDTO(comment), nil
}
