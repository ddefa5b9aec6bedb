package usecases

import (
	"context"
	"fmt"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/db"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type UpvoteTicketCommand struct {
	TicketID uint
	UserID   uint
}

type UpvoteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	upvoteRepo ticket.UpvoteRepository
	txMgr      db.TxRunner
	logger     logger.Interface
}

func NewUpvoteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	upvoteRepo ticket.UpvoteRepository,
	txMgr db.TxRunner,
	logger logger.Interface,
) *UpvoteTicketUseCase {
	return &UpvoteTicketUseCase{
		ticketRepo: ticketRepo,
		upvoteRepo: upvoteRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

// Execute records one vote per user per ticket. A concurrent duplicate that
// slips past the existence check is caught by the unique index.
func (uc *UpvoteTicketUseCase) Execute(ctx context.Context, cmd UpvoteTicketCommand) error {
	uc.logger.Infow("executing upvote ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	upvote, err := ticket.NewUpvote(cmd.TicketID, cmd.UserID)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	return uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
			return fmt.Errorf("failed to get ticket: %w", err)
		}
		if t == nil {
			return errors.NewNotFoundError("Ticket not found")
		}

		exists, err := uc.upvoteRepo.Exists(txCtx, cmd.TicketID, cmd.UserID)
		if err != nil {
			uc.logger.Errorw("failed to check upvote", "ticket_id", cmd.TicketID, "error", err)
			return fmt.Errorf("failed to check upvote: %w", err)
		}
		if exists {
			return errors.NewAlreadyVotedError()
		}

		if err := uc.upvoteRepo.Save(txCtx, upvote); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewAlreadyVotedError()
			}
			uc.logger.Errorw("failed to save upvote", "ticket_id", cmd.TicketID, "error", err)
			return fmt.Errorf("failed to save upvote: %w", err)
		}

		if err := uc.ticketRepo.IncrementUpvoteCount(txCtx, cmd.TicketID); err != nil {
			uc.logger.Errorw("failed to increment upvote count", "ticket_id", cmd.TicketID, "error", err)
			return err
		}

		uc.logger.Infow("ticket upvoted successfully", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)
		return nil
	})
}
