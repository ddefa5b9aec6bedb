package usecases

import (
	"context"
	"fmt"

	"quickdesk/internal/application/ticket/dto"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Question     string
	Description  string
	Tags         []string
	CreatorID    uint
	CreatorEmail string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "creator_id", cmd.CreatorID)

	t, err := ticket.NewTicket(cmd.Question, cmd.Description, cmd.Tags, cmd.CreatorID)
	if err != nil {
		uc.logger.Warnw("invalid ticket", "creator_id", cmd.CreatorID, "error", err)
		return nil, errors.NewValidationError("All fields are required", err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}
	t.SetCreatorEmail(cmd.CreatorEmail)

	uc.logger.Infow("ticket created successfully", "ticket_id", t.ID(), "creator_id", cmd.CreatorID)
	return dto.ToTicketDTO(t), nil
}
