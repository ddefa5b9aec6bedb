package usecases

import (
	"context"
	"fmt"

	"quickdesk/internal/application/ticket/dto"
	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID   uint
	Status     string
	AgentID    uint
	AgentEmail string
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewChangeStatusUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute sets the status and assigns the ticket to the acting agent.
// Any status may follow any other.
func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "status", cmd.Status, "agent_id", cmd.AgentID)

	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError("Invalid status")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket not found")
	}

	if err := t.ChangeStatus(status, cmd.AgentID, cmd.AgentEmail); err != nil {
		return nil, errors.NewValidationError("Invalid status", err.Error())
	}

	if err := uc.ticketRepo.UpdateStatus(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status updated successfully", "ticket_id", cmd.TicketID, "status", status)
	return dto.ToTicketDTO(t), nil
}
