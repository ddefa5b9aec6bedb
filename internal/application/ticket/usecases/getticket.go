package usecases

import (
	"context"
	"fmt"

	"quickdesk/internal/application/ticket/dto"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	// RenderHTML adds description_html to the result.
	RenderHTML bool
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	renderer   MarkdownRenderer
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, renderer MarkdownRenderer, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket not found")
	}

	result := dto.ToTicketDTO(t)
	if query.RenderHTML && uc.renderer != nil {
		html, err := uc.renderer.Render(t.Description())
		if err != nil {
			// plain description is still served
			uc.logger.Warnw("failed to render ticket description", "ticket_id", t.ID(), "error", err)
		} else {
			result.DescriptionHTML = html
		}
	}

	return result, nil
}
