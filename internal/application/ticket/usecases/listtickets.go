package usecases

import (
	"context"
	"fmt"
	"strings"

	"quickdesk/internal/application/ticket/dto"
	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

// ListTicketsQuery filters are optional. An empty Status means any status.
type ListTicketsQuery struct {
	Status string
	Tag    string
	Query  string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	filter := ticket.TicketFilter{
		Tag:   vo.NormalizeTag(query.Tag),
		Query: strings.TrimSpace(query.Query),
	}

	if s := strings.TrimSpace(query.Status); s != "" {
		status, err := vo.NewTicketStatus(s)
		if err != nil {
			return nil, errors.NewValidationError("Invalid status")
		}
		filter.Status = &status
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return dto.ToTicketDTOList(tickets), nil
}

type ListMyTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListMyTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListMyTicketsUseCase {
	return &ListMyTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListMyTicketsUseCase) Execute(ctx context.Context, creatorID uint) ([]*dto.TicketDTO, error) {
	tickets, err := uc.ticketRepo.List(ctx, ticket.TicketFilter{CreatorID: &creatorID})
	if err != nil {
		uc.logger.Errorw("failed to list own tickets", "creator_id", creatorID, "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return dto.ToTicketDTOList(tickets), nil
}
