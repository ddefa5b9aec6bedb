package usecases

import (
	"context"
	"fmt"
	"strings"

	"quickdesk/internal/application/upgrade/dto"
	"quickdesk/internal/domain/upgrade"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type ListRequestsUseCase struct {
	requestRepo upgrade.Repository
	logger      logger.Interface
}

func NewListRequestsUseCase(requestRepo upgrade.Repository, logger logger.Interface) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// Execute lists requests in status, pending when status is empty.
func (uc *ListRequestsUseCase) Execute(ctx context.Context, status string) ([]*dto.RequestDTO, error) {
	s := upgrade.StatusPending
	if trimmed := strings.TrimSpace(status); trimmed != "" {
		s = upgrade.Status(trimmed)
		if !s.IsValid() {
			return nil, errors.NewValidationError("Invalid status")
		}
	}

	requests, err := uc.requestRepo.ListByStatus(ctx, s)
	if err != nil {
		uc.logger.Errorw("failed to list upgrade requests", "status", s, "error", err)
		return nil, fmt.Errorf("failed to list upgrade requests: %w", err)
	}

	return dto.ToRequestDTOList(requests), nil
}
