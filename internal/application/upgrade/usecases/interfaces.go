package usecases

import (
	"context"

	"quickdesk/internal/application/upgrade/dto"
	"quickdesk/internal/domain/upgrade"
)

// DecisionNotifier tells a requester how their upgrade request was resolved.
type DecisionNotifier interface {
	NotifyUpgradeDecision(ctx context.Context, to, name string, decision upgrade.Status) error
}

type RequestUpgradeExecutor interface {
	Execute(ctx context.Context, userID uint) (*dto.RequestDTO, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, status string) ([]*dto.RequestDTO, error)
}

type ResolveUpgradeExecutor interface {
	Execute(ctx context.Context, cmd ResolveUpgradeCommand) (*dto.RequestDTO, error)
}
