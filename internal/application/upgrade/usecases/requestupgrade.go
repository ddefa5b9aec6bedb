package usecases

import (
	"context"
	"fmt"

	"quickdesk/internal/application/upgrade/dto"
	"quickdesk/internal/domain/upgrade"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/db"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type RequestUpgradeUseCase struct {
	userRepo    user.Repository
	requestRepo upgrade.Repository
	txMgr       db.TxRunner
	logger      logger.Interface
}

func NewRequestUpgradeUseCase(
	userRepo user.Repository,
	requestRepo upgrade.Repository,
	txMgr db.TxRunner,
	logger logger.Interface,
) *RequestUpgradeUseCase {
	return &RequestUpgradeUseCase{
		userRepo:    userRepo,
		requestRepo: requestRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

// Execute opens a pending end-user to agent request. The pending check and
// the insert share one transaction.
func (uc *RequestUpgradeUseCase) Execute(ctx context.Context, userID uint) (*dto.RequestDTO, error) {
	uc.logger.Infow("executing request upgrade use case", "user_id", userID)

	var created *upgrade.Request
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		u, err := uc.userRepo.GetByID(txCtx, userID)
		if err != nil {
			uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
			return fmt.Errorf("failed to get user: %w", err)
		}
		if u == nil {
			return errors.NewUserNotFoundError()
		}

		req, err := upgrade.NewRequest(u.ID(), u.Role())
		if err != nil {
			return errors.NewInvalidRoleError("Only end-users can request an upgrade")
		}

		pending, err := uc.requestRepo.HasPending(txCtx, userID)
		if err != nil {
			uc.logger.Errorw("failed to check pending requests", "user_id", userID, "error", err)
			return fmt.Errorf("failed to check pending requests: %w", err)
		}
		if pending {
			return errors.NewDuplicateRequestError()
		}

		if err := uc.requestRepo.Save(txCtx, req); err != nil {
			uc.logger.Errorw("failed to save upgrade request", "user_id", userID, "error", err)
			return fmt.Errorf("failed to save upgrade request: %w", err)
		}
		created = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("upgrade request created", "request_id", created.ID(), "user_id", userID)
	return dto.ToRequestDTO(created), nil
}
