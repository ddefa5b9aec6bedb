package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"quickdesk/internal/application/upgrade/dto"
	"quickdesk/internal/domain/upgrade"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/db"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type ResolveUpgradeCommand struct {
	RequestID uint
	Decision  string
	AdminID   uint
}

type ResolveUpgradeUseCase struct {
	requestRepo upgrade.Repository
	userRepo    user.Repository
	txMgr       db.TxRunner
	notifier    DecisionNotifier
	logger      logger.Interface
}

func NewResolveUpgradeUseCase(
	requestRepo upgrade.Repository,
	userRepo user.Repository,
	txMgr db.TxRunner,
	notifier DecisionNotifier,
	logger logger.Interface,
) *ResolveUpgradeUseCase {
	return &ResolveUpgradeUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		txMgr:       txMgr,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute records the decision and, on approval, promotes the requester in
// the same transaction. The requester is emailed after commit.
func (uc *ResolveUpgradeUseCase) Execute(ctx context.Context, cmd ResolveUpgradeCommand) (*dto.RequestDTO, error) {
	uc.logger.Infow("executing resolve upgrade use case", "request_id", cmd.RequestID, "decision", cmd.Decision, "admin_id", cmd.AdminID)

	decision := upgrade.Status(cmd.Decision)
	if !decision.IsDecision() {
		return nil, errors.NewValidationError("Invalid status. Must be approved or rejected")
	}

	var (
		req       *upgrade.Request
		requester *user.User
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		req, err = uc.requestRepo.GetByID(txCtx, cmd.RequestID)
		if err != nil {
			uc.logger.Errorw("failed to get upgrade request", "request_id", cmd.RequestID, "error", err)
			return fmt.Errorf("failed to get upgrade request: %w", err)
		}
		if req == nil {
			return errors.NewNotFoundError("Request not found")
		}

		if err := req.Resolve(decision, cmd.AdminID); err != nil {
			return errors.NewValidationError("Request is not pending", err.Error())
		}

		requester, err = uc.userRepo.GetByID(txCtx, req.UserID())
		if err != nil {
			uc.logger.Errorw("failed to get requester", "user_id", req.UserID(), "error", err)
			return fmt.Errorf("failed to get requester: %w", err)
		}
		if requester == nil {
			return errors.NewNotFoundError("User not found")
		}

		if err := uc.requestRepo.UpdateStatus(txCtx, req); err != nil {
			if stderrors.Is(err, upgrade.ErrNotPending) {
				uc.logger.Warnw("upgrade request resolved concurrently", "request_id", cmd.RequestID)
				return errors.NewValidationError("Request is not pending", err.Error())
			}
			uc.logger.Errorw("failed to update upgrade request", "request_id", cmd.RequestID, "error", err)
			return fmt.Errorf("failed to update upgrade request: %w", err)
		}

		if decision == upgrade.StatusApproved && requester.Promote() {
			if err := uc.userRepo.UpdateRole(txCtx, requester); err != nil {
				uc.logger.Errorw("failed to promote user", "user_id", requester.ID(), "error", err)
				return fmt.Errorf("failed to promote user: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("upgrade request resolved", "request_id", req.ID(), "decision", decision, "user_id", requester.ID())

	if uc.notifier != nil {
		if err := uc.notifier.NotifyUpgradeDecision(ctx, requester.Email(), requester.Name(), decision); err != nil {
			uc.logger.Warnw("failed to send upgrade decision email", "request_id", req.ID(), "error", err)
		}
	}

	result := dto.ToRequestDTO(req)
	result.Users = &dto.RequesterDTO{Name: requester.Name(), Email: requester.Email()}
	return result, nil
}
