// Package permission answers authorization questions against the caller's
// current role. Roles carried in tokens are never trusted.
package permission

import (
	"context"
	"fmt"

	"quickdesk/internal/domain/permission"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type Service struct {
	userRepo user.Repository
	enforcer permission.PermissionEnforcer
	logger   logger.Interface
}

func NewService(userRepo user.Repository, enforcer permission.PermissionEnforcer, logger logger.Interface) *Service {
	return &Service{
		userRepo: userRepo,
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequireRole loads the user and checks the live role against allowed.
func (s *Service) RequireRole(ctx context.Context, userID uint, allowed ...authorization.UserRole) (*user.User, error) {
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !u.Role().In(allowed...) {
		s.logger.Warnw("role not permitted", "user_id", userID, "role", u.Role(), "allowed", allowed)
		return nil, errors.NewForbiddenError("Access denied")
	}

	return u, nil
}

// Authorize loads the user and asks the policy store whether the live role
// may perform action on resource.
func (s *Service) Authorize(ctx context.Context, userID uint, resource, action string) (*user.User, error) {
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.enforcer.Enforce(u.Role(), resource, action)
	if err != nil {
		return nil, errors.NewInternalError("permission check failed", err.Error())
	}
	if !allowed {
		s.logger.Warnw("permission denied", "user_id", userID, "role", u.Role(), "resource", resource, "action", action)
		return nil, errors.NewForbiddenError("Access denied")
	}

	return u, nil
}

func (s *Service) loadUser(ctx context.Context, userID uint) (*user.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Errorw("failed to load user for authorization", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return nil, errors.NewUserNotFoundError()
	}
	return u, nil
}
