package usecases

import (
	"context"
	"fmt"

	"quickdesk/internal/application/user/dto"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return dto.ToUserDTOList(users), nil
}

type ChangeRoleCommand struct {
	TargetUserID uint
	Role         string
	ActorID      uint
}

type ChangeRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewChangeRoleUseCase(userRepo user.Repository, logger logger.Interface) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute promotes an end-user to agent or demotes an agent to end-user.
// Admin accounts are never changed here.
func (uc *ChangeRoleUseCase) Execute(ctx context.Context, cmd ChangeRoleCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing change role use case", "target_user_id", cmd.TargetUserID, "role", cmd.Role, "actor_id", cmd.ActorID)

	role := authorization.UserRole(cmd.Role)
	if role != authorization.RoleAgent && role != authorization.RoleEndUser {
		return nil, errors.NewValidationError("Role must be agent or end-user")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.TargetUserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.TargetUserID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("User not found")
	}
	if u.Role().IsAdmin() {
		return nil, errors.NewForbiddenError("Admin roles cannot be changed")
	}

	changed, err := u.ChangeRole(role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if !changed {
		return dto.ToUserDTO(u), nil
	}

	if err := uc.userRepo.UpdateRole(ctx, u); err != nil {
		uc.logger.Errorw("failed to persist role change", "user_id", cmd.TargetUserID, "error", err)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	uc.logger.Infow("user role changed", "user_id", cmd.TargetUserID, "role", role, "actor_id", cmd.ActorID)
	return dto.ToUserDTO(u), nil
}

type AssignRoleCommand struct {
	Email string
	Role  string
}

// AssignRoleUseCase is the operator path used to bootstrap admins. Unlike
// ChangeRoleUseCase it accepts any role, including admin.
type AssignRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewAssignRoleUseCase(userRepo user.Repository, logger logger.Interface) *AssignRoleUseCase {
	return &AssignRoleUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *AssignRoleUseCase) Execute(ctx context.Context, cmd AssignRoleCommand) (*dto.UserDTO, error) {
	role := authorization.UserRole(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewInvalidRoleError("Role must be end-user, agent or admin")
	}

	email, err := user.NormalizeEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	changed, err := u.ChangeRole(role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if changed {
		if err := uc.userRepo.UpdateRole(ctx, u); err != nil {
			return nil, fmt.Errorf("failed to save user: %w", err)
		}
		uc.logger.Infow("role assigned by operator", "user_id", u.ID(), "role", role)
	}

	return dto.ToUserDTO(u), nil
}
