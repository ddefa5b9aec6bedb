package usecases

import (
	"context"
	"fmt"

	"quickdesk/internal/application/user/dto"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewUserNotFoundError()
	}

	return dto.ToUserDTO(u), nil
}

type UpdateProfileCommand struct {
	UserID   uint
	Name     string
	Gender   string
	Category string
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute replaces name, gender and category. Email and role stay as they are.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update profile use case", "user_id", cmd.UserID)

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewUserNotFoundError()
	}

	if err := u.UpdateProfile(cmd.Name, cmd.Gender, cmd.Category); err != nil {
		return nil, errors.NewValidationError("Name, gender, and category are required", err.Error())
	}

	if err := uc.userRepo.UpdateProfile(ctx, u); err != nil {
		uc.logger.Errorw("failed to persist profile", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	uc.logger.Infow("profile updated successfully", "user_id", cmd.UserID)
	return dto.ToUserDTO(u), nil
}
