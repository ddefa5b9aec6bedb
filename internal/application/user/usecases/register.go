package usecases

import (
	"context"
	"fmt"
	"strings"

	"quickdesk/internal/application/user/dto"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

// bcrypt ignores input past 72 bytes
const maxPasswordBytes = 72

type RegisterCommand struct {
	Name     string
	Gender   string
	Email    string
	Password string
	Category string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute creates an end-user account. Callers cannot choose the role.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error) {
	if strings.TrimSpace(cmd.Name) == "" || strings.TrimSpace(cmd.Gender) == "" ||
		strings.TrimSpace(cmd.Email) == "" || cmd.Password == "" || strings.TrimSpace(cmd.Category) == "" {
		return nil, errors.NewValidationError("All fields are required")
	}
	if len(cmd.Password) > maxPasswordBytes {
		return nil, errors.NewValidationError(fmt.Sprintf("Password cannot exceed %d bytes", maxPasswordBytes))
	}

	email, err := user.NormalizeEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("Invalid email", err.Error())
	}

	uc.logger.Infow("executing register use case", "email", email)

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "email", email, "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, errors.NewDuplicateEmailError()
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := user.NewUser(cmd.Name, cmd.Gender, email, hash, cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewDuplicateEmailError()
		}
		uc.logger.Errorw("failed to create user", "email", email, "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user registered successfully", "user_id", u.ID())
	return dto.ToUserDTO(u), nil
}
