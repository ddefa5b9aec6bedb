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

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenGenerator
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenGenerator, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResult, error) {
	if strings.TrimSpace(cmd.Email) == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("Email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewUserNotFoundError("Email not found")
	}

	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("login failed: password mismatch", "user_id", u.ID())
		return nil, errors.NewInvalidCredentialsError()
	}

	token, err := uc.tokens.Generate(u.ID(), u.Email(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())
	return &dto.LoginResult{
		Token: token,
		User: dto.SessionUserDTO{
			ID:    u.ID(),
			Email: u.Email(),
			Role:  u.Role().String(),
			Name:  u.Name(),
		},
	}, nil
}
