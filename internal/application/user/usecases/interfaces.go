package usecases

import (
	"context"

	"quickdesk/internal/application/user/dto"
	"quickdesk/internal/shared/authorization"
)

// PasswordHasher hashes and verifies passwords. Compare returns an error on mismatch.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenGenerator issues session tokens for an authenticated user.
type TokenGenerator interface {
	Generate(userID uint, email string, role authorization.UserRole) (string, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResult, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, userID uint) (*dto.UserDTO, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context) ([]*dto.UserDTO, error)
}

type ChangeRoleExecutor interface {
	Execute(ctx context.Context, cmd ChangeRoleCommand) (*dto.UserDTO, error)
}

type AssignRoleExecutor interface {
	Execute(ctx context.Context, cmd AssignRoleCommand) (*dto.UserDTO, error)
}
