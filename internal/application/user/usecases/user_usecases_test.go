package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	apperrors "quickdesk/internal/shared/errors"
)

func storedUser(t *testing.T, id uint, email string, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "Grace", "female", email, "hashed:secret", "engineering", role,
		time.Now().Add(-time.Hour), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return u
}

func TestRegisterUseCase_Execute(t *testing.T) {
	valid := RegisterCommand{Name: "Grace", Gender: "female", Email: "Grace@Example.com", Password: "secret", Category: "engineering"}

	tests := []struct {
		name      string
		modify    func(c *RegisterCommand)
		exists    bool
		createErr error
		wantType  apperrors.ErrorType
	}{
		{name: "success"},
		{name: "missing name", modify: func(c *RegisterCommand) { c.Name = " " }, wantType: apperrors.ErrorTypeValidation},
		{name: "missing category", modify: func(c *RegisterCommand) { c.Category = "" }, wantType: apperrors.ErrorTypeValidation},
		{name: "malformed email", modify: func(c *RegisterCommand) { c.Email = "not-an-email" }, wantType: apperrors.ErrorTypeValidation},
		{name: "password too long", modify: func(c *RegisterCommand) { c.Password = strings.Repeat("p", 73) }, wantType: apperrors.ErrorTypeValidation},
		{name: "email taken", exists: true, wantType: apperrors.ErrorTypeDuplicateEmail},
		{name: "racing duplicate", createErr: errors.New("Error 1062 (23000): Duplicate entry 'grace@example.com' for key 'idx_users_email'"), wantType: apperrors.ErrorTypeDuplicateEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := valid
			if tt.modify != nil {
				tt.modify(&cmd)
			}

			var created *user.User
			repo := &mockUserRepository{
				ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
					return tt.exists, nil
				},
				CreateFunc: func(ctx context.Context, u *user.User) error {
					if tt.createErr != nil {
						return tt.createErr
					}
					created = u
					return u.SetID(11)
				},
			}
			uc := NewRegisterUseCase(repo, &mockHasher{}, &mockLogger{})

			result, err := uc.Execute(context.Background(), cmd)
			if tt.wantType != "" {
				appErr := apperrors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, tt.wantType, appErr.Type)
				assert.Equal(t, 400, appErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint(11), result.ID)
			assert.Equal(t, "grace@example.com", result.Email)
			assert.Equal(t, "end-user", result.Role)
			require.NotNil(t, created)
			assert.Equal(t, "hashed:secret", created.PasswordHash())
		})
	}
}

func TestLoginUseCase_Execute(t *testing.T) {
	repo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			if email == "grace@example.com" {
				return storedUser(t, 5, email, authorization.RoleAgent), nil
			}
			return nil, nil
		},
	}

	t.Run("success", func(t *testing.T) {
		var gotID uint
		var gotRole authorization.UserRole
		tokens := &mockTokenGenerator{
			GenerateFunc: func(userID uint, email string, role authorization.UserRole) (string, error) {
				gotID, gotRole = userID, role
				return "signed", nil
			},
		}
		uc := NewLoginUseCase(repo, &mockHasher{}, tokens, &mockLogger{})

		result, err := uc.Execute(context.Background(), LoginCommand{Email: "grace@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "signed", result.Token)
		assert.Equal(t, uint(5), result.User.ID)
		assert.Equal(t, "agent", result.User.Role)
		assert.Equal(t, "Grace", result.User.Name)
		assert.Equal(t, uint(5), gotID)
		assert.Equal(t, authorization.RoleAgent, gotRole)
	})

	t.Run("unknown email", func(t *testing.T) {
		uc := NewLoginUseCase(repo, &mockHasher{}, &mockTokenGenerator{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), LoginCommand{Email: "nobody@example.com", Password: "secret"})
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, "Email not found", appErr.Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := NewLoginUseCase(repo, &mockHasher{}, &mockTokenGenerator{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), LoginCommand{Email: "grace@example.com", Password: "guess"})
		assert.True(t, apperrors.IsInvalidCredentialsError(err))
	})
}

func TestProfileUseCases(t *testing.T) {
	var updated *user.User
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			if id == 5 {
				return storedUser(t, 5, "grace@example.com", authorization.RoleEndUser), nil
			}
			return nil, nil
		},
		UpdateProfileFunc: func(ctx context.Context, u *user.User) error {
			updated = u
			return nil
		},
	}

	t.Run("get profile", func(t *testing.T) {
		result, err := NewGetProfileUseCase(repo, &mockLogger{}).Execute(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, "grace@example.com", result.Email)
	})

	t.Run("get profile of vanished user", func(t *testing.T) {
		_, err := NewGetProfileUseCase(repo, &mockLogger{}).Execute(context.Background(), 6)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("update profile", func(t *testing.T) {
		result, err := NewUpdateProfileUseCase(repo, &mockLogger{}).Execute(context.Background(),
			UpdateProfileCommand{UserID: 5, Name: "Grace H", Gender: "female", Category: "research"})
		require.NoError(t, err)
		assert.Equal(t, "Grace H", result.Name)
		assert.Equal(t, "research", result.Category)
		assert.Equal(t, "end-user", result.Role)
		require.NotNil(t, updated)
	})

	t.Run("update profile rejects blanks", func(t *testing.T) {
		_, err := NewUpdateProfileUseCase(repo, &mockLogger{}).Execute(context.Background(),
			UpdateProfileCommand{UserID: 5, Name: "", Gender: "female", Category: "research"})
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestChangeRoleUseCase_Execute(t *testing.T) {
	users := map[uint]authorization.UserRole{
		1: authorization.RoleAdmin,
		2: authorization.RoleAgent,
		3: authorization.RoleEndUser,
	}

	tests := []struct {
		name        string
		target      uint
		role        string
		wantRole    string
		wantCode    int
		wantUpdated bool
	}{
		{name: "promote end-user", target: 3, role: "agent", wantRole: "agent", wantUpdated: true},
		{name: "demote agent", target: 2, role: "end-user", wantRole: "end-user", wantUpdated: true},
		{name: "no-op keeps row", target: 2, role: "agent", wantRole: "agent"},
		{name: "admin role cannot be granted", target: 3, role: "admin", wantCode: 400},
		{name: "admin cannot be demoted", target: 1, role: "end-user", wantCode: 403},
		{name: "unknown user", target: 9, role: "agent", wantCode: 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := false
			repo := &mockUserRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
					role, ok := users[id]
					if !ok {
						return nil, nil
					}
					return storedUser(t, id, "u@example.com", role), nil
				},
				UpdateRoleFunc: func(ctx context.Context, u *user.User) error {
					updated = true
					return nil
				},
			}
			uc := NewChangeRoleUseCase(repo, &mockLogger{})

			result, err := uc.Execute(context.Background(), ChangeRoleCommand{TargetUserID: tt.target, Role: tt.role, ActorID: 1})
			if tt.wantCode != 0 {
				appErr := apperrors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, tt.wantCode, appErr.Code)
				assert.False(t, updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, result.Role)
			assert.Equal(t, tt.wantUpdated, updated)
		})
	}
}

func TestListUsersUseCase_Execute(t *testing.T) {
	repo := &mockUserRepository{
		ListFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{
				storedUser(t, 2, "b@example.com", authorization.RoleAgent),
				storedUser(t, 1, "a@example.com", authorization.RoleAdmin),
			}, nil
		},
	}

	result, err := NewListUsersUseCase(repo, &mockLogger{}).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, uint(2), result[0].ID)
}

func TestAssignRoleUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		role     string
		wantCode int
	}{
		{name: "bootstrap admin", email: " Grace@Example.com ", role: "admin"},
		{name: "invalid role", email: "grace@example.com", role: "owner", wantCode: 400},
		{name: "unknown email", email: "nobody@example.com", role: "admin", wantCode: 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *user.User
			repo := &mockUserRepository{
				GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
					if email != "grace@example.com" {
						return nil, nil
					}
					return storedUser(t, 7, email, authorization.RoleEndUser), nil
				},
				UpdateRoleFunc: func(ctx context.Context, u *user.User) error {
					saved = u
					return nil
				},
			}

			result, err := NewAssignRoleUseCase(repo, &mockLogger{}).Execute(context.Background(), AssignRoleCommand{Email: tt.email, Role: tt.role})
			if tt.wantCode != 0 {
				appErr := apperrors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, tt.wantCode, appErr.Code)
				assert.Nil(t, saved)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "admin", result.Role)
			require.NotNil(t, saved)
			assert.True(t, saved.Role().IsAdmin())
		})
	}
}
