package permission

import (
	"context"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/logger"
)

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, u *user.User) error {
	return nil
}

func (m *mockUserRepository) UpdateRole(ctx context.Context, u *user.User) error {
	return nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	return nil, nil
}

type mockEnforcer struct {
	EnforceFunc func(role authorization.UserRole, resource, action string) (bool, error)
}

func (m *mockEnforcer) Enforce(role authorization.UserRole, resource, action string) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(role, resource, action)
	}
	return false, nil
}

func (m *mockEnforcer) AddPolicy(role authorization.UserRole, resource, action string) error {
	return nil
}

func (m *mockEnforcer) RemovePolicy(role authorization.UserRole, resource, action string) error {
	return nil
}

func (m *mockEnforcer) LoadPolicy() error {
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                    {}
func (m *mockLogger) Info(msg string, args ...any)                     {}
func (m *mockLogger) Warn(msg string, args ...any)                     {}
func (m *mockLogger) Error(msg string, args ...any)                    {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}
