package usecases

import (
	"context"

	"quickdesk/internal/domain/upgrade"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/logger"
)

type mockRequestRepository struct {
	SaveFunc         func(ctx context.Context, r *upgrade.Request) error
	GetByIDFunc      func(ctx context.Context, id uint) (*upgrade.Request, error)
	HasPendingFunc   func(ctx context.Context, userID uint) (bool, error)
	ListByStatusFunc func(ctx context.Context, status upgrade.Status) ([]*upgrade.Request, error)
	UpdateStatusFunc func(ctx context.Context, r *upgrade.Request) error
}

func (m *mockRequestRepository) Save(ctx context.Context, r *upgrade.Request) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id uint) (*upgrade.Request, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestRepository) HasPending(ctx context.Context, userID uint) (bool, error) {
	if m.HasPendingFunc != nil {
		return m.HasPendingFunc(ctx, userID)
	}
	return false, nil
}

func (m *mockRequestRepository) ListByStatus(ctx context.Context, status upgrade.Status) ([]*upgrade.Request, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockRequestRepository) UpdateStatus(ctx context.Context, r *upgrade.Request) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, r)
	}
	return nil
}

type mockUserRepository struct {
	GetByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	UpdateRoleFunc func(ctx context.Context, u *user.User) error
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
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	return nil, nil
}

type mockTxManager struct {
	calls int
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type sentNotice struct {
	to       string
	decision upgrade.Status
}

type mockNotifier struct {
	sent []sentNotice
	err  error
}

func (m *mockNotifier) NotifyUpgradeDecision(ctx context.Context, to, name string, decision upgrade.Status) error {
	m.sent = append(m.sent, sentNotice{to: to, decision: decision})
	return m.err
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
