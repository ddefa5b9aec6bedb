package usecases

import (
	"context"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                       func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc                    func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc                       func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error)
	UpdateStatusFunc               func(ctx context.Context, t *ticket.Ticket) error
	IncrementConversationCountFunc func(ctx context.Context, ticketID uint) error
	IncrementUpvoteCountFunc       func(ctx context.Context, ticketID uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) UpdateStatus(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) IncrementConversationCount(ctx context.Context, ticketID uint) error {
	if m.IncrementConversationCountFunc != nil {
		return m.IncrementConversationCountFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) IncrementUpvoteCount(ctx context.Context, ticketID uint) error {
	if m.IncrementUpvoteCountFunc != nil {
		return m.IncrementUpvoteCountFunc(ctx, ticketID)
	}
	return nil
}

type mockCommentRepository struct {
	SaveFunc         func(ctx context.Context, comment *ticket.Comment) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUpvoteRepository struct {
	SaveFunc   func(ctx context.Context, upvote *ticket.Upvote) error
	ExistsFunc func(ctx context.Context, ticketID, userID uint) (bool, error)
}

func (m *mockUpvoteRepository) Save(ctx context.Context, upvote *ticket.Upvote) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, upvote)
	}
	return nil
}

func (m *mockUpvoteRepository) Exists(ctx context.Context, ticketID, userID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, ticketID, userID)
	}
	return false, nil
}

// mockTxManager runs the callback inline and records whether it was used.
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockRenderer struct {
	RenderFunc func(source string) (string, error)
}

func (m *mockRenderer) Render(source string) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(source)
	}
	return "<p>" + source + "</p>\n", nil
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
