package upgrade

import "context"

type Repository interface {
	Save(ctx context.Context, request *Request) error
	// GetByID returns (nil, nil) when absent.
	GetByID(ctx context.Context, id uint) (*Request, error)
	HasPending(ctx context.Context, userID uint) (bool, error)
	// ListByStatus returns requests newest first with their requesters.
	ListByStatus(ctx context.Context, status Status) ([]*Request, error)
	// UpdateStatus persists status, resolver and updated_at.
	UpdateStatus(ctx context.Context, request *Request) error
}
