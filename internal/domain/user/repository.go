package user

import "context"

// Repository defines the interface for user data operations.
// Lookups return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// UpdateProfile persists name, gender and category only.
	UpdateProfile(ctx context.Context, user *User) error
	// UpdateRole persists the role only.
	UpdateRole(ctx context.Context, user *User) error
	// List returns every user, newest first.
	List(ctx context.Context) ([]*User, error)
}
