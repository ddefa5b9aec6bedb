package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quickdesk/internal/shared/biztime"
)

const maxNameLength = 100

// Category is a free-text label. Names are not unique.
type Category struct {
	id        uint
	name      string
	createdAt time.Time
}

func NewCategory(name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("category name exceeds maximum length of %d characters", maxNameLength)
	}
	return &Category{name: name, createdAt: biztime.NowUTC()}, nil
}

func ReconstructCategory(id uint, name string, createdAt time.Time) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	return &Category{id: id, name: name, createdAt: createdAt}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

type Repository interface {
	Save(ctx context.Context, category *Category) error
	// List returns categories in creation order.
	List(ctx context.Context) ([]*Category, error)
}
