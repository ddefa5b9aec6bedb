package ticket

import (
	"fmt"
	"strings"
	"time"

	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
)

const maxMessageLength = 5000

// Author is the comment writer as resolved at read time.
type Author struct {
	Name  string
	Email string
	Role  authorization.UserRole
}

// Comment is one message in a ticket conversation. Comments are append-only.
type Comment struct {
	id        uint
	ticketID  uint
	userID    uint
	message   string
	createdAt time.Time
	author    *Author
}

func NewComment(ticketID, userID uint, message string) (*Comment, error) {
	message = strings.TrimSpace(message)

	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if message == "" {
		return nil, fmt.Errorf("comment cannot be empty")
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("comment exceeds maximum length of %d characters", maxMessageLength)
	}

	return &Comment{
		ticketID:  ticketID,
		userID:    userID,
		message:   message,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructComment(id, ticketID, userID uint, message string, createdAt time.Time, author *Author) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		message:   message,
		createdAt: createdAt,
		author:    author,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) UserID() uint {
	return c.userID
}

func (c *Comment) Message() string {
	return c.message
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

// Author is nil unless the comment was loaded with its writer.
func (c *Comment) Author() *Author {
	return c.author
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// SetAuthor attaches the resolved writer.
func (c *Comment) SetAuthor(author *Author) {
	c.author = author
}
