package ticket

import (
	"fmt"
	"time"

	"quickdesk/internal/shared/biztime"
)

// Upvote records that a user endorsed a ticket. One per (ticket, user).
type Upvote struct {
	ticketID  uint
	userID    uint
	createdAt time.Time
}

func NewUpvote(ticketID, userID uint) (*Upvote, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	return &Upvote{
		ticketID:  ticketID,
		userID:    userID,
		createdAt: biztime.NowUTC(),
	}, nil
}

func (u *Upvote) TicketID() uint {
	return u.ticketID
}

func (u *Upvote) UserID() uint {
	return u.userID
}

func (u *Upvote) CreatedAt() time.Time {
	return u.createdAt
}
