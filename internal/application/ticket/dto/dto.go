package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"quickdesk/internal/domain/ticket"
)

// TicketDTO is the staff and owner view of a ticket.
type TicketDTO struct {
	ID                uint        `json:"id"`
	Question          string      `json:"question"`
	Description       string      `json:"description"`
	DescriptionHTML   string      `json:"description_html,omitempty"`
	Tags              []string    `json:"tags"`
	Username          string      `json:"username"`
	Status            string      `json:"status"`
	UpvoteCount       int         `json:"upvote_count"`
	ConversationCount int         `json:"conversation_count"`
	AssignedAgent     null.String `json:"assigned_agent" swaggertype:"string"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// PublicTicketDTO is the anonymous view. It never names the assigned agent.
type PublicTicketDTO struct {
	ID                uint      `json:"id"`
	Question          string    `json:"question"`
	Description       string    `json:"description"`
	Tags              []string  `json:"tags"`
	Username          string    `json:"username"`
	Status            string    `json:"status"`
	UpvoteCount       int       `json:"upvote_count"`
	ConversationCount int       `json:"conversation_count"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CommentAuthorDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type CommentDTO struct {
	ID        uint              `json:"id"`
	TicketID  uint              `json:"ticket_id"`
	UserID    uint              `json:"user_id"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"created_at"`
	Users     *CommentAuthorDTO `json:"users"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:                t.ID(),
		Question:          t.Question(),
		Description:       t.Description(),
		Tags:              t.Tags(),
		Username:          t.CreatorEmail(),
		Status:            t.Status().String(),
		UpvoteCount:       t.UpvoteCount(),
		ConversationCount: t.ConversationCount(),
		AssignedAgent:     null.StringFromPtr(t.AssignedAgentEmail()),
		CreatedAt:         t.CreatedAt(),
		UpdatedAt:         t.UpdatedAt(),
	}
}

func ToTicketDTOList(tickets []*ticket.Ticket) []*TicketDTO {
	result := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, ToTicketDTO(t))
	}
	return result
}

// ToPublic drops the staff-only fields.
func (d *TicketDTO) ToPublic() *PublicTicketDTO {
	return &PublicTicketDTO{
		ID:                d.ID,
		Question:          d.Question,
		Description:       d.Description,
		Tags:              d.Tags,
		Username:          d.Username,
		Status:            d.Status,
		UpvoteCount:       d.UpvoteCount,
		ConversationCount: d.ConversationCount,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func ToPublicTicketDTOList(tickets []*TicketDTO) []*PublicTicketDTO {
	result := make([]*PublicTicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, t.ToPublic())
	}
	return result
}

func ToCommentDTO(c *ticket.Comment) *CommentDTO {
	if c == nil {
		return nil
	}

	result := &CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Message:   c.Message(),
		CreatedAt: c.CreatedAt(),
	}
	if a := c.Author(); a != nil {
		result.Users = &CommentAuthorDTO{
			Name:  a.Name,
			Email: a.Email,
			Role:  a.Role.String(),
		}
	}
	return result
}

func ToCommentDTOList(comments []*ticket.Comment) []*CommentDTO {
	result := make([]*CommentDTO, 0, len(comments))
	for _, c := range comments {
		result = append(result, ToCommentDTO(c))
	}
	return result
}
