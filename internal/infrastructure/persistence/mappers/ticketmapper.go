package mappers

import (
	"fmt"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
)

// TicketMapper handles the conversion between ticket entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	// RowToDomain converts a ticket joined with creator and assignee emails.
	RowToDomain(row *models.TicketRow) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentRowToDomain(row *models.CommentRow) (*ticket.Comment, error)
	UpvoteToModel(u *ticket.Upvote) *models.UpvoteModel
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:                t.ID(),
		Question:          t.Question(),
		Description:       t.Description(),
		Tags:              t.Tags(),
		CreatorID:         t.CreatorID(),
		Status:            t.Status().String(),
		UpvoteCount:       t.UpvoteCount(),
		ConversationCount: t.ConversationCount(),
		AssignedAgentID:   t.AssignedAgentID(),
		CreatedAt:         biztime.ToMilli(t.CreatedAt()),
		UpdatedAt:         biztime.ToMilli(t.UpdatedAt()),
	}
}

func (m *TicketMapperImpl) RowToDomain(row *models.TicketRow) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", row.ID, err)
	}

	// an assignee whose account is gone keeps the id but has no email
	var agentEmail *string
	if row.AssignedAgentID != nil && row.AssignedAgentEmail != nil {
		email := *row.AssignedAgentEmail
		agentEmail = &email
	}

	return ticket.ReconstructTicket(
		row.ID,
		row.Question,
		row.Description,
		[]string(row.Tags),
		row.CreatorID,
		row.CreatorEmail,
		status,
		row.UpvoteCount,
		row.ConversationCount,
		row.AssignedAgentID,
		agentEmail,
		biztime.FromMilli(row.CreatedAt),
		biztime.FromMilli(row.UpdatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Message:   c.Message(),
		CreatedAt: biztime.ToMilli(c.CreatedAt()),
	}
}

func (m *TicketMapperImpl) CommentRowToDomain(row *models.CommentRow) (*ticket.Comment, error) {
	var author *ticket.Author
	if row.AuthorEmail != "" {
		author = &ticket.Author{
			Name:  row.AuthorName,
			Email: row.AuthorEmail,
			Role:  authorization.UserRole(row.AuthorRole),
		}
	}
	return ticket.ReconstructComment(
		row.ID,
		row.TicketID,
		row.UserID,
		row.Message,
		biztime.FromMilli(row.CreatedAt),
		author,
	)
}

func (m *TicketMapperImpl) UpvoteToModel(u *ticket.Upvote) *models.UpvoteModel {
	return &models.UpvoteModel{
		TicketID:  u.TicketID(),
		UserID:    u.UserID(),
		CreatedAt: biztime.ToMilli(u.CreatedAt()),
	}
}
