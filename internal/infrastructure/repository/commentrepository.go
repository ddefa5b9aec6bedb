package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/infrastructure/persistence/mappers"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/biztime"
	"quickdesk/internal/shared/db"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var rows []models.CommentRow
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Table("ticket_comments").
		Select("ticket_comments.*, " +
			"COALESCE(users.name, '') AS author_name, " +
			"COALESCE(users.email, '') AS author_email, " +
			"COALESCE(users.role, '') AS author_role").
		Joins("LEFT JOIN users ON users.id = ticket_comments.user_id").
		Where("ticket_comments.ticket_id = ?", ticketID).
		Order("ticket_comments.created_at ASC, ticket_comments.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.CommentRowToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func nowMilli() int64 {
	return biztime.ToMilli(biztime.NowUTC())
}
