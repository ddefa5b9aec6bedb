package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/infrastructure/persistence/mappers"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/db"
)

type UpvoteRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewUpvoteRepository(db *gorm.DB) *UpvoteRepository {
	return &UpvoteRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

// Save inserts the upvote. The unique index on (ticket_id, user_id) rejects repeats.
func (r *UpvoteRepository) Save(ctx context.Context, u *ticket.Upvote) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(r.mapper.UpvoteToModel(u)).Error; err != nil {
		return fmt.Errorf("failed to save upvote: %w", err)
	}
	return nil
}

func (r *UpvoteRepository) Exists(ctx context.Context, ticketID, userID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.UpvoteModel{}).
		Where("ticket_id = ? AND user_id = ?", ticketID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check upvote: %w", err)
	}
	return count > 0, nil
}
