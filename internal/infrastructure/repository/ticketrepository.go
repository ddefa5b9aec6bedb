package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/infrastructure/persistence/mappers"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/db"
	"quickdesk/internal/shared/errors"
)

const ticketSelect = "tickets.*, " +
	"COALESCE(creator.email, '') AS creator_email, " +
	"agent.email AS assigned_agent_email"

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

// withEmails joins the creator and assignee so their emails come back with the ticket.
func (r *TicketRepository) withEmails(tx *gorm.DB) *gorm.DB {
	return tx.Table("tickets").
		Select(ticketSelect).
		Joins("LEFT JOIN users creator ON creator.id = tickets.creator_id").
		Joins("LEFT JOIN users agent ON agent.id = tickets.assigned_agent_id")
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var rows []models.TicketRow
	tx := db.GetTxFromContext(ctx, r.db)

	if err := r.withEmails(tx).Where("tickets.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return r.mapper.RowToDomain(&rows[0])
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	var rows []models.TicketRow
	tx := db.GetTxFromContext(ctx, r.db)

	query := r.withEmails(tx)

	if filter.Status != nil {
		query = query.Where("tickets.status = ?", filter.Status.String())
	}
	if filter.CreatorID != nil {
		query = query.Where("tickets.creator_id = ?", *filter.CreatorID)
	}
	if filter.Tag != "" {
		// tags are stored as a JSON array; match the encoded element
		encoded, err := json.Marshal(filter.Tag)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tag filter: %w", err)
		}
		query = query.Where("tickets.tags LIKE ? ESCAPE '!'", containsPattern(string(encoded)))
	}
	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		pattern := containsPattern(q)
		query = query.Where(
			"LOWER(tickets.question) LIKE ? ESCAPE '!' OR LOWER(tickets.description) LIKE ? ESCAPE '!' OR LOWER(tickets.tags) LIKE ? ESCAPE '!'",
			pattern, pattern, pattern,
		)
	}

	if err := query.Order("tickets.created_at DESC, tickets.id DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.RowToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		UpdateColumns(map[string]interface{}{
			"status":            model.Status,
			"assigned_agent_id": model.AssignedAgentID,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket status: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) IncrementConversationCount(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).
		Where("id = ?", ticketID).
		UpdateColumns(map[string]interface{}{
			"conversation_count": gorm.Expr("conversation_count + ?", 1),
			"updated_at":         nowMilli(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to increment conversation count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Ticket not found")
	}

	return nil
}

func (r *TicketRepository) IncrementUpvoteCount(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).
		Where("id = ?", ticketID).
		UpdateColumn("upvote_count", gorm.Expr("upvote_count + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("failed to increment upvote count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Ticket not found")
	}

	return nil
}

// likeEscaper escapes LIKE wildcards with '!', which needs no quoting in
// either mysql or sqlite.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern builds a LIKE pattern matching s literally anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
