package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quickdesk/internal/domain/upgrade"
	"quickdesk/internal/infrastructure/persistence/mappers"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/db"
)

type UpgradeRequestRepository struct {
	db     *gorm.DB
	mapper mappers.UpgradeRequestMapper
}

func NewUpgradeRequestRepository(db *gorm.DB) *UpgradeRequestRepository {
	return &UpgradeRequestRepository{
		db:     db,
		mapper: mappers.NewUpgradeRequestMapper(),
	}
}

func (r *UpgradeRequestRepository) Save(ctx context.Context, req *upgrade.Request) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save upgrade request: %w", err)
	}

	return req.SetID(model.ID)
}

func (r *UpgradeRequestRepository) withRequester(tx *gorm.DB) *gorm.DB {
	return tx.Table("upgrade_requests").
		Select("upgrade_requests.*, " +
			"COALESCE(users.name, '') AS requester_name, " +
			"COALESCE(users.email, '') AS requester_email").
		Joins("LEFT JOIN users ON users.id = upgrade_requests.user_id")
}

func (r *UpgradeRequestRepository) GetByID(ctx context.Context, id uint) (*upgrade.Request, error) {
	var rows []models.UpgradeRequestRow
	tx := db.GetTxFromContext(ctx, r.db)

	if err := r.withRequester(tx).Where("upgrade_requests.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get upgrade request: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return r.mapper.RowToDomain(&rows[0])
}

func (r *UpgradeRequestRepository) HasPending(ctx context.Context, userID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.UpgradeRequestModel{}).
		Where("user_id = ? AND status = ?", userID, upgrade.StatusPending.String()).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check pending upgrade request: %w", err)
	}
	return count > 0, nil
}

func (r *UpgradeRequestRepository) ListByStatus(ctx context.Context, status upgrade.Status) ([]*upgrade.Request, error) {
	var rows []models.UpgradeRequestRow
	tx := db.GetTxFromContext(ctx, r.db)

	if err := r.withRequester(tx).
		Where("upgrade_requests.status = ?", status.String()).
		Order("upgrade_requests.created_at DESC, upgrade_requests.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list upgrade requests: %w", err)
	}

	requests := make([]*upgrade.Request, 0, len(rows))
	for i := range rows {
		req, err := r.mapper.RowToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// UpdateStatus only moves a request that is still pending in the store; a
// request resolved concurrently yields upgrade.ErrNotPending.
func (r *UpgradeRequestRepository) UpdateStatus(ctx context.Context, req *upgrade.Request) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UpgradeRequestModel{}).
		Where("id = ? AND status = ?", model.ID, string(upgrade.StatusPending)).
		UpdateColumns(map[string]interface{}{
			"status":      model.Status,
			"resolved_by": model.ResolvedBy,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update upgrade request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return upgrade.ErrNotPending
	}

	return nil
}
