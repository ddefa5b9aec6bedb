package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/infrastructure/persistence/mappers"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/db"
	"quickdesk/internal/shared/logger"
)

// UserRepository implements user.Repository on gorm
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := userEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", model.ID, "email", model.Email)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", normalizeEmail(email)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.UserModel{}).Where("email = ?", normalizeEmail(email)).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

// UpdateProfile writes the editable profile columns. The role column is
// left alone so a concurrent role change is never overwritten.
func (r *UserRepository) UpdateProfile(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)
	return r.updateColumns(ctx, model.ID, map[string]interface{}{
		"name":       model.Name,
		"gender":     model.Gender,
		"category":   model.Category,
		"updated_at": model.UpdatedAt,
	})
}

// UpdateRole writes the role column only.
func (r *UserRepository) UpdateRole(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)
	return r.updateColumns(ctx, model.ID, map[string]interface{}{
		"role":       model.Role,
		"updated_at": model.UpdatedAt,
	})
}

func (r *UserRepository) updateColumns(ctx context.Context, id uint, columns map[string]interface{}) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserModel{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	// RowsAffected may be 0 when the values are unchanged.

	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var list []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("created_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
