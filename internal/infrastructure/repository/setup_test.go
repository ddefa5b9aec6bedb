package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/authorization"
	sharedlogger "quickdesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection to :memory: would be a fresh database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func createTestUser(t *testing.T, repo *UserRepository, email string, role authorization.UserRole) *user.User {
	t.Helper()

	u, err := user.NewUser("Test User", "other", email, "hash", "general")
	require.NoError(t, err)
	if role != authorization.RoleEndUser {
		_, err = u.ChangeRole(role)
		require.NoError(t, err)
	}
	require.NoError(t, repo.Create(context.Background(), u))

	// keep created_at strictly increasing between fixtures
	time.Sleep(2 * time.Millisecond)
	return u
}

func newTestUserRepository(db *gorm.DB) *UserRepository {
	return NewUserRepository(db, sharedlogger.NewDiscardLogger())
}
