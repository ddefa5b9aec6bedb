package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quickdesk/internal/domain/permission"
	"quickdesk/internal/shared/authorization"
	sharedlogger "quickdesk/internal/shared/logger"
)

func TestEnforcer_DefaultPolicies(t *testing.T) {
	e, err := NewMemoryEnforcer(sharedlogger.NewDiscardLogger())
	require.NoError(t, err)
	require.NoError(t, SeedDefaultPolicies(e))
	// seeding twice is harmless
	require.NoError(t, SeedDefaultPolicies(e))

	tests := []struct {
		role     authorization.UserRole
		resource string
		action   string
		want     bool
	}{
		{authorization.RoleEndUser, permission.ResourceTickets, permission.ActionManage, false},
		{authorization.RoleAgent, permission.ResourceTickets, permission.ActionManage, true},
		{authorization.RoleAdmin, permission.ResourceTickets, permission.ActionManage, true},
		{authorization.RoleEndUser, permission.ResourceCategories, permission.ActionCreate, false},
		{authorization.RoleAgent, permission.ResourceCategories, permission.ActionCreate, true},
		{authorization.RoleAgent, permission.ResourceUpgradeRequests, permission.ActionResolve, false},
		{authorization.RoleAdmin, permission.ResourceUpgradeRequests, permission.ActionResolve, true},
		{authorization.RoleAgent, permission.ResourceUsers, permission.ActionManage, false},
		{authorization.RoleAdmin, permission.ResourceUsers, permission.ActionManage, true},
	}

	for _, tt := range tests {
		t.Run(tt.role.String()+" "+tt.resource+":"+tt.action, func(t *testing.T) {
			got, err := e.Enforce(tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnforcer_GormAdapterPersistsPolicies(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	e, err := NewEnforcer(db, sharedlogger.NewDiscardLogger())
	require.NoError(t, err)
	require.NoError(t, SeedDefaultPolicies(e))

	// a second enforcer over the same store sees the seeded rules
	reloaded, err := NewEnforcer(db, sharedlogger.NewDiscardLogger())
	require.NoError(t, err)

	allowed, err := reloaded.Enforce(authorization.RoleAgent, permission.ResourceTickets, permission.ActionManage)
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, reloaded.RemovePolicy(authorization.RoleAgent, permission.ResourceTickets, permission.ActionManage))
	require.NoError(t, e.LoadPolicy())

	allowed, err = e.Enforce(authorization.RoleAgent, permission.ResourceTickets, permission.ActionManage)
	require.NoError(t, err)
	assert.False(t, allowed)
}
