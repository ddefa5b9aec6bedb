package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		gender   string
		email    string
		category string
		wantErr  bool
	}{
		{"valid", "Ada", "female", "Ada@Example.com", "billing", false},
		{"missing name", " ", "female", "ada@example.com", "billing", true},
		{"missing gender", "Ada", "", "ada@example.com", "billing", true},
		{"missing category", "Ada", "female", "ada@example.com", "", true},
		{"bad email", "Ada", "female", "not-an-email", "billing", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.userName, tt.gender, tt.email, "hash", tt.category)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ada@example.com", u.Email())
			assert.Equal(t, authorization.RoleEndUser, u.Role())
			assert.Equal(t, "hash", u.PasswordHash())
		})
	}
}

func TestUser_UpdateProfile(t *testing.T) {
	u, err := NewUser("Ada", "female", "ada@example.com", "hash", "billing")
	require.NoError(t, err)

	require.NoError(t, u.UpdateProfile("Ada L", "female", "hardware"))
	assert.Equal(t, "Ada L", u.Name())
	assert.Equal(t, "hardware", u.Category())
	assert.Equal(t, "ada@example.com", u.Email())

	assert.Error(t, u.UpdateProfile("", "female", "hardware"))
}

func TestUser_Promote(t *testing.T) {
	u, err := ReconstructUser(1, "Ada", "female", "ada@example.com", "hash", "billing",
		authorization.RoleEndUser, time.Now(), time.Now())
	require.NoError(t, err)

	assert.True(t, u.Promote())
	assert.Equal(t, authorization.RoleAgent, u.Role())
	assert.False(t, u.Promote())

	admin, err := ReconstructUser(2, "Root", "n/a", "root@example.com", "hash", "ops",
		authorization.RoleAdmin, time.Now(), time.Now())
	require.NoError(t, err)
	assert.False(t, admin.Promote())
	assert.Equal(t, authorization.RoleAdmin, admin.Role())
}

func TestUser_ChangeRole(t *testing.T) {
	u, err := ReconstructUser(1, "Ada", "female", "ada@example.com", "hash", "billing",
		authorization.RoleAgent, time.Now(), time.Now())
	require.NoError(t, err)

	changed, err := u.ChangeRole(authorization.RoleEndUser)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = u.ChangeRole(authorization.RoleEndUser)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = u.ChangeRole("root")
	assert.Error(t, err)
}
