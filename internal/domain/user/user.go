package user

import (
	"fmt"
	"strings"
	"time"

	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
)

// User is a registered account. The password hash never leaves the
// application layer.
type User struct {
	id           uint
	name         string
	gender       string
	email        string
	passwordHash string
	category     string
	role         authorization.UserRole
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an account. Every new account starts as an end-user.
func NewUser(name, gender, email, passwordHash, category string) (*User, error) {
	name = strings.TrimSpace(name)
	gender = strings.TrimSpace(gender)
	category = strings.TrimSpace(category)

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name cannot exceed 100 characters")
	}
	if gender == "" {
		return nil, fmt.Errorf("gender is required")
	}
	if category == "" {
		return nil, fmt.Errorf("category is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &User{
		name:         name,
		gender:       gender,
		email:        normalized,
		passwordHash: passwordHash,
		category:     category,
		role:         authorization.RoleEndUser,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence
func ReconstructUser(
	id uint,
	name, gender, email, passwordHash, category string,
	role authorization.UserRole,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		name:         name,
		gender:       gender,
		email:        email,
		passwordHash: passwordHash,
		category:     category,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Gender() string {
	return u.gender
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Category() string {
	return u.category
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateProfile replaces the editable profile fields. Email and role are not editable here.
func (u *User) UpdateProfile(name, gender, category string) error {
	name = strings.TrimSpace(name)
	gender = strings.TrimSpace(gender)
	category = strings.TrimSpace(category)

	if name == "" || gender == "" || category == "" {
		return fmt.Errorf("name, gender and category are required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name cannot exceed 100 characters")
	}

	u.name = name
	u.gender = gender
	u.category = category
	u.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeRole sets the role. It reports whether anything changed.
func (u *User) ChangeRole(role authorization.UserRole) (bool, error) {
	if !role.IsValid() {
		return false, fmt.Errorf("invalid role: %s", role)
	}
	if u.role == role {
		return false, nil
	}
	u.role = role
	u.updatedAt = biztime.NowUTC()
	return true, nil
}

// Promote moves an end-user to agent. Staff accounts are left untouched.
func (u *User) Promote() bool {
	if u.role != authorization.RoleEndUser {
		return false
	}
	changed, _ := u.ChangeRole(authorization.RoleAgent)
	return changed
}
