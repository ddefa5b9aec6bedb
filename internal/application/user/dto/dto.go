package dto

import (
	"time"

	"quickdesk/internal/domain/user"
)

// UserDTO never carries the password hash.
type UserDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Gender    string    `json:"gender"`
	Email     string    `json:"email"`
	Category  string    `json:"category"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionUserDTO is the user summary returned with a login token.
type SessionUserDTO struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

type LoginResult struct {
	Token string         `json:"token"`
	User  SessionUserDTO `json:"user"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Gender:    u.Gender(),
		Email:     u.Email(),
		Category:  u.Category(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func ToUserDTOList(users []*user.User) []*UserDTO {
	result := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, ToUserDTO(u))
	}
	return result
}
