package dto

import (
	"time"

	"quickdesk/internal/domain/upgrade"
)

type RequesterDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RequestDTO struct {
	ID            uint          `json:"id"`
	UserID        uint          `json:"user_id"`
	CurrentRole   string        `json:"current_role"`
	RequestedRole string        `json:"requested_role"`
	Status        string        `json:"status"`
	ResolvedBy    *uint         `json:"resolved_by,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Users         *RequesterDTO `json:"users"`
}

func ToRequestDTO(r *upgrade.Request) *RequestDTO {
	if r == nil {
		return nil
	}

	result := &RequestDTO{
		ID:            r.ID(),
		UserID:        r.UserID(),
		CurrentRole:   r.CurrentRole().String(),
		RequestedRole: r.RequestedRole().String(),
		Status:        r.Status().String(),
		ResolvedBy:    r.ResolvedBy(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
	if req := r.Requester(); req != nil {
		result.Users = &RequesterDTO{Name: req.Name, Email: req.Email}
	}
	return result
}

func ToRequestDTOList(requests []*upgrade.Request) []*RequestDTO {
	result := make([]*RequestDTO, 0, len(requests))
	for _, r := range requests {
		result = append(result, ToRequestDTO(r))
	}
	return result
}
