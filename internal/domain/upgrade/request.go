// Package upgrade models requests from end-users to become agents.
package upgrade

import (
	"errors"
	"fmt"
	"time"

	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
)

// ErrNotPending is returned when a decision targets a request that has
// already been resolved.
var ErrNotPending = errors.New("request is not pending")

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// IsDecision reports whether s is a terminal outcome an admin may choose.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// Requester is the requesting user as resolved at read time.
type Requester struct {
	Name  string
	Email string
}

// Request is one end-user to agent upgrade request.
// pending moves to approved or rejected and never leaves those states.
type Request struct {
	id            uint
	userID        uint
	currentRole   authorization.UserRole
	requestedRole authorization.UserRole
	status        Status
	resolvedBy    *uint
	createdAt     time.Time
	updatedAt     time.Time
	requester     *Requester
}

// NewRequest opens a pending request. Only end-users may ask to become agents.
func NewRequest(userID uint, currentRole authorization.UserRole) (*Request, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if currentRole != authorization.RoleEndUser {
		return nil, fmt.Errorf("only end-users can request an upgrade")
	}

	now := biztime.NowUTC()
	return &Request{
		userID:        userID,
		currentRole:   authorization.RoleEndUser,
		requestedRole: authorization.RoleAgent,
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructRequest(
	id, userID uint,
	currentRole, requestedRole authorization.UserRole,
	status Status,
	resolvedBy *uint,
	createdAt, updatedAt time.Time,
	requester *Requester,
) (*Request, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid request status: %s", status)
	}

	return &Request{
		id:            id,
		userID:        userID,
		currentRole:   currentRole,
		requestedRole: requestedRole,
		status:        status,
		resolvedBy:    resolvedBy,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		requester:     requester,
	}, nil
}

func (r *Request) ID() uint {
	return r.id
}

func (r *Request) UserID() uint {
	return r.userID
}

func (r *Request) CurrentRole() authorization.UserRole {
	return r.currentRole
}

func (r *Request) RequestedRole() authorization.UserRole {
	return r.requestedRole
}

func (r *Request) Status() Status {
	return r.status
}

func (r *Request) ResolvedBy() *uint {
	return r.resolvedBy
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) UpdatedAt() time.Time {
	return r.updatedAt
}

// Requester is nil unless the request was loaded with its user.
func (r *Request) Requester() *Requester {
	return r.requester
}

func (r *Request) IsPending() bool {
	return r.status == StatusPending
}

func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// Resolve records the admin decision. Only pending requests can be resolved.
func (r *Request) Resolve(decision Status, adminID uint) error {
	if !decision.IsDecision() {
		return fmt.Errorf("invalid decision: %s", decision)
	}
	if !r.IsPending() {
		return fmt.Errorf("%w: already %s", ErrNotPending, r.status)
	}
	if adminID == 0 {
		return fmt.Errorf("admin ID is required")
	}

	r.status = decision
	r.resolvedBy = &adminID
	r.updatedAt = biztime.NowUTC()
	return nil
}
