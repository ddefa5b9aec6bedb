// Package permission maps roles to the (resource, action) pairs they may perform.
package permission

import "quickdesk/internal/shared/authorization"

// Resources guarded by policy.
const (
	ResourceTickets         = "tickets"
	ResourceCategories      = "categories"
	ResourceUpgradeRequests = "upgrade_requests"
	ResourceUsers           = "users"
)

// Actions guarded by policy.
const (
	ActionManage  = "manage"
	ActionCreate  = "create"
	ActionResolve = "resolve"
)

// Policy grants role the action on resource.
type Policy struct {
	Role     authorization.UserRole
	Resource string
	Action   string
}

// DefaultPolicies is the policy set seeded when the store holds none of it.
func DefaultPolicies() []Policy {
	return []Policy{
		{authorization.RoleAgent, ResourceTickets, ActionManage},
		{authorization.RoleAdmin, ResourceTickets, ActionManage},
		{authorization.RoleAgent, ResourceCategories, ActionCreate},
		{authorization.RoleAdmin, ResourceCategories, ActionCreate},
		{authorization.RoleAdmin, ResourceUpgradeRequests, ActionResolve},
		{authorization.RoleAdmin, ResourceUsers, ActionManage},
	}
}

type PermissionEnforcer interface {
	Enforce(role authorization.UserRole, resource, action string) (bool, error)
	AddPolicy(role authorization.UserRole, resource, action string) error
	RemovePolicy(role authorization.UserRole, resource, action string) error
	LoadPolicy() error
}
