package authorization

type UserRole string

const (
	RoleEndUser UserRole = "end-user"
	RoleAgent   UserRole = "agent"
	RoleAdmin   UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role may work the agent queue.
func (r UserRole) IsStaff() bool {
	return r == RoleAgent || r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleEndUser, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// In reports whether r is one of allowed.
func (r UserRole) In(allowed ...UserRole) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// ParseUserRole maps unknown values to the least privileged role.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleEndUser
}
