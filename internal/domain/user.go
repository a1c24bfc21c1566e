package domain

// Role determines a user's baseline authority independent of ownership.
type Role string

const (
	RoleEmployee Role = "employee" // Regular team member
	RoleManager  Role = "manager"  // Team manager
	RoleAdmin    Role = "admin"    // Administrator
)

// AllRoles returns all valid role values.
func AllRoles() []Role {
	return []Role{RoleEmployee, RoleManager, RoleAdmin}
}

// IsValid returns true if the role is a known value.
// Unknown roles are still usable data; authorization treats them as
// least-privileged rather than rejecting them.
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the role.
func (r Role) Display() string {
	switch r {
	case RoleEmployee:
		return "Employee"
	case RoleManager:
		return "Manager"
	case RoleAdmin:
		return "Admin"
	default:
		return string(r)
	}
}

// User is an authenticated team member. Identity is established by an
// external session system; the core never mutates users.
// Fields are ordered to minimize memory padding.
type User struct {
	Name   string `json:"name"`             // Display name
	Avatar string `json:"avatar,omitempty"` // Opaque avatar reference
	Role   Role   `json:"role"`             // Baseline authority
	ID     int    `json:"id"`               // Unique user ID
}
