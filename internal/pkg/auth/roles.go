package auth

// Roles known to the platform
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleContractor = "contractor"
	RoleClient     = "client"
)

// Caller identifies the authenticated user of a request
type Caller struct {
	UserID string
	Role   string
	Email  string
}

// IsStaff reports whether the caller is an admin or a manager
func (c Caller) IsStaff() bool {
	return c.Role == RoleAdmin || c.Role == RoleManager
}

// HasRole reports whether the caller holds one of the given roles
func (c Caller) HasRole(roles ...string) bool {
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}

// ValidRole reports whether role is one of the platform roles
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleContractor, RoleClient:
		return true
	}
	return false
}
