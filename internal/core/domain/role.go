package domain

// Role is a user's authorization tier. Exactly one role applies to any
// session, including an anonymous one.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleMarketer Role = "marketer"
	RoleAdmin    Role = "admin"
)

// AllRoles lists every role from least to most privileged.
var AllRoles = []Role{RoleCustomer, RoleMarketer, RoleAdmin}

// Rank orders roles for display only. It plays no part in permission checks.
func (r Role) Rank() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleMarketer:
		return 1
	default:
		return 0
	}
}

// ParseRole converts a string into a known role.
func ParseRole(s string) (Role, bool) {
	for _, r := range AllRoles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}
