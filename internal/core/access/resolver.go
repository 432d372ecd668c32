package access

import "github.com/coursehub/storefront/internal/core/domain"

// GetRole returns the derived role of u.
func GetRole(u *domain.User) domain.Role {
	return DeriveRole(u)
}

// GetPermissions returns the full permission set for u's role.
func GetPermissions(u *domain.User) domain.PermissionSet {
	return PermissionsFor(DeriveRole(u))
}

// HasPermission reports whether u's role grants c.
func HasPermission(u *domain.User, c domain.Capability) bool {
	return GetPermissions(u).Has(c)
}

func IsRole(u *domain.User, r domain.Role) bool {
	return DeriveRole(u) == r
}

func IsAdmin(u *domain.User) bool    { return IsRole(u, domain.RoleAdmin) }
func IsMarketer(u *domain.User) bool { return IsRole(u, domain.RoleMarketer) }
func IsCustomer(u *domain.User) bool { return IsRole(u, domain.RoleCustomer) }

// CanAccessMarketerFeatures is answered from the matrix so it cannot drift
// from the access_marketer_panel flag.
func CanAccessMarketerFeatures(u *domain.User) bool {
	return HasPermission(u, domain.CapAccessMarketerPanel)
}

// CanAccessAdminFeatures is answered from the matrix so it cannot drift from
// the access_admin_panel flag.
func CanAccessAdminFeatures(u *domain.User) bool {
	return HasPermission(u, domain.CapAccessAdminPanel)
}
