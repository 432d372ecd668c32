// Package access derives a user's role from account flags, looks up the
// role's permission set and turns it into render/deny decisions.
//
// Everything here is a pure function of the user passed in. Nothing is
// cached between calls, so a changed session yields changed answers on the
// next read.
package access

import "github.com/coursehub/storefront/internal/core/domain"

// DeriveRole maps a user, or its absence, to exactly one role. The first
// matching rule wins:
//
//	nil user                                   → customer
//	is_admin_user or user_type == "admin"      → admin
//	is_staff_member or user_type == "staff"    → marketer
//	anything else                              → customer
//
// The boolean flags are checked together with user_type in each rule, so an
// admin flag outranks a customer user_type.
func DeriveRole(u *domain.User) domain.Role {
	if u == nil {
		return domain.RoleCustomer
	}
	if u.IsAdminUser || u.UserType == domain.UserTypeAdmin {
		return domain.RoleAdmin
	}
	if u.IsStaffMember || u.UserType == domain.UserTypeStaff {
		return domain.RoleMarketer
	}
	return domain.RoleCustomer
}

// FlagsFor returns account flags that agree with r under DeriveRole. Use it
// when persisting a role change so both signals stay consistent.
func FlagsFor(r domain.Role) domain.AccessFlags {
	switch r {
	case domain.RoleAdmin:
		return domain.AccessFlags{IsAdminUser: true, IsStaffMember: true, UserType: domain.UserTypeAdmin}
	case domain.RoleMarketer:
		return domain.AccessFlags{IsStaffMember: true, UserType: domain.UserTypeStaff}
	default:
		return domain.AccessFlags{UserType: domain.UserTypeCustomer}
	}
}
