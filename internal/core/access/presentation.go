package access

import "github.com/coursehub/storefront/internal/core/domain"

// roleLabel holds the UI labelling for a role. None of it carries any
// authorization weight.
type roleLabel struct {
	displayName string
	color       string
	icon        string
}

var labels = map[domain.Role]roleLabel{
	domain.RoleCustomer: {displayName: "مشتری", color: "gray", icon: "user"},
	domain.RoleMarketer: {displayName: "بازاریاب", color: "blue", icon: "megaphone"},
	domain.RoleAdmin:    {displayName: "مدیر", color: "red", icon: "shield"},
}

func label(r domain.Role) roleLabel {
	if l, ok := labels[r]; ok {
		return l
	}
	return labels[domain.RoleCustomer]
}

// GetRoleDisplayName returns the localized name of r.
func GetRoleDisplayName(r domain.Role) string { return label(r).displayName }

// GetRoleColor returns the theme color token for r.
func GetRoleColor(r domain.Role) string { return label(r).color }

// GetRoleIcon returns the icon identifier for r.
func GetRoleIcon(r domain.Role) string { return label(r).icon }

// Profile bundles everything a badge or menu needs to render for one user.
type Profile struct {
	Role        domain.Role          `json:"role"`
	DisplayName string               `json:"display_name"`
	Color       string               `json:"color"`
	Icon        string               `json:"icon"`
	Permissions domain.PermissionSet `json:"permissions"`
}

// Describe resolves u into a Profile.
func Describe(u *domain.User) Profile {
	r := DeriveRole(u)
	l := label(r)
	return Profile{
		Role:        r,
		DisplayName: l.displayName,
		Color:       l.color,
		Icon:        l.icon,
		Permissions: PermissionsFor(r),
	}
}
