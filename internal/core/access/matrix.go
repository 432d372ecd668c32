package access

import "github.com/coursehub/storefront/internal/core/domain"

// matrix lists every capability for every role. Rows are written out in full
// rather than extending a lower role, so each row can be audited on its own.
var matrix = map[domain.Role]domain.PermissionSet{
	domain.RoleCustomer: {
		ViewCourses:     true,
		PurchaseCourses: true,
		AccessMyCourses: true,

		CreateReferralCodes: false,
		ViewOwnCommissions:  false,
		AccessMarketerPanel: false,

		ManageUsers:        false,
		ManageCourses:      false,
		ViewAllCommissions: false,
		AccessAdminPanel:   false,

		EditProfile:          true,
		ViewPurchaseHistory:  true,
		ViewCertificates:     true,
		ViewLearningProgress: true,
	},
	domain.RoleMarketer: {
		ViewCourses:     true,
		PurchaseCourses: true,
		AccessMyCourses: true,

		CreateReferralCodes: true,
		ViewOwnCommissions:  true,
		AccessMarketerPanel: true,

		ManageUsers:        false,
		ManageCourses:      false,
		ViewAllCommissions: false,
		AccessAdminPanel:   false,

		EditProfile:          true,
		ViewPurchaseHistory:  true,
		ViewCertificates:     true,
		ViewLearningProgress: true,
	},
	domain.RoleAdmin: {
		ViewCourses:     true,
		PurchaseCourses: true,
		AccessMyCourses: true,

		CreateReferralCodes: true,
		ViewOwnCommissions:  true,
		AccessMarketerPanel: true,

		ManageUsers:        true,
		ManageCourses:      true,
		ViewAllCommissions: true,
		AccessAdminPanel:   true,

		EditProfile:          true,
		ViewPurchaseHistory:  true,
		ViewCertificates:     true,
		ViewLearningProgress: true,
	},
}

// PermissionsFor returns the permission set of r. The result is a copy; the
// table itself cannot be modified through it. A role outside the enumeration
// gets the customer row.
func PermissionsFor(r domain.Role) domain.PermissionSet {
	if p, ok := matrix[r]; ok {
		return p
	}
	return matrix[domain.RoleCustomer]
}
