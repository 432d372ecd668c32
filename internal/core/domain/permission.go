package domain

// Capability names a single boolean permission.
type Capability string

// Course access.
const (
	CapViewCourses     Capability = "view_courses"
	CapPurchaseCourses Capability = "purchase_courses"
	CapAccessMyCourses Capability = "access_my_courses"
)

// Marketer features.
const (
	CapCreateReferralCodes Capability = "create_referral_codes"
	CapViewOwnCommissions  Capability = "view_own_commissions"
	CapAccessMarketerPanel Capability = "access_marketer_panel"
)

// Admin features.
const (
	CapManageUsers        Capability = "manage_users"
	CapManageCourses      Capability = "manage_courses"
	CapViewAllCommissions Capability = "view_all_commissions"
	CapAccessAdminPanel   Capability = "access_admin_panel"
)

// Profile and account features.
const (
	CapEditProfile          Capability = "edit_profile"
	CapViewPurchaseHistory  Capability = "view_purchase_history"
	CapViewCertificates     Capability = "view_certificates"
	CapViewLearningProgress Capability = "view_learning_progress"
)

// AllCapabilities is the closed set of capability names, in table order.
var AllCapabilities = []Capability{
	CapViewCourses,
	CapPurchaseCourses,
	CapAccessMyCourses,
	CapCreateReferralCodes,
	CapViewOwnCommissions,
	CapAccessMarketerPanel,
	CapManageUsers,
	CapManageCourses,
	CapViewAllCommissions,
	CapAccessAdminPanel,
	CapEditProfile,
	CapViewPurchaseHistory,
	CapViewCertificates,
	CapViewLearningProgress,
}

// PermissionSet is the full record of capabilities for one role. Every role
// shares this exact shape.
type PermissionSet struct {
	ViewCourses     bool `json:"view_courses"`
	PurchaseCourses bool `json:"purchase_courses"`
	AccessMyCourses bool `json:"access_my_courses"`

	CreateReferralCodes bool `json:"create_referral_codes"`
	ViewOwnCommissions  bool `json:"view_own_commissions"`
	AccessMarketerPanel bool `json:"access_marketer_panel"`

	ManageUsers        bool `json:"manage_users"`
	ManageCourses      bool `json:"manage_courses"`
	ViewAllCommissions bool `json:"view_all_commissions"`
	AccessAdminPanel   bool `json:"access_admin_panel"`

	EditProfile          bool `json:"edit_profile"`
	ViewPurchaseHistory  bool `json:"view_purchase_history"`
	ViewCertificates     bool `json:"view_certificates"`
	ViewLearningProgress bool `json:"view_learning_progress"`
}

// Has reports whether the set grants c. Unknown names are never granted.
func (p PermissionSet) Has(c Capability) bool {
	switch c {
	case CapViewCourses:
		return p.ViewCourses
	case CapPurchaseCourses:
		return p.PurchaseCourses
	case CapAccessMyCourses:
		return p.AccessMyCourses
	case CapCreateReferralCodes:
		return p.CreateReferralCodes
	case CapViewOwnCommissions:
		return p.ViewOwnCommissions
	case CapAccessMarketerPanel:
		return p.AccessMarketerPanel
	case CapManageUsers:
		return p.ManageUsers
	case CapManageCourses:
		return p.ManageCourses
	case CapViewAllCommissions:
		return p.ViewAllCommissions
	case CapAccessAdminPanel:
		return p.AccessAdminPanel
	case CapEditProfile:
		return p.EditProfile
	case CapViewPurchaseHistory:
		return p.ViewPurchaseHistory
	case CapViewCertificates:
		return p.ViewCertificates
	case CapViewLearningProgress:
		return p.ViewLearningProgress
	}
	return false
}

// Granted returns the granted capabilities in table order.
func (p PermissionSet) Granted() []Capability {
	out := make([]Capability, 0, len(AllCapabilities))
	for _, c := range AllCapabilities {
		if p.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
