package handler

import (
	"time"

	"github.com/coursehub/storefront/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Phone    string `json:"phone"    validate:"omitempty,max=20"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72"`
}

type listUsersRequest struct {
	Page     int    `query:"page"      validate:"omitempty,min=1"`
	Limit    int    `query:"limit"     validate:"omitempty,min=1"`
	UserType string `query:"user_type" validate:"omitempty,oneof=customer staff admin"`
	Search   string `query:"q"`
}

type assignRoleRequest struct {
	Role string `json:"role" validate:"required,role"`
}

type createReferralRequest struct {
	Code            string `json:"code"             validate:"omitempty,min=4,max=32,referral_code"`
	DiscountPercent int    `json:"discount_percent" validate:"required,min=1,max=100"`
}

// --- Response types ---

type userResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone,omitempty"`
	IsAdminUser   bool      `json:"is_admin_user"`
	IsStaffMember bool      `json:"is_staff_member"`
	UserType      string    `json:"user_type"`
	CreatedAt     time.Time `json:"created_at"`
}

type accessResponse struct {
	Role        domain.Role          `json:"role"`
	DisplayName string               `json:"display_name"`
	Color       string               `json:"color"`
	Icon        string               `json:"icon"`
	Permissions domain.PermissionSet `json:"permissions"`
}

type loginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	User      userResponse   `json:"user"`
	Access    accessResponse `json:"access"`
}

// meResponse is returned for every resolved session. User is null for
// anonymous callers, who still get the customer access profile.
type meResponse struct {
	User   *userResponse  `json:"user"`
	Access accessResponse `json:"access"`
}

type userWithAccessResponse struct {
	User   userResponse   `json:"user"`
	Access accessResponse `json:"access"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type adminUserResponse struct {
	userResponse
	Role domain.Role `json:"role"`
}

type listUsersResponse struct {
	Data       []adminUserResponse `json:"data"`
	Pagination paginationResponse  `json:"pagination"`
}

type referralLinks struct {
	Track string `json:"track"`
}

type referralCodeResponse struct {
	Code            string        `json:"code"`
	OwnerID         string        `json:"owner_id"`
	DiscountPercent int           `json:"discount_percent"`
	Visits          int64         `json:"visits"`
	Active          bool          `json:"active"`
	CreatedAt       time.Time     `json:"created_at"`
	Links           referralLinks `json:"_links"`
}

type listReferralCodesResponse struct {
	Data []referralCodeResponse `json:"data"`
}

type trackReferralResponse struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discount_percent"`
}
