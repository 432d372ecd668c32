package domain

import "time"

// Values of User.UserType. The categorical field mirrors the boolean flags
// and is expected to agree with them.
const (
	UserTypeCustomer = "customer"
	UserTypeStaff    = "staff"
	UserTypeAdmin    = "admin"
)

// User is a storefront account as returned by the profile lookup.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone,omitempty"`
	PasswordHash  string    `json:"-"`
	IsAdminUser   bool      `json:"is_admin_user"`
	IsStaffMember bool      `json:"is_staff_member"`
	UserType      string    `json:"user_type"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AccessFlags are the authorization-relevant fields of a User.
type AccessFlags struct {
	IsAdminUser   bool
	IsStaffMember bool
	UserType      string
}

// TokenClaims is the verified content of a session token.
type TokenClaims struct {
	UserID    string
	Email     string
	TokenID   string
	ExpiresAt time.Time
}
