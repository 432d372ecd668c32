package ports

import (
	"context"

	"github.com/coursehub/storefront/internal/core/domain"
)

// UpdateProfileInput holds the editable profile fields.
type UpdateProfileInput struct {
	Name  string
	Phone string
}

// ListUsersInput carries parameters for the admin listing endpoint.
type ListUsersInput struct {
	UserType string
	Search   string
	Page     int
	Limit    int
}

// ListUsersResult is one page of accounts.
type ListUsersResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type UserService interface {
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersResult, error)
	// AssignRole rewrites a user's account flags so that they derive to role.
	AssignRole(ctx context.Context, actorID, userID string, role domain.Role) (*domain.User, error)
}
