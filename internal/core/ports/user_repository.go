package ports

import (
	"context"

	"github.com/coursehub/storefront/internal/core/domain"
)

// ListUsersFilter carries the query parameters for the admin user listing.
type ListUsersFilter struct {
	UserType string // optional: customer, staff or admin
	Search   string // optional: partial match on email or name
	Page     int    // 1-based
	Limit    int
}

// UserRepository defines persistence operations for storefront accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, name, phone string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// UpdateAccess overwrites the three authorization fields in one write.
	UpdateAccess(ctx context.Context, id string, flags domain.AccessFlags) (*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
}
