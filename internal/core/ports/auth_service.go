package ports

import (
	"context"
	"time"

	"github.com/coursehub/storefront/internal/core/domain"
)

// RegisterInput carries signup data. New accounts are always customers.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, claims *domain.TokenClaims) error
	ChangePassword(ctx context.Context, userID, current, next string) error
	// Authenticate verifies a raw bearer token and checks it has not been
	// revoked.
	Authenticate(ctx context.Context, token string) (*domain.TokenClaims, error)
}

// RevocationStore remembers tokens that were logged out before expiry.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
