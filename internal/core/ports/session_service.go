package ports

import (
	"context"

	"github.com/coursehub/storefront/internal/core/domain"
)

// SessionResolver turns verified token claims into the current session.
// It never fails: lookup problems surface as an anonymous session, and a
// lookup that outlives its deadline surfaces as a loading one.
type SessionResolver interface {
	Resolve(ctx context.Context, claims *domain.TokenClaims) domain.Session
}
