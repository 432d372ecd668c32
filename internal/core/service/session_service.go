package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/coursehub/storefront/internal/api/metrics"
	"github.com/coursehub/storefront/internal/core/domain"
	"github.com/coursehub/storefront/internal/core/ports"
)

// SessionService resolves the current user for a request. The role is never
// taken from the token; the stored profile is looked up every time.
type SessionService struct {
	repo    ports.UserRepository
	timeout time.Duration
	logger  zerolog.Logger
}

func NewSessionService(repo ports.UserRepository, timeout time.Duration, logger zerolog.Logger) *SessionService {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &SessionService{repo: repo, timeout: timeout, logger: logger}
}

// Resolve maps claims to a session. Missing claims, a missing profile or a
// failed lookup yield an anonymous session. A lookup that does not finish
// within the timeout yields a loading session so callers can retry instead
// of treating the user as anonymous.
func (s *SessionService) Resolve(ctx context.Context, claims *domain.TokenClaims) domain.Session {
	if claims == nil || claims.UserID == "" {
		metrics.SessionsResolvedTotal.WithLabelValues("anonymous").Inc()
		return domain.Session{}
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.repo.FindByID(lookupCtx, claims.UserID)
	switch {
	case err == nil:
		metrics.SessionsResolvedTotal.WithLabelValues("authenticated").Inc()
		return domain.Session{User: user}
	case errors.Is(lookupCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
		s.logger.Warn().Str("user_id", claims.UserID).Dur("timeout", s.timeout).Msg("profile lookup timed out")
		metrics.SessionsResolvedTotal.WithLabelValues("loading").Inc()
		return domain.Session{Loading: true}
	case errors.Is(err, domain.ErrUserNotFound):
		s.logger.Debug().Str("user_id", claims.UserID).Msg("token subject has no profile")
	default:
		s.logger.Error().Err(err).Str("user_id", claims.UserID).Msg("profile lookup failed")
	}
	metrics.SessionsResolvedTotal.WithLabelValues("anonymous").Inc()
	return domain.Session{}
}
