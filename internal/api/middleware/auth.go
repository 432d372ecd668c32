package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/storefront/internal/core/domain"
)

// SessionCookie carries the token for browser navigation.
const SessionCookie = "session"

// Authenticator verifies a raw session token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.TokenClaims, error)
}

// Auth verifies the bearer token, or the session cookie when no header is
// sent, and injects the claims into context. Requests without a usable token
// continue anonymously; routes decide through the guard whether that is
// acceptable.
func Auth(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFrom(c.Request())
			if raw == "" {
				return next(c)
			}

			claims, err := a.Authenticate(c.Request().Context(), raw)
			if err == nil {
				WithClaims(c, claims)
			}
			return next(c)
		}
	}
}

func tokenFrom(r *http.Request) string {
	if authHeader := r.Header.Get(echo.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return ""
		}
		return strings.TrimSpace(parts[1])
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}
