package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/coursehub/storefront/internal/core/domain"
)

const (
	claimsKey  = "auth.claims"
	sessionKey = "auth.session"
)

// ClaimsFrom returns the verified token claims, or nil for anonymous requests.
func ClaimsFrom(c echo.Context) *domain.TokenClaims {
	claims, _ := c.Get(claimsKey).(*domain.TokenClaims)
	return claims
}

// SessionFrom returns the session resolved for this request. A request that
// never went through the Session middleware is anonymous.
func SessionFrom(c echo.Context) domain.Session {
	s, _ := c.Get(sessionKey).(domain.Session)
	return s
}

// UserFrom returns the signed-in user, or nil.
func UserFrom(c echo.Context) *domain.User {
	return SessionFrom(c).User
}

// WithClaims stores verified token claims on the context.
func WithClaims(c echo.Context, claims *domain.TokenClaims) {
	c.Set(claimsKey, claims)
}

// WithSession stores the resolved session on the context.
func WithSession(c echo.Context, s domain.Session) {
	c.Set(sessionKey, s)
}
