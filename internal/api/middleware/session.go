package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/coursehub/storefront/internal/core/ports"
)

// Session resolves the current user from the claims injected by Auth and
// stores the result for SessionFrom. It runs on every request so that role
// changes and logouts take effect immediately.
func Session(r ports.SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			WithSession(c, r.Resolve(c.Request().Context(), ClaimsFrom(c)))
			return next(c)
		}
	}
}
