package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/storefront/internal/api/middleware"
	"github.com/coursehub/storefront/internal/core/domain"
)

// currentUser returns the signed-in user. Routes are guarded before they
// reach a handler; this is the fast-fail for handlers mounted without
// RequireSession.
func currentUser(c echo.Context) (*domain.User, error) {
	s := middleware.SessionFrom(c)
	if s.Loading {
		return nil, domain.ErrSessionPending
	}
	if s.User == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.User, nil
}

// bindAndValidate decodes the request into req and runs the struct validator.
// It writes the 400 response itself and reports whether the handler should
// continue.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	return true, nil
}
