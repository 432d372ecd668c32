package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/coursehub/storefront/internal/core/domain"
)

// errorResponse is the JSON body of every error: {"error": "<message>"}.
type errorResponse struct {
	Error string `json:"error"`
}

// errorMapping ties a domain error to its HTTP status. An empty message
// means the error's own text is shown.
type errorMapping struct {
	err     error
	status  int
	message string
}

// Checked in order with errors.Is; the first match wins.
var errorMappings = []errorMapping{
	{domain.ErrInvalidInput, http.StatusBadRequest, ""},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, ""},
	{domain.ErrUnauthenticated, http.StatusUnauthorized, ""},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrUserNotFound, http.StatusNotFound, ""},
	{domain.ErrReferralCodeNotFound, http.StatusNotFound, ""},
	{domain.ErrUserExists, http.StatusConflict, ""},
	{domain.ErrReferralCodeExists, http.StatusConflict, ""},
	{domain.ErrSelfRoleChange, http.StatusUnprocessableEntity, ""},
	{domain.ErrSessionPending, http.StatusServiceUnavailable, ""},
}

// NewHTTPErrorHandler renders errors returned by handlers and middleware.
// Domain errors map through errorMappings and echo errors keep their code.
// Anything else is logged and reported as a bare 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}
		if errors.Is(err, domain.ErrSessionPending) {
			c.Response().Header().Set("Retry-After", retryAfterSeconds)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, errorResponse{Error: msg})
	}
}

const retryAfterSeconds = "1"

func statusFor(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprint(he.Message)
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			if m.message != "" {
				return m.status, m.message
			}
			return m.status, m.err.Error()
		}
	}
	return http.StatusInternalServerError, "internal server error"
}
