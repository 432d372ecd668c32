package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/storefront/internal/api/middleware"
	"github.com/coursehub/storefront/internal/core/domain"
	"github.com/coursehub/storefront/internal/core/ports"
)

// AuthHandler serves the /v1/auth routes.
type AuthHandler struct {
	authService   ports.AuthService
	secureCookies bool
}

// NewAuthHandler builds an AuthHandler. secureCookies marks the session
// cookie Secure and should be set outside local development.
func NewAuthHandler(authService ports.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookies: secureCookies}
}

// Register creates a new customer account.
//
// @Summary      Register a new customer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  userWithAccessResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toUserWithAccessResponse(user))
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(res.Token, res.ExpiresAt))
	return c.JSON(http.StatusOK, loginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt.UTC(),
		User:      toUserResponse(res.User),
		Access:    toAccessResponse(res.User),
	})
}

// Logout revokes the caller's token and clears the session cookie.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), middleware.ClaimsFrom(c)); err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie("", time.Unix(0, 0)))
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current user and their access profile. Anonymous callers
// get a null user with the customer profile.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	s := middleware.SessionFrom(c)
	if s.Loading {
		return domain.ErrSessionPending
	}
	return c.JSON(http.StatusOK, toMeResponse(s.User))
}

func (h *AuthHandler) sessionCookie(token string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		cookie.MaxAge = -1
	}
	return cookie
}
