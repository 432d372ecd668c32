package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/storefront/internal/api/middleware"
	"github.com/coursehub/storefront/internal/core/domain"
	"github.com/coursehub/storefront/internal/core/ports"
)

// AccountHandler serves the /v1/me routes.
type AccountHandler struct {
	users ports.UserService
	auth  ports.AuthService
}

func NewAccountHandler(users ports.UserService, auth ports.AuthService) *AccountHandler {
	return &AccountHandler{users: users, auth: auth}
}

// Access returns the role, presentation and permission set of the current
// session.
//
// @Summary      Current access profile
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  accessResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/me/access [get]
func (h *AccountHandler) Access(c echo.Context) error {
	s := middleware.SessionFrom(c)
	if s.Loading {
		return domain.ErrSessionPending
	}
	return c.JSON(http.StatusOK, toAccessResponse(s.User))
}

// UpdateProfile edits the caller's name and phone.
//
// @Summary      Update profile
// @Tags         account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/me/profile [put]
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	updated, err := h.users.UpdateProfile(c.Request().Context(), user.ID, ports.UpdateProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// ChangePassword replaces the caller's password.
//
// @Summary      Change password
// @Tags         account
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  changePasswordRequest  true  "Current and new password"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/me/password [put]
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.auth.ChangePassword(c.Request().Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
