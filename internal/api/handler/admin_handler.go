package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/storefront/internal/core/domain"
	"github.com/coursehub/storefront/internal/core/ports"
)

// AdminHandler serves the admin panel routes.
type AdminHandler struct {
	users     ports.UserService
	referrals ports.ReferralService
}

func NewAdminHandler(users ports.UserService, referrals ports.ReferralService) *AdminHandler {
	return &AdminHandler{users: users, referrals: referrals}
}

// ListUsers handles GET /v1/admin/users.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Page size (default 20, max 100)"
// @Param        user_type  query     string  false  "Filter by user type"  Enums(customer, staff, admin)
// @Param        q          query     string  false  "Search by email or name"
// @Success      200        {object}  listUsersResponse
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	var req listUsersRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	res, err := h.users.ListUsers(c.Request().Context(), ports.ListUsersInput{
		UserType: req.UserType,
		Search:   req.Search,
		Page:     req.Page,
		Limit:    req.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListUsersResponse(res))
}

// AssignRole handles PATCH /v1/admin/users/:id/role.
//
// @Summary      Assign a role
// @Description  Rewrites is_admin_user, is_staff_member and user_type so they all agree with the role.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      assignRoleRequest  true  "Target role"
// @Success      200   {object}  userWithAccessResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/users/{id}/role [patch]
func (h *AdminHandler) AssignRole(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req assignRoleRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	updated, err := h.users.AssignRole(c.Request().Context(), actor.ID, c.Param("id"), domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserWithAccessResponse(updated))
}

// ListReferralCodes handles GET /v1/admin/referral-codes.
//
// @Summary      List all referral codes
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listReferralCodesResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/referral-codes [get]
func (h *AdminHandler) ListReferralCodes(c echo.Context) error {
	codes, err := h.referrals.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListReferralCodesResponse(codes))
}
