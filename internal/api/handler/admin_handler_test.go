package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/storefront/internal/api/middleware"
	"github.com/coursehub/storefront/internal/core/access"
	"github.com/coursehub/storefront/internal/core/domain"
	"github.com/coursehub/storefront/internal/core/ports"
)

var adminSession = domain.Session{User: &domain.User{ID: "a1", IsAdminUser: true, IsStaffMember: true, UserType: domain.UserTypeAdmin}}

func TestAdminHandler_ListUsers_PassesQuery(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		listUsersFn: func(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
			if input.Page != 2 || input.Limit != 10 || input.UserType != "staff" || input.Search != "ali" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.ListUsersResult{
				Items:      []*domain.User{{ID: "m1", IsStaffMember: true, UserType: domain.UserTypeStaff}},
				Total:      11,
				Page:       2,
				Limit:      10,
				TotalPages: 2,
			}, nil
		},
	}
	handler := NewAdminHandler(stub, &stubReferralService{})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/admin/users?page=2&limit=10&user_type=staff&q=ali", nil), rec)
	middleware.WithSession(c, adminSession)

	if err := handler.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp listUsersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Pagination.TotalPages != 2 || resp.Pagination.Total != 11 {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
	if len(resp.Data) != 1 || resp.Data[0].Role != domain.RoleMarketer {
		t.Fatalf("expected derived role in listing, got %+v", resp.Data)
	}
}

func TestAdminHandler_ListUsers_RejectsUnknownUserType(t *testing.T) {
	e := newTestEcho()
	handler := NewAdminHandler(&stubUserService{}, &stubReferralService{})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/admin/users?user_type=root", nil), rec)

	_ = handler.ListUsers(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminHandler_AssignRole(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		assignRoleFn: func(ctx context.Context, actorID, userID string, role domain.Role) (*domain.User, error) {
			if actorID != "a1" || userID != "u7" || role != domain.RoleMarketer {
				t.Fatalf("unexpected args: %s %s %s", actorID, userID, role)
			}
			f := access.FlagsFor(role)
			return &domain.User{ID: userID, IsAdminUser: f.IsAdminUser, IsStaffMember: f.IsStaffMember, UserType: f.UserType}, nil
		},
	}
	handler := NewAdminHandler(stub, &stubReferralService{})

	req := httptest.NewRequest(http.MethodPatch, "/v1/admin/users/u7/role", strings.NewReader(`{"role":"marketer"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u7")
	middleware.WithSession(c, adminSession)

	if err := handler.AssignRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp userWithAccessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.User.UserType != "staff" || !resp.User.IsStaffMember || resp.User.IsAdminUser {
		t.Fatalf("flags disagree with role: %+v", resp.User)
	}
	if resp.Access.Role != domain.RoleMarketer {
		t.Fatalf("expected marketer, got %s", resp.Access.Role)
	}
}

func TestAdminHandler_AssignRole_RejectsUnknownRole(t *testing.T) {
	e := newTestEcho()
	handler := NewAdminHandler(&stubUserService{}, &stubReferralService{})

	req := httptest.NewRequest(http.MethodPatch, "/v1/admin/users/u7/role", strings.NewReader(`{"role":"owner"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.WithSession(c, adminSession)

	_ = handler.AssignRole(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
