package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/storefront/internal/core/domain"
	"github.com/coursehub/storefront/internal/core/ports"
)

type stubAuthService struct {
	registerFn       func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn          func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	logoutFn         func(ctx context.Context, claims *domain.TokenClaims) error
	changePasswordFn func(ctx context.Context, userID, current, next string) error
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, claims *domain.TokenClaims) error {
	return s.logoutFn(ctx, claims)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	return s.changePasswordFn(ctx, userID, current, next)
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.TokenClaims, error) {
	return nil, domain.ErrUnauthenticated
}

type stubUserService struct {
	updateProfileFn func(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error)
	listUsersFn     func(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error)
	assignRoleFn    func(ctx context.Context, actorID, userID string, role domain.Role) (*domain.User, error)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	return s.updateProfileFn(ctx, userID, input)
}

func (s *stubUserService) ListUsers(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
	return s.listUsersFn(ctx, input)
}

func (s *stubUserService) AssignRole(ctx context.Context, actorID, userID string, role domain.Role) (*domain.User, error) {
	return s.assignRoleFn(ctx, actorID, userID, role)
}

type stubReferralService struct {
	createFn  func(ctx context.Context, input ports.CreateReferralInput) (*domain.ReferralCode, error)
	listOwnFn func(ctx context.Context, ownerID string) ([]*domain.ReferralCode, error)
	listAllFn func(ctx context.Context) ([]*domain.ReferralCode, error)
	lookupFn  func(ctx context.Context, code string) (*domain.ReferralCode, error)
}

func (s *stubReferralService) Create(ctx context.Context, input ports.CreateReferralInput) (*domain.ReferralCode, error) {
	return s.createFn(ctx, input)
}

func (s *stubReferralService) ListOwn(ctx context.Context, ownerID string) ([]*domain.ReferralCode, error) {
	return s.listOwnFn(ctx, ownerID)
}

func (s *stubReferralService) ListAll(ctx context.Context) ([]*domain.ReferralCode, error) {
	return s.listAllFn(ctx)
}

func (s *stubReferralService) Lookup(ctx context.Context, code string) (*domain.ReferralCode, error) {
	return s.lookupFn(ctx, code)
}

func (s *stubReferralService) RecordVisit(context.Context, string) error { return nil }

type stubVisitQueue struct {
	codes []string
}

func (q *stubVisitQueue) Enqueue(code string) bool {
	q.codes = append(q.codes, code)
	return true
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}
