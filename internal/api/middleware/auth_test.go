package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/storefront/internal/core/domain"
)

type stubAuthenticator struct {
	valid map[string]*domain.TokenClaims
	seen  []string
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string) (*domain.TokenClaims, error) {
	s.seen = append(s.seen, token)
	if claims, ok := s.valid[token]; ok {
		return claims, nil
	}
	return nil, domain.ErrUnauthenticated
}

func newStubAuthenticator() *stubAuthenticator {
	return &stubAuthenticator{valid: map[string]*domain.TokenClaims{
		"good": {UserID: "u1", Email: "alice@example.com", TokenID: "jti-1"},
	}}
}

func runAuth(t *testing.T, a Authenticator, req *http.Request) *domain.TokenClaims {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	var claims *domain.TokenClaims
	handler := Auth(a)(func(c echo.Context) error {
		called = true
		claims = ClaimsFrom(c)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	return claims
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")

	claims := runAuth(t, newStubAuthenticator(), req)
	if claims == nil || claims.UserID != "u1" {
		t.Fatalf("claims not set: %+v", claims)
	}
}

func TestAuthMiddleware_SessionCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"})

	claims := runAuth(t, newStubAuthenticator(), req)
	if claims == nil || claims.UserID != "u1" {
		t.Fatalf("claims not set from cookie: %+v", claims)
	}
}

func TestAuthMiddleware_HeaderWinsOverCookie(t *testing.T) {
	stub := newStubAuthenticator()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer other")
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"})

	if claims := runAuth(t, stub, req); claims != nil {
		t.Fatalf("expected header token to be used, got %+v", claims)
	}
	if len(stub.seen) != 1 || stub.seen[0] != "other" {
		t.Fatalf("unexpected tokens verified: %v", stub.seen)
	}
}

func TestAuthMiddleware_MissingHeaderIsAnonymous(t *testing.T) {
	stub := newStubAuthenticator()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if claims := runAuth(t, stub, req); claims != nil {
		t.Fatalf("expected no claims, got %+v", claims)
	}
	if len(stub.seen) != 0 {
		t.Fatalf("authenticator should not be called without a token")
	}
}

func TestAuthMiddleware_InvalidHeaderFormatIsAnonymous(t *testing.T) {
	stub := newStubAuthenticator()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token good")

	if claims := runAuth(t, stub, req); claims != nil {
		t.Fatalf("expected no claims, got %+v", claims)
	}
}

func TestAuthMiddleware_InvalidTokenIsAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	if claims := runAuth(t, newStubAuthenticator(), req); claims != nil {
		t.Fatalf("expected no claims, got %+v", claims)
	}
}
