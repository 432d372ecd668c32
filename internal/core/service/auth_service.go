package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursehub/storefront/internal/api/metrics"
	"github.com/coursehub/storefront/internal/core/access"
	"github.com/coursehub/storefront/internal/core/domain"
	"github.com/coursehub/storefront/internal/core/ports"
)

const minPasswordLength = 8

// AuthService implements registration, login, logout and token verification.
type AuthService struct {
	repo      ports.UserRepository
	revoked   ports.RevocationStore
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAuthService builds an AuthService. revoked may be nil, in which case
// logout is a client-side operation only.
func NewAuthService(repo ports.UserRepository, revoked ports.RevocationStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		revoked:   revoked,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)
	if name == "" || email == "" || len(input.Password) < minPasswordLength {
		return nil, domain.ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	flags := access.FlagsFor(domain.RoleCustomer)
	now := s.now().UTC()
	user := &domain.User{
		Email:         email,
		Name:          name,
		Phone:         strings.TrimSpace(input.Phone),
		PasswordHash:  string(hash),
		IsAdminUser:   flags.IsAdminUser,
		IsStaffMember: flags.IsStaffMember,
		UserType:      flags.UserType,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.tokenTTL)
	token, err := s.generateToken(user, expiresAt)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return &ports.LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Logout revokes the token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, claims *domain.TokenClaims) error {
	if claims == nil {
		return domain.ErrUnauthenticated
	}
	if s.revoked == nil || claims.TokenID == "" {
		return nil
	}
	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.revoked.Revoke(ctx, claims.TokenID, ttl); err != nil {
		s.logger.Error().Err(err).Str("user_id", claims.UserID).Msg("failed to revoke token")
		return err
	}
	return nil
}

// ChangePassword replaces the password after verifying the current one.
// Tokens issued before the change stay valid until they expire.
func (s *AuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if userID == "" || len(next) < minPasswordLength {
		return domain.ErrInvalidInput
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

func (s *AuthService) Authenticate(ctx context.Context, raw string) (*domain.TokenClaims, error) {
	if raw == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, domain.ErrUnauthenticated
	}

	if s.revoked != nil && claims.ID != "" {
		revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			// Revocation is best-effort; the token signature is still valid.
			s.logger.Warn().Err(err).Str("user_id", claims.Subject).Msg("revocation check failed")
		} else if revoked {
			return nil, domain.ErrUnauthenticated
		}
	}

	out := &domain.TokenClaims{
		UserID:  claims.Subject,
		Email:   claims.Email,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// sessionClaims deliberately carries no role: the role is derived from the
// stored profile on every request.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (s *AuthService) generateToken(user *domain.User, expiresAt time.Time) (string, error) {
	now := s.now()
	claims := sessionClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.jwtSecret)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
