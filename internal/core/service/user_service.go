package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/coursehub/storefront/internal/core/access"
	"github.com/coursehub/storefront/internal/core/domain"
	"github.com/coursehub/storefront/internal/core/ports"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	if userID == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.UpdateProfile(ctx, userID, name, strings.TrimSpace(input.Phone))
}

// ListUsers returns one page of accounts. Limit defaults to 20 and is capped
// at 100; page defaults to 1.
func (s *UserService) ListUsers(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
	switch input.UserType {
	case "", domain.UserTypeCustomer, domain.UserTypeStaff, domain.UserTypeAdmin:
	default:
		return nil, domain.ErrInvalidInput
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	page := input.Page
	if page <= 0 {
		page = 1
	}

	users, total, err := s.repo.List(ctx, ports.ListUsersFilter{
		UserType: input.UserType,
		Search:   strings.TrimSpace(input.Search),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListUsersResult{
		Items:      users,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// AssignRole writes flags that derive back to role. An actor cannot change
// their own role, so an administrator can never lock themselves out.
func (s *UserService) AssignRole(ctx context.Context, actorID, userID string, role domain.Role) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, ok := domain.ParseRole(string(role)); !ok {
		return nil, domain.ErrInvalidInput
	}
	if actorID == userID {
		return nil, domain.ErrSelfRoleChange
	}

	updated, err := s.repo.UpdateAccess(ctx, userID, access.FlagsFor(role))
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("actor_id", actorID).
		Str("user_id", userID).
		Str("role", string(access.DeriveRole(updated))).
		Msg("role assigned")
	return updated, nil
}
