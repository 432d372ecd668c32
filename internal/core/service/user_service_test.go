package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/coursehub/storefront/internal/core/access"
	"github.com/coursehub/storefront/internal/core/domain"
	"github.com/coursehub/storefront/internal/core/ports"
)

func seedUsers(repo *stubUserRepo, n int, userType string) {
	for i := 0; i < n; i++ {
		flags := domain.AccessFlags{UserType: userType}
		switch userType {
		case domain.UserTypeAdmin:
			flags = access.FlagsFor(domain.RoleAdmin)
		case domain.UserTypeStaff:
			flags = access.FlagsFor(domain.RoleMarketer)
		}
		repo.seed(&domain.User{
			Email:         fmt.Sprintf("%s%d@example.com", userType, i),
			Name:          fmt.Sprintf("%s %d", userType, i),
			IsAdminUser:   flags.IsAdminUser,
			IsStaffMember: flags.IsStaffMember,
			UserType:      flags.UserType,
		})
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	repo := newStubUserRepo()
	u := repo.seed(&domain.User{Email: "a@example.com", Name: "old"})
	svc := NewUserService(repo, zerolog.Nop())

	updated, err := svc.UpdateProfile(context.Background(), u.ID, ports.UpdateProfileInput{Name: "  New Name ", Phone: "0912"})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Name != "New Name" || updated.Phone != "0912" {
		t.Fatalf("unexpected profile: %+v", updated)
	}
}

func TestUserService_UpdateProfile_Validation(t *testing.T) {
	repo := newStubUserRepo()
	u := repo.seed(&domain.User{Email: "a@example.com", Name: "old"})
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.UpdateProfile(context.Background(), u.ID, ports.UpdateProfileInput{Name: "   "}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.UpdateProfile(context.Background(), "missing", ports.UpdateProfileInput{Name: "x"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestListUsers_DefaultLimit(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	res, err := svc.ListUsers(context.Background(), ports.ListUsersInput{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Limit != 20 {
		t.Errorf("expected default limit 20, got %d", res.Limit)
	}
	if res.Page != 1 {
		t.Errorf("expected default page 1, got %d", res.Page)
	}
}

func TestListUsers_LimitCappedAt100(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	res, err := svc.ListUsers(context.Background(), ports.ListUsersInput{Limit: 999, Page: 1})
	if err != nil {
		t.Fatal(err)
	}
	if res.Limit != 100 {
		t.Errorf("expected limit 100, got %d", res.Limit)
	}
}

func TestListUsers_PaginationMath(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(repo, 5, domain.UserTypeCustomer)
	svc := NewUserService(repo, zerolog.Nop())

	res, err := svc.ListUsers(context.Background(), ports.ListUsersInput{Limit: 2, Page: 3})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 5 {
		t.Errorf("total: expected 5, got %d", res.Total)
	}
	if res.TotalPages != 3 {
		t.Errorf("total_pages: expected 3, got %d", res.TotalPages)
	}
	if len(res.Items) != 1 {
		t.Errorf("items: expected 1, got %d", len(res.Items))
	}
}

func TestListUsers_FilterByUserType(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(repo, 3, domain.UserTypeCustomer)
	seedUsers(repo, 2, domain.UserTypeStaff)
	svc := NewUserService(repo, zerolog.Nop())

	res, err := svc.ListUsers(context.Background(), ports.ListUsersInput{UserType: domain.UserTypeStaff})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 2 {
		t.Fatalf("expected 2 staff users, got %d", res.Total)
	}
	for _, u := range res.Items {
		if !access.IsMarketer(u) {
			t.Errorf("expected marketer, got %s", access.GetRole(u))
		}
	}

	if _, err := svc.ListUsers(context.Background(), ports.ListUsersInput{UserType: "superuser"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown user type, got %v", err)
	}
}

func TestUserService_AssignRole(t *testing.T) {
	repo := newStubUserRepo()
	admin := repo.seed(&domain.User{Email: "boss@example.com", IsAdminUser: true, IsStaffMember: true, UserType: domain.UserTypeAdmin})
	target := repo.seed(&domain.User{Email: "joe@example.com", UserType: domain.UserTypeCustomer})
	svc := NewUserService(repo, zerolog.Nop())

	for _, role := range []domain.Role{domain.RoleMarketer, domain.RoleAdmin, domain.RoleCustomer} {
		updated, err := svc.AssignRole(context.Background(), admin.ID, target.ID, role)
		if err != nil {
			t.Fatalf("AssignRole(%s) returned error: %v", role, err)
		}
		if got := access.GetRole(updated); got != role {
			t.Fatalf("expected role %s after assignment, got %s", role, got)
		}
		if updated.UserType != access.FlagsFor(role).UserType {
			t.Fatalf("expected user_type to agree with flags, got %q", updated.UserType)
		}
	}
}

func TestUserService_AssignRole_Rejects(t *testing.T) {
	repo := newStubUserRepo()
	admin := repo.seed(&domain.User{Email: "boss@example.com", IsAdminUser: true})
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.AssignRole(context.Background(), admin.ID, admin.ID, domain.RoleCustomer); !errors.Is(err, domain.ErrSelfRoleChange) {
		t.Fatalf("expected ErrSelfRoleChange, got %v", err)
	}
	if _, err := svc.AssignRole(context.Background(), admin.ID, "u9", domain.Role("owner")); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.AssignRole(context.Background(), admin.ID, "missing", domain.RoleMarketer); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
