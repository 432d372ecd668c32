package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/coursehub/storefront/internal/core/domain"
	"github.com/coursehub/storefront/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.User
	nextID  int
	findErr error         // if set, FindByID returns this error
	delay   time.Duration // FindByID blocks this long or until ctx is done
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = fmt.Sprintf("u%d", r.nextID)
	}
	r.byID[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id, name, phone string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Name, u.Phone = name, phone
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) UpdateAccess(_ context.Context, id string, flags domain.AccessFlags) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.IsAdminUser, u.IsStaffMember, u.UserType = flags.IsAdminUser, flags.IsStaffMember, flags.UserType
	return cloneUser(u), nil
}

// List applies the same filters the real Mongo repo would use.
func (r *stubUserRepo) List(_ context.Context, f ports.ListUsersFilter) ([]*domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*domain.User
	for _, u := range r.byID {
		if f.UserType != "" && u.UserType != f.UserType {
			continue
		}
		if f.Search != "" && !strings.Contains(u.Email, f.Search) && !strings.Contains(u.Name, f.Search) {
			continue
		}
		matched = append(matched, cloneUser(u))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := (f.Page - 1) * f.Limit
	if start >= len(matched) {
		return []*domain.User{}, total, nil
	}
	end := start + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *stubUserRepo) seed(u *domain.User) *domain.User {
	created, err := r.Create(context.Background(), u)
	if err != nil {
		panic(err)
	}
	return created
}

type stubRevocations struct {
	mu       sync.Mutex
	tokens   map[string]time.Duration
	checkErr error
}

func newStubRevocations() *stubRevocations {
	return &stubRevocations{tokens: make(map[string]time.Duration)}
}

func (s *stubRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[tokenID] = ttl
	return nil
}

func (s *stubRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if s.checkErr != nil {
		return false, s.checkErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[tokenID]
	return ok, nil
}

type stubReferralRepo struct {
	mu        sync.Mutex
	byCode    map[string]*domain.ReferralCode
	createErr error

	// collisions makes the next n Create calls report a duplicate code.
	collisions int
}

func newStubReferralRepo() *stubReferralRepo {
	return &stubReferralRepo{byCode: make(map[string]*domain.ReferralCode)}
}

func (r *stubReferralRepo) Create(_ context.Context, code *domain.ReferralCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if r.collisions > 0 {
		r.collisions--
		return domain.ErrReferralCodeExists
	}
	if _, exists := r.byCode[code.Code]; exists {
		return domain.ErrReferralCodeExists
	}
	clone := *code
	r.byCode[code.Code] = &clone
	return nil
}

func (r *stubReferralRepo) FindByCode(_ context.Context, code string) (*domain.ReferralCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byCode[code]
	if !ok {
		return nil, domain.ErrReferralCodeNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubReferralRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.ReferralCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.ReferralCode
	for _, c := range r.byCode {
		if c.OwnerID == ownerID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubReferralRepo) ListAll(_ context.Context) ([]*domain.ReferralCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.ReferralCode, 0, len(r.byCode))
	for _, c := range r.byCode {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubReferralRepo) IncrementVisits(_ context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byCode[code]
	if !ok {
		return domain.ErrReferralCodeNotFound
	}
	c.Visits++
	return nil
}
