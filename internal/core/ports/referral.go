package ports

import (
	"context"

	"github.com/coursehub/storefront/internal/core/domain"
)

// ReferralRepository defines persistence operations for referral codes.
type ReferralRepository interface {
	Create(ctx context.Context, code *domain.ReferralCode) error
	FindByCode(ctx context.Context, code string) (*domain.ReferralCode, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.ReferralCode, error)
	ListAll(ctx context.Context) ([]*domain.ReferralCode, error)
	IncrementVisits(ctx context.Context, code string) error
}

// CreateReferralInput carries a marketer's request for a new code. An empty
// Code asks the service to generate one.
type CreateReferralInput struct {
	OwnerID         string
	Code            string
	DiscountPercent int
}

type ReferralService interface {
	Create(ctx context.Context, input CreateReferralInput) (*domain.ReferralCode, error)
	ListOwn(ctx context.Context, ownerID string) ([]*domain.ReferralCode, error)
	ListAll(ctx context.Context) ([]*domain.ReferralCode, error)
	// Lookup returns an active code, or ErrReferralCodeNotFound.
	Lookup(ctx context.Context, code string) (*domain.ReferralCode, error)
	RecordVisit(ctx context.Context, code string) error
}
