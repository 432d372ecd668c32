package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/coursehub/storefront/internal/api/metrics"
	"github.com/coursehub/storefront/internal/core/domain"
	"github.com/coursehub/storefront/internal/core/ports"
)

// generateAttempts bounds retries when a generated code collides.
const generateAttempts = 3

var codePattern = regexp.MustCompile(`^[A-Z0-9-]{4,32}$`)

type ReferralService struct {
	repo   ports.ReferralRepository
	logger zerolog.Logger
}

func NewReferralService(repo ports.ReferralRepository, logger zerolog.Logger) *ReferralService {
	return &ReferralService{repo: repo, logger: logger}
}

// Create stores a new active code for a marketer. A caller-supplied code is
// upper-cased and must be unique; otherwise one is generated.
func (s *ReferralService) Create(ctx context.Context, input ports.CreateReferralInput) (*domain.ReferralCode, error) {
	if input.OwnerID == "" || input.DiscountPercent < 1 || input.DiscountPercent > 100 {
		return nil, domain.ErrInvalidInput
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code != "" && !codePattern.MatchString(code) {
		return nil, domain.ErrInvalidInput
	}

	ref := &domain.ReferralCode{
		OwnerID:         input.OwnerID,
		DiscountPercent: input.DiscountPercent,
		Active:          true,
		CreatedAt:       time.Now().UTC(),
	}

	origin := "custom"
	if code != "" {
		ref.Code = code
		if err := s.repo.Create(ctx, ref); err != nil {
			return nil, err
		}
	} else {
		origin = "generated"
		var err error
		for i := 0; i < generateAttempts; i++ {
			ref.Code = generateReferralCode()
			if err = s.repo.Create(ctx, ref); !errors.Is(err, domain.ErrReferralCodeExists) {
				break
			}
		}
		if err != nil {
			return nil, err
		}
	}

	metrics.ReferralCodesCreatedTotal.WithLabelValues(origin).Inc()
	s.logger.Info().Str("code", ref.Code).Str("owner_id", ref.OwnerID).Msg("referral code created")
	return ref, nil
}

func (s *ReferralService) ListOwn(ctx context.Context, ownerID string) ([]*domain.ReferralCode, error) {
	if ownerID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *ReferralService) ListAll(ctx context.Context) ([]*domain.ReferralCode, error) {
	return s.repo.ListAll(ctx)
}

func (s *ReferralService) Lookup(ctx context.Context, code string) (*domain.ReferralCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domain.ErrReferralCodeNotFound
	}
	ref, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !ref.Active {
		return nil, domain.ErrReferralCodeNotFound
	}
	return ref, nil
}

// RecordVisit increments the visit counter of a code. It is called from the
// visit dispatcher, off the request path.
func (s *ReferralService) RecordVisit(ctx context.Context, code string) error {
	if err := s.repo.IncrementVisits(ctx, code); err != nil {
		s.logger.Error().Err(err).Str("code", code).Msg("failed to record referral visit")
		return err
	}
	return nil
}

// generateReferralCode returns a code in the format REF-XXXXXX.
func generateReferralCode() string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("REF-%06X", time.Now().UnixNano()&0xFFFFFF)
	}
	return fmt.Sprintf("REF-%06X", b)
}
