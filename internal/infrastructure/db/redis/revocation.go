package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore records logged-out session tokens in Redis until they
// would have expired anyway.
// Key format: revoked:<token_id>
type RevocationStore struct {
	client redis.UniversalClient
}

// NewRevocationStore creates a RevocationStore wrapping the given Redis client.
func NewRevocationStore(client redis.UniversalClient) *RevocationStore {
	return &RevocationStore{client: client}
}

// Revoke marks the token as revoked for ttl.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token was logged out.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *RevocationStore) key(tokenID string) string {
	return fmt.Sprintf("revoked:%s", tokenID)
}
