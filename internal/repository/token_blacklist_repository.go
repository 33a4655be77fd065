package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const blacklistKeyPrefix = "patrimonio:token_blacklist:"

// TokenBlacklistRepository revoked refresh tokens, keyed by jti. Entries expire
// with the token so the set never outgrows the live tokens.
type TokenBlacklistRepository struct {
	client *redis.Client
}

// NewTokenBlacklistRepository creates a TokenBlacklistRepository
func NewTokenBlacklistRepository(client *redis.Client) *TokenBlacklistRepository {
	return &TokenBlacklistRepository{client: client}
}

// Revoke blacklists jti for ttl
func (r *TokenBlacklistRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, blacklistKeyPrefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}
	return nil
}

// IsRevoked reports whether jti was blacklisted
func (r *TokenBlacklistRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, blacklistKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check token blacklist: %w", err)
	}
	return n > 0, nil
}
