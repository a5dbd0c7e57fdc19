package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fallbackRevocationTTL applies to tokens carrying no expiry.
const fallbackRevocationTTL = 24 * time.Hour

// TokenDenylist records revoked token ids.
// Key format: revoked:<jti>, expiring when the token itself would.
type TokenDenylist struct {
	client *redis.Client
	now    func() time.Time
}

func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client, now: time.Now}
}

func (d *TokenDenylist) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := revocationTTL(d.now(), until)
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, revokedKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.client.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

// revocationTTL is how long a revocation must be kept. A non-positive
// result means the token has already expired.
func revocationTTL(now, until time.Time) time.Duration {
	if until.IsZero() {
		return fallbackRevocationTTL
	}
	return until.Sub(now)
}

func revokedKey(jti string) string {
	return "revoked:" + jti
}
