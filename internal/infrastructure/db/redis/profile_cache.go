package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// ProfileCache stores assembled profiles as JSON.
// Key format: profile:<user_id>. Entries have no TTL.
type ProfileCache struct {
	client *redis.Client
}

func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

func (c *ProfileCache) Get(ctx context.Context, id string) (*domain.UserProfile, bool, error) {
	raw, err := c.client.Get(ctx, profileKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("profile cache get: %w", err)
	}
	var p domain.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false, fmt.Errorf("profile cache decode: %w", err)
	}
	return &p, true, nil
}

func (c *ProfileCache) Set(ctx context.Context, p *domain.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("profile cache encode: %w", err)
	}
	return c.client.Set(ctx, profileKey(p.ID), raw, 0).Err()
}

func profileKey(id string) string {
	return "profile:" + id
}
