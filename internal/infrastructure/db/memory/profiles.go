package memory

import (
	"context"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// ProfileRepository stores extended profile data by user id.
type ProfileRepository struct {
	profiles *collection[*domain.UserProfile]
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{profiles: newCollection((*domain.UserProfile).Clone)}
}

func (r *ProfileRepository) Find(_ context.Context, id string) (*domain.UserProfile, error) {
	p, ok := r.profiles.get(id)
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (r *ProfileRepository) Upsert(_ context.Context, p *domain.UserProfile) error {
	r.profiles.upsert(p.ID, p)
	return nil
}

// ProfileCache is the in-process profile cache used when Redis is disabled.
type ProfileCache struct {
	entries *collection[*domain.UserProfile]
}

func NewProfileCache() *ProfileCache {
	return &ProfileCache{entries: newCollection((*domain.UserProfile).Clone)}
}

func (c *ProfileCache) Get(_ context.Context, id string) (*domain.UserProfile, bool, error) {
	p, ok := c.entries.get(id)
	return p, ok, nil
}

func (c *ProfileCache) Set(_ context.Context, p *domain.UserProfile) error {
	c.entries.upsert(p.ID, p)
	return nil
}
