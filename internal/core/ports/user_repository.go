package ports

import (
	"context"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// ProfileRepository stores the extended part of user profiles.
type ProfileRepository interface {
	// Find returns ErrProfileNotFound when no extended data was ever stored.
	Find(ctx context.Context, id string) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}

// ProfileCache holds assembled profiles by user id. Entries never expire.
type ProfileCache interface {
	Get(ctx context.Context, id string) (*domain.UserProfile, bool, error)
	Set(ctx context.Context, p *domain.UserProfile) error
}

// FavoriteRepository stores per-user favorite service ids as a set.
type FavoriteRepository interface {
	// Add reports whether the id was newly inserted.
	Add(ctx context.Context, userID, serviceID string) (bool, error)
	// Remove reports whether the id was present.
	Remove(ctx context.Context, userID, serviceID string) (bool, error)
	List(ctx context.Context, userID string) ([]string, error)
}
