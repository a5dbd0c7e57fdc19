package ports

import (
	"context"
	"time"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// UserFilter narrows a user listing. Empty fields are inactive.
type UserFilter struct {
	Role   domain.Role
	Search string // partial match on name or email
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create stores a new user. It returns ErrUserExists when the e-mail is taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// TokenDenylist remembers revoked token ids until they would have expired.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
