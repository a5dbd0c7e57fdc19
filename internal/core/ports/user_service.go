package ports

import (
	"context"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// UserStats is the dashboard summary of one user. Client and provider
// fields are filled according to the user's role.
type UserStats struct {
	UserID            string      `json:"user_id"`
	Role              domain.Role `json:"role"`
	TotalBookings     int         `json:"total_bookings"`
	CompletedBookings int         `json:"completed_bookings"`
	TotalSpent        float64     `json:"total_spent,omitempty"`
	Services          int         `json:"services,omitempty"`
	Revenue           float64     `json:"revenue,omitempty"`
	AverageRating     float64     `json:"average_rating,omitempty"`
}

type UserService interface {
	List(ctx context.Context, filter UserFilter) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Profile(ctx context.Context, id string) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, actor domain.Actor, id string, patch domain.ProfilePatch) (*domain.UserProfile, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	Stats(ctx context.Context, actor domain.Actor, id string) (*UserStats, error)
}

type FavoriteService interface {
	List(ctx context.Context, userID string) ([]string, error)
	Add(ctx context.Context, userID, serviceID string) ([]string, error)
	Remove(ctx context.Context, userID, serviceID string) ([]string, error)
	Services(ctx context.Context, userID string, input ListServicesInput) ([]*domain.Service, error)
}
