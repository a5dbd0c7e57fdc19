package ports

import (
	"context"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	// Update replaces the stored record. Last write wins.
	Update(ctx context.Context, b *domain.Booking) error
}
