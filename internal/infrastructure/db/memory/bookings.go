package memory

import (
	"context"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	return &c
}

// BookingRepository keeps bookings in insertion order.
type BookingRepository struct {
	bookings *collection[*domain.Booking]
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{bookings: newCollection(cloneBooking)}
}

func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) error {
	if !r.bookings.insert(b.ID, b) {
		return domain.ErrValidation
	}
	return nil
}

func (r *BookingRepository) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings.get(id)
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return b, nil
}

func (r *BookingRepository) List(_ context.Context, f domain.BookingFilter) ([]*domain.Booking, error) {
	return domain.Filter(r.bookings.all(), f.Predicates()...), nil
}

func (r *BookingRepository) Update(_ context.Context, b *domain.Booking) error {
	if !r.bookings.replace(b.ID, b) {
		return domain.ErrBookingNotFound
	}
	return nil
}
