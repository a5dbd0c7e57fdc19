package ports

import (
	"context"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// CreateBookingInput carries the fields of a new booking. The client is the
// calling actor; provider and price come from the service.
type CreateBookingInput struct {
	ServiceID     string
	Date          string
	Time          string
	Duration      int
	Location      string
	Notes         string
	PaymentMethod domain.PaymentMethod
}

type BookingService interface {
	List(ctx context.Context, actor domain.Actor, status domain.BookingStatus) ([]*domain.Booking, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error)
	Create(ctx context.Context, actor domain.Actor, input CreateBookingInput) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, id string, status domain.BookingStatus) (*domain.Booking, error)
	ApplyAction(ctx context.Context, actor domain.Actor, id string, action domain.BookingAction) (*domain.Booking, error)
	Cancel(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error)
}
