package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

// BookingService manages bookings and their status machine.
type BookingService struct {
	bookings ports.BookingRepository
	services ports.ServiceRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, services ports.ServiceRepository, activity ports.ActivityRecorder, log zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, services: services, activity: activity, log: log}
}

// List returns the bookings visible to actor: a client sees its own, a
// provider those of its services, an admin everything.
func (s *BookingService) List(ctx context.Context, actor domain.Actor, status domain.BookingStatus) ([]*domain.Booking, error) {
	filter := domain.BookingFilter{Status: status}
	switch actor.Role {
	case domain.RoleClient:
		filter.ClientID = actor.UserID
	case domain.RoleProvider:
		filter.ProviderID = actor.UserID
	}
	out, err := s.bookings.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

// Get hides bookings the actor is not party to behind ErrBookingNotFound.
func (s *BookingService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	b, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !b.InvolvedParty(actor.UserID) {
		return nil, domain.ErrBookingNotFound
	}
	return b, nil
}

func (s *BookingService) Create(ctx context.Context, actor domain.Actor, in ports.CreateBookingInput) (*domain.Booking, error) {
	if actor.Role != domain.RoleClient {
		return nil, domain.ErrForbidden
	}
	if in.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be at least one hour", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Time) == "" {
		return nil, fmt.Errorf("%w: date and time are required", domain.ErrValidation)
	}
	if !in.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, in.PaymentMethod)
	}

	svc, err := s.services.FindByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive {
		return nil, domain.ErrServiceInactive
	}

	now := time.Now().UTC()
	b := &domain.Booking{
		ID:            uuid.NewString(),
		ServiceID:     svc.ID,
		ClientID:      actor.UserID,
		ProviderID:    svc.ProviderID,
		Date:          in.Date,
		Time:          in.Time,
		Duration:      in.Duration,
		Location:      in.Location,
		Notes:         in.Notes,
		Status:        domain.BookingPending,
		PaymentMethod: in.PaymentMethod,
		TotalPrice:    svc.Price * float64(in.Duration),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info().Str("booking_id", b.ID).Str("service_id", svc.ID).Msg("booking created")
	recordActivity(s.activity, actor.UserID, domain.ActivityBookingCreate, b.ID, svc.ID)
	return b, nil
}

// UpdateStatus moves a booking through the status machine. Setting the
// current status again succeeds without writing.
func (s *BookingService) UpdateStatus(ctx context.Context, actor domain.Actor, id string, next domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !b.InvolvedParty(actor.UserID) {
		return nil, domain.ErrForbidden
	}

	prev := b.Status
	changed, err := b.Transition(next, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !changed {
		return b, nil
	}
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.log.Info().
		Str("booking_id", b.ID).
		Str("from", string(prev)).
		Str("to", string(next)).
		Msg("booking status changed")
	recordActivity(s.activity, actor.UserID, domain.ActivityBookingStatus, b.ID, string(prev)+"->"+string(next))
	return b, nil
}

func (s *BookingService) ApplyAction(ctx context.Context, actor domain.Actor, id string, action domain.BookingAction) (*domain.Booking, error) {
	next, err := action.Target()
	if err != nil {
		return nil, err
	}
	return s.UpdateStatus(ctx, actor, id, next)
}

func (s *BookingService) Cancel(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	return s.ApplyAction(ctx, actor, id, domain.ActionCancel)
}
