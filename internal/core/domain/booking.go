package domain

import (
	"fmt"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// bookingTransitions defines the allowed state machine transitions.
// completed and cancelled are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:    {BookingConfirmed, BookingCancelled},
	BookingConfirmed:  {BookingInProgress, BookingCancelled},
	BookingInProgress: {BookingCompleted, BookingCancelled},
}

// ParseBookingStatus validates s against the declared statuses.
func ParseBookingStatus(s string) (BookingStatus, error) {
	st := BookingStatus(s)
	switch st {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Staying in the same status is always allowed so repeated updates are idempotent.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition can leave s.
func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}

// BookingAction is a caller-facing verb mapped onto a target status.
type BookingAction string

const (
	ActionConfirm  BookingAction = "confirm"
	ActionCancel   BookingAction = "cancel"
	ActionStart    BookingAction = "start"
	ActionComplete BookingAction = "complete"
)

var actionTargets = map[BookingAction]BookingStatus{
	ActionConfirm:  BookingConfirmed,
	ActionCancel:   BookingCancelled,
	ActionStart:    BookingInProgress,
	ActionComplete: BookingCompleted,
}

// Target returns the status an action sets.
func (a BookingAction) Target() (BookingStatus, error) {
	st, ok := actionTargets[a]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, a)
	}
	return st, nil
}

// PaymentMethod is how the client settles a booking.
type PaymentMethod string

const (
	PaymentAirtelMoney PaymentMethod = "airtel_money"
	PaymentMoovMoney   PaymentMethod = "moov_money"
	PaymentCash        PaymentMethod = "cash"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentAirtelMoney, PaymentMoovMoney, PaymentCash:
		return true
	}
	return false
}

// Booking is a scheduled engagement between a client and a provider's service.
type Booking struct {
	ID            string        `json:"id"             bson:"_id"`
	ServiceID     string        `json:"service_id"     bson:"service_id"`
	ClientID      string        `json:"client_id"      bson:"client_id"`
	ProviderID    string        `json:"provider_id"    bson:"provider_id"`
	Date          string        `json:"date"           bson:"date"`
	Time          string        `json:"time"           bson:"time"`
	Duration      int           `json:"duration"       bson:"duration"`
	Location      string        `json:"location"       bson:"location"`
	Notes         string        `json:"notes"          bson:"notes"`
	Status        BookingStatus `json:"status"         bson:"status"`
	PaymentMethod PaymentMethod `json:"payment_method" bson:"payment_method"`
	TotalPrice    float64       `json:"total_price"    bson:"total_price"`
	CreatedAt     time.Time     `json:"created_at"     bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"     bson:"updated_at"`
}

// Transition moves the booking to next. It reports whether the status
// actually changed; a same-status call is a successful no-op.
func (b *Booking) Transition(next BookingStatus, at time.Time) (bool, error) {
	if !b.Status.CanTransitionTo(next) {
		return false, fmt.Errorf("%w (from %s to %s)", ErrInvalidTransition, b.Status, next)
	}
	if b.Status == next {
		return false, nil
	}
	b.Status = next
	b.UpdatedAt = at
	return true, nil
}

// InvolvedParty reports whether userID is the booking's client or provider.
func (b *Booking) InvolvedParty(userID string) bool {
	return userID != "" && (b.ClientID == userID || b.ProviderID == userID)
}

// BookingFilter narrows a booking listing. Empty fields are inactive.
type BookingFilter struct {
	ClientID   string
	ProviderID string
	Status     BookingStatus
}

// Predicates returns the active predicates of f.
func (f BookingFilter) Predicates() []Predicate[*Booking] {
	var ps []Predicate[*Booking]
	if f.ClientID != "" {
		ps = append(ps, func(b *Booking) bool { return b.ClientID == f.ClientID })
	}
	if f.ProviderID != "" {
		ps = append(ps, func(b *Booking) bool { return b.ProviderID == f.ProviderID })
	}
	if f.Status != "" {
		ps = append(ps, func(b *Booking) bool { return b.Status == f.Status })
	}
	return ps
}
