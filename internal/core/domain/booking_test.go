package domain

import (
	"errors"
	"testing"
	"time"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingPending, BookingCompleted, false},
		{BookingConfirmed, BookingInProgress, true},
		{BookingConfirmed, BookingPending, false},
		{BookingInProgress, BookingCompleted, true},
		{BookingCompleted, BookingCancelled, false},
		{BookingCancelled, BookingConfirmed, false},
		{BookingCancelled, BookingCancelled, true},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestBookingStatus_Terminal(t *testing.T) {
	if !BookingCompleted.Terminal() || !BookingCancelled.Terminal() {
		t.Fatalf("completed and cancelled must be terminal")
	}
	if BookingPending.Terminal() {
		t.Fatalf("pending must not be terminal")
	}
}

func TestBooking_Transition_Idempotent(t *testing.T) {
	b := &Booking{ID: "1", Status: BookingPending}
	at := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	changed, err := b.Transition(BookingConfirmed, at)
	if err != nil || !changed {
		t.Fatalf("first confirm: changed=%v err=%v", changed, err)
	}
	snapshot := *b

	for i := 0; i < 3; i++ {
		changed, err = b.Transition(BookingConfirmed, at.Add(time.Hour))
		if err != nil {
			t.Fatalf("repeat confirm returned error: %v", err)
		}
		if changed {
			t.Fatalf("repeat confirm must not report a change")
		}
	}
	if *b != snapshot {
		t.Fatalf("repeated identical calls changed the booking: %+v vs %+v", *b, snapshot)
	}
}

func TestBooking_Transition_Rejected(t *testing.T) {
	b := &Booking{Status: BookingCompleted}
	if _, err := b.Transition(BookingPending, time.Now()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if b.Status != BookingCompleted {
		t.Fatalf("status changed on rejected transition: %s", b.Status)
	}
}

func TestBookingAction_Target(t *testing.T) {
	st, err := ActionStart.Target()
	if err != nil || st != BookingInProgress {
		t.Fatalf("start: got %s, %v", st, err)
	}
	if _, err := BookingAction("archive").Target(); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestParseBookingStatus(t *testing.T) {
	if _, err := ParseBookingStatus("shipped"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if st, err := ParseBookingStatus("in_progress"); err != nil || st != BookingInProgress {
		t.Fatalf("unexpected parse result %s, %v", st, err)
	}
}

func TestBooking_InvolvedParty(t *testing.T) {
	b := &Booking{ClientID: "c1", ProviderID: "p1"}
	if !b.InvolvedParty("c1") || !b.InvolvedParty("p1") {
		t.Fatalf("parties must be involved")
	}
	if b.InvolvedParty("x") || b.InvolvedParty("") {
		t.Fatalf("outsider reported as involved")
	}
}
