package handler

import (
	"strings"
	"testing"
)

func TestValidator_UsesWireNames(t *testing.T) {
	err := NewValidator().Validate(&createBookingRequest{Duration: 1, PaymentMethod: "card"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	msg := err.Error()
	for _, want := range []string{"service_id is required", "payment_method must be one of"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestValidator_BookingStatusTag(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(&updateBookingRequest{Status: "in_progress"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.Validate(&updateBookingRequest{Action: "confirm"}); err != nil {
		t.Fatalf("empty status must pass: %v", err)
	}
	if err := v.Validate(&updateBookingRequest{Status: "archived"}); err == nil {
		t.Fatalf("expected an error for an unknown status")
	}
}
