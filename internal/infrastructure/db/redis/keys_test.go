package redis

import (
	"testing"
	"time"
)

func TestKeys(t *testing.T) {
	if got := profileKey("u1"); got != "profile:u1" {
		t.Fatalf("unexpected profile key %q", got)
	}
	if got := revokedKey("abc"); got != "revoked:abc" {
		t.Fatalf("unexpected revoked key %q", got)
	}
}

func TestRevocationTTL(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := revocationTTL(now, now.Add(time.Hour)); got != time.Hour {
		t.Fatalf("expected 1h, got %v", got)
	}
	if got := revocationTTL(now, now.Add(-time.Minute)); got > 0 {
		t.Fatalf("expired token must not be stored, got %v", got)
	}
	if got := revocationTTL(now, time.Time{}); got != fallbackRevocationTTL {
		t.Fatalf("expected fallback ttl, got %v", got)
	}
}
