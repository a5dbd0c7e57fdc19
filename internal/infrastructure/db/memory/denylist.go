package memory

import (
	"context"
	"sync"
	"time"
)

// TokenDenylist remembers revoked token ids until their expiry.
type TokenDenylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewTokenDenylist() *TokenDenylist {
	return &TokenDenylist{revoked: make(map[string]time.Time), now: time.Now}
}

func (d *TokenDenylist) Revoke(_ context.Context, jti string, until time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sweep()
	d.revoked[jti] = until
	return nil
}

func (d *TokenDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	until, ok := d.revoked[jti]
	if !ok {
		return false, nil
	}
	if !until.IsZero() && d.now().After(until) {
		delete(d.revoked, jti)
		return false, nil
	}
	return true, nil
}

// sweep drops expired entries. Callers hold d.mu.
func (d *TokenDenylist) sweep() {
	now := d.now()
	for jti, until := range d.revoked {
		if !until.IsZero() && now.After(until) {
			delete(d.revoked, jti)
		}
	}
}
