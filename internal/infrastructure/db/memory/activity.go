package memory

import (
	"context"
	"sync"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

const defaultActivityCapacity = 1000

// ActivityRepository keeps the most recent audit entries in a bounded buffer.
type ActivityRepository struct {
	mu       sync.RWMutex
	entries  []*domain.ActivityLog
	capacity int
}

func NewActivityRepository(capacity int) *ActivityRepository {
	if capacity <= 0 {
		capacity = defaultActivityCapacity
	}
	return &ActivityRepository{capacity: capacity}
}

func (r *ActivityRepository) Insert(_ context.Context, entry *domain.ActivityLog) error {
	c := *entry
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, &c)
	if over := len(r.entries) - r.capacity; over > 0 {
		r.entries = append([]*domain.ActivityLog(nil), r.entries[over:]...)
	}
	return nil
}

func (r *ActivityRepository) Recent(_ context.Context, limit int) ([]*domain.ActivityLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.ActivityLog, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		c := *r.entries[i]
		out = append(out, &c)
	}
	return out, nil
}
