package memory

import (
	"context"
	"sync"
)

// FavoriteRepository keeps one ordered set of service ids per user.
type FavoriteRepository struct {
	mu     sync.RWMutex
	byUser map[string][]string
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{byUser: make(map[string][]string)}
}

func (r *FavoriteRepository) Add(_ context.Context, userID, serviceID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.byUser[userID] {
		if id == serviceID {
			return false, nil
		}
	}
	r.byUser[userID] = append(r.byUser[userID], serviceID)
	return true, nil
}

func (r *FavoriteRepository) Remove(_ context.Context, userID, serviceID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := r.byUser[userID]
	for i, id := range ids {
		if id == serviceID {
			r.byUser[userID] = append(ids[:i:i], ids[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *FavoriteRepository) List(_ context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string{}, r.byUser[userID]...), nil
}
