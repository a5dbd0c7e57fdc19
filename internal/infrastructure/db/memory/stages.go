package memory

import (
	"context"
	"sync"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// StageRepository keeps stage offers in insertion order.
type StageRepository struct {
	offers *collection[*domain.StageOffer]
}

func NewStageRepository() *StageRepository {
	return &StageRepository{offers: newCollection((*domain.StageOffer).Clone)}
}

func (r *StageRepository) Create(_ context.Context, o *domain.StageOffer) error {
	if !r.offers.insert(o.ID, o) {
		return domain.ErrValidation
	}
	return nil
}

func (r *StageRepository) FindByID(_ context.Context, id string) (*domain.StageOffer, error) {
	o, ok := r.offers.get(id)
	if !ok {
		return nil, domain.ErrStageNotFound
	}
	return o, nil
}

func (r *StageRepository) List(_ context.Context) ([]*domain.StageOffer, error) {
	return r.offers.all(), nil
}

func (r *StageRepository) IncrementApplicants(_ context.Context, id string) error {
	if !r.offers.mutate(id, func(o *domain.StageOffer) { o.Applicants++ }) {
		return domain.ErrStageNotFound
	}
	return nil
}

func cloneApplication(a *domain.StageApplication) *domain.StageApplication {
	c := *a
	return &c
}

// ApplicationRepository stores at most one application per user and offer.
type ApplicationRepository struct {
	mu   sync.Mutex
	apps *collection[*domain.StageApplication]
	seen map[[2]string]struct{}
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{apps: newCollection(cloneApplication), seen: make(map[[2]string]struct{})}
}

func (r *ApplicationRepository) Create(_ context.Context, a *domain.StageApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]string{a.StageID, a.UserID}
	if _, ok := r.seen[key]; ok {
		return domain.ErrAlreadyApplied
	}
	if !r.apps.insert(a.ID, a) {
		return domain.ErrAlreadyApplied
	}
	r.seen[key] = struct{}{}
	return nil
}

func (r *ApplicationRepository) ListByUser(_ context.Context, userID string) ([]*domain.StageApplication, error) {
	return domain.Filter(r.apps.all(), func(a *domain.StageApplication) bool { return a.UserID == userID }), nil
}

func (r *ApplicationRepository) List(_ context.Context) ([]*domain.StageApplication, error) {
	return r.apps.all(), nil
}
