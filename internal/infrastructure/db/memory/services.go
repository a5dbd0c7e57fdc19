package memory

import (
	"context"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// ServiceRepository keeps catalogue services in insertion order.
type ServiceRepository struct {
	services *collection[*domain.Service]
}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{services: newCollection((*domain.Service).Clone)}
}

func (r *ServiceRepository) Create(_ context.Context, s *domain.Service) error {
	if !r.services.insert(s.ID, s) {
		return domain.ErrValidation
	}
	return nil
}

func (r *ServiceRepository) FindByID(_ context.Context, id string) (*domain.Service, error) {
	s, ok := r.services.get(id)
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	return s, nil
}

func (r *ServiceRepository) List(_ context.Context) ([]*domain.Service, error) {
	return r.services.all(), nil
}

func (r *ServiceRepository) Update(_ context.Context, s *domain.Service) error {
	if !r.services.replace(s.ID, s) {
		return domain.ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepository) Delete(_ context.Context, id string) error {
	if !r.services.remove(id) {
		return domain.ErrServiceNotFound
	}
	return nil
}
