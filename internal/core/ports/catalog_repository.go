package ports

import (
	"context"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// ServiceRepository defines persistence operations for catalogue services.
// List returns every stored service in listing order; filtering is done by
// the caller over the full collection.
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id string) error
}
