package ports

import (
	"context"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// CreateServiceInput carries the fields of a new catalogue service.
type CreateServiceInput struct {
	Title        string
	Description  string
	Category     string
	Price        float64
	Location     string
	Availability string
	Tags         []string
	Images       []string
}

// ListServicesInput carries filter and sort parameters of a service listing.
type ListServicesInput struct {
	Filter domain.ServiceFilter
	Sort   string
}

type CatalogService interface {
	List(ctx context.Context, actor domain.Actor, input ListServicesInput) ([]*domain.Service, error)
	Search(ctx context.Context, actor domain.Actor, input ListServicesInput) ([]*domain.Service, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Service, error)
	Create(ctx context.Context, actor domain.Actor, input CreateServiceInput) (*domain.Service, error)
	Update(ctx context.Context, actor domain.Actor, id string, patch domain.ServicePatch) (*domain.Service, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
