package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

// CatalogService manages the services published by providers.
type CatalogService struct {
	services ports.ServiceRepository
	users    ports.UserRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewCatalogService(services ports.ServiceRepository, users ports.UserRepository, activity ports.ActivityRecorder, log zerolog.Logger) *CatalogService {
	return &CatalogService{services: services, users: users, activity: activity, log: log}
}

// List filters the whole catalogue. Inactive services are only visible to
// admins and to the provider listing their own services.
func (s *CatalogService) List(ctx context.Context, actor domain.Actor, in ports.ListServicesInput) ([]*domain.Service, error) {
	all, err := s.services.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	f := in.Filter
	if !actor.IsAdmin() && (f.ProviderID == "" || f.ProviderID != actor.UserID) {
		f.ActiveOnly = true
	}
	out := f.Apply(all)
	if in.Sort != "" {
		domain.SortServices(out, in.Sort)
	}
	return out, nil
}

// Search is List with the search page's default price range.
func (s *CatalogService) Search(ctx context.Context, actor domain.Actor, in ports.ListServicesInput) ([]*domain.Service, error) {
	if in.Filter.Price == nil {
		r := domain.DefaultPriceRange
		in.Filter.Price = &r
	}
	return s.List(ctx, actor, in)
}

func (s *CatalogService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Service, error) {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive && !actor.OwnsOrAdmin(svc.ProviderID) {
		return nil, domain.ErrServiceNotFound
	}
	return svc, nil
}

func (s *CatalogService) Create(ctx context.Context, actor domain.Actor, in ports.CreateServiceInput) (*domain.Service, error) {
	if actor.Role != domain.RoleProvider {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Category) == "" {
		return nil, fmt.Errorf("%w: title and category are required", domain.ErrValidation)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	provider, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	now := time.Now().UTC()
	svc := &domain.Service{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		ProviderID:   provider.ID,
		ProviderName: provider.Name,
		Category:     in.Category,
		Price:        in.Price,
		Location:     in.Location,
		Availability: in.Availability,
		Tags:         append([]string{}, in.Tags...),
		Images:       append([]string{}, in.Images...),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info().Str("service_id", svc.ID).Str("provider_id", provider.ID).Msg("service created")
	recordActivity(s.activity, actor.UserID, domain.ActivityServiceCreate, svc.ID, svc.Title)
	return svc, nil
}

func (s *CatalogService) Update(ctx context.Context, actor domain.Actor, id string, patch domain.ServicePatch) (*domain.Service, error) {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.OwnsOrAdmin(svc.ProviderID) {
		return nil, domain.ErrForbidden
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", domain.ErrValidation)
	}

	svc.Apply(patch, time.Now().UTC())
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	recordActivity(s.activity, actor.UserID, domain.ActivityServiceUpdate, svc.ID, "")
	return svc, nil
}

func (s *CatalogService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.OwnsOrAdmin(svc.ProviderID) {
		return domain.ErrForbidden
	}
	if err := s.services.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	s.log.Info().Str("service_id", id).Str("actor_id", actor.UserID).Msg("service deleted")
	recordActivity(s.activity, actor.UserID, domain.ActivityServiceDelete, id, svc.Title)
	return nil
}
