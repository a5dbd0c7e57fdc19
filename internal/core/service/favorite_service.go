package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

// FavoriteService maintains each client's set of favorite services.
type FavoriteService struct {
	favorites ports.FavoriteRepository
	services  ports.ServiceRepository
	log       zerolog.Logger
}

func NewFavoriteService(favorites ports.FavoriteRepository, services ports.ServiceRepository, log zerolog.Logger) *FavoriteService {
	return &FavoriteService{favorites: favorites, services: services, log: log}
}

func (s *FavoriteService) List(ctx context.Context, userID string) ([]string, error) {
	return s.favorites.List(ctx, userID)
}

// Add inserts serviceID into the set. Adding a present id is a no-op.
func (s *FavoriteService) Add(ctx context.Context, userID, serviceID string) ([]string, error) {
	if _, err := s.services.FindByID(ctx, serviceID); err != nil {
		return nil, err
	}
	added, err := s.favorites.Add(ctx, userID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("add favorite: %w", err)
	}
	if added {
		s.log.Debug().Str("user_id", userID).Str("service_id", serviceID).Msg("favorite added")
	}
	return s.favorites.List(ctx, userID)
}

// Remove deletes serviceID from the set. Removing an absent id is a no-op.
func (s *FavoriteService) Remove(ctx context.Context, userID, serviceID string) ([]string, error) {
	if _, err := s.favorites.Remove(ctx, userID, serviceID); err != nil {
		return nil, fmt.Errorf("remove favorite: %w", err)
	}
	return s.favorites.List(ctx, userID)
}

// Services resolves the favorites to services, then filters and sorts them.
// Search also matches the provider name; the default order is most recent.
func (s *FavoriteService) Services(ctx context.Context, userID string, in ports.ListServicesInput) ([]*domain.Service, error) {
	ids, err := s.favorites.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	all, err := s.services.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	inSet := domain.Predicate[*domain.Service](func(svc *domain.Service) bool {
		_, ok := set[svc.ID]
		return ok
	})

	f := in.Filter
	f.MatchProvider = true
	out := domain.Filter(all, append(f.Predicates(), inSet)...)
	domain.SortServices(out, in.Sort)
	return out, nil
}
