package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = 200
)

// AdminService backs the admin dashboard.
type AdminService struct {
	users    ports.UserRepository
	services ports.ServiceRepository
	stages   ports.StageRepository
	bookings ports.BookingRepository
	logs     ports.ActivityRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	services ports.ServiceRepository,
	stages ports.StageRepository,
	bookings ports.BookingRepository,
	logs ports.ActivityRepository,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		users:    users,
		services: services,
		stages:   stages,
		bookings: bookings,
		logs:     logs,
		activity: activity,
		log:      log,
	}
}

func (s *AdminService) Stats(ctx context.Context) (*ports.AdminStats, error) {
	users, err := s.users.List(ctx, ports.UserFilter{})
	if err != nil {
		return nil, fmt.Errorf("stats users: %w", err)
	}
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats services: %w", err)
	}
	stages, err := s.stages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats stages: %w", err)
	}
	bookings, err := s.bookings.List(ctx, domain.BookingFilter{})
	if err != nil {
		return nil, fmt.Errorf("stats bookings: %w", err)
	}

	stats := &ports.AdminStats{
		Users:         map[domain.Role]int{domain.RoleClient: 0, domain.RoleProvider: 0, domain.RoleAdmin: 0},
		TotalUsers:    len(users),
		Services:      len(services),
		StageOffers:   len(stages),
		Bookings:      make(map[domain.BookingStatus]int),
		TotalBookings: len(bookings),
	}
	for _, u := range users {
		stats.Users[u.Role]++
	}
	for _, svc := range services {
		if svc.IsActive {
			stats.ActiveServices++
		}
	}
	for _, b := range bookings {
		stats.Bookings[b.Status]++
		if b.Status == domain.BookingCompleted {
			stats.Revenue += b.TotalPrice
		}
	}
	return stats, nil
}

// Reports returns one row per service category, sorted by category name.
func (s *AdminService) Reports(ctx context.Context) ([]ports.CategoryReport, error) {
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reports services: %w", err)
	}
	bookings, err := s.bookings.List(ctx, domain.BookingFilter{})
	if err != nil {
		return nil, fmt.Errorf("reports bookings: %w", err)
	}

	rows := make(map[string]*ports.CategoryReport)
	row := func(category string) *ports.CategoryReport {
		r, ok := rows[category]
		if !ok {
			r = &ports.CategoryReport{Category: category}
			rows[category] = r
		}
		return r
	}

	categoryOf := make(map[string]string, len(services))
	for _, svc := range services {
		categoryOf[svc.ID] = svc.Category
		row(svc.Category).Services++
	}
	for _, b := range bookings {
		category, ok := categoryOf[b.ServiceID]
		if !ok {
			// booking of a deleted service
			category = "Autre"
		}
		r := row(category)
		r.Bookings++
		if b.Status == domain.BookingCompleted {
			r.Completed++
			r.Revenue += b.TotalPrice
		}
	}

	out := make([]ports.CategoryReport, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

// Moderate activates or deactivates a service.
func (s *AdminService) Moderate(ctx context.Context, actor domain.Actor, serviceID, action string) (*domain.Service, error) {
	var active bool
	switch action {
	case ports.ModerateActivate:
		active = true
	case ports.ModerateDeactivate:
		active = false
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, action)
	}

	svc, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	svc.Apply(domain.ServicePatch{IsActive: &active}, time.Now().UTC())
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("moderate: %w", err)
	}

	s.log.Info().Str("service_id", serviceID).Str("action", action).Str("actor_id", actor.UserID).Msg("service moderated")
	recordActivity(s.activity, actor.UserID, domain.ActivityModerate, serviceID, action)
	return svc, nil
}

// Logs returns the newest activity entries. limit defaults to 50 and is
// capped at 200.
func (s *AdminService) Logs(ctx context.Context, limit int) ([]*domain.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}
	return s.logs.Recent(ctx, limit)
}
