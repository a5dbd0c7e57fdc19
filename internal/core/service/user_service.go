package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

// UserService serves the user directory, lazily cached profiles and stats.
type UserService struct {
	users    ports.UserRepository
	profiles ports.ProfileRepository
	cache    ports.ProfileCache
	services ports.ServiceRepository
	bookings ports.BookingRepository
	denylist ports.TokenDenylist

	// sessionTTL bounds the lifetime of tokens issued before a deletion.
	sessionTTL time.Duration
	activity   ports.ActivityRecorder
	log        zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	profiles ports.ProfileRepository,
	cache ports.ProfileCache,
	services ports.ServiceRepository,
	bookings ports.BookingRepository,
	denylist ports.TokenDenylist,
	sessionTTL time.Duration,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) *UserService {
	return &UserService{
		users:      users,
		profiles:   profiles,
		cache:      cache,
		services:   services,
		bookings:   bookings,
		denylist:   denylist,
		sessionTTL: sessionTTL,
		activity:   activity,
		log:        log,
	}
}

func (s *UserService) List(ctx context.Context, filter ports.UserFilter) ([]*domain.User, error) {
	return s.users.List(ctx, filter)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Profile returns the cached profile for id, assembling and caching it on a
// miss. Cached entries are never invalidated.
func (s *UserService) Profile(ctx context.Context, id string) (*domain.UserProfile, error) {
	cached, ok, err := s.cache.Get(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("profile cache read failed")
	} else if ok {
		return cached, nil
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile, err := s.assemble(ctx, user)
	if err != nil {
		return nil, err
	}
	s.store(ctx, profile)
	return profile, nil
}

// UpdateProfile merges patch into the account and the extended profile, then
// overwrites the cached entry. Only the user or an admin may do so.
func (s *UserService) UpdateProfile(ctx context.Context, actor domain.Actor, id string, patch domain.ProfilePatch) (*domain.UserProfile, error) {
	if !actor.OwnsOrAdmin(id) {
		return nil, domain.ErrForbidden
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Apply(patch.AccountPatch()) {
		user.UpdatedAt = time.Now().UTC()
		if err := s.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
	}

	profile, err := s.assemble(ctx, user)
	if err != nil {
		return nil, err
	}
	profile.Merge(patch)
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	s.store(ctx, profile)

	recordActivity(s.activity, actor.UserID, domain.ActivityProfileUpdate, id, "")
	return profile, nil
}

// Delete removes a user account and revokes its outstanding tokens. Admins
// cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin() || actor.UserID == id {
		return domain.ErrForbidden
	}
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.denylist.Revoke(ctx, domain.SessionRevocationKey(id), time.Now().Add(s.sessionTTL)); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info().Str("user_id", id).Str("actor_id", actor.UserID).Msg("user deleted")
	recordActivity(s.activity, actor.UserID, domain.ActivityUserDelete, id, "")
	return nil
}

// Stats summarises the dashboard figures of user id.
func (s *UserService) Stats(ctx context.Context, actor domain.Actor, id string) (*ports.UserStats, error) {
	if !actor.OwnsOrAdmin(id) {
		return nil, domain.ErrForbidden
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stats := &ports.UserStats{UserID: user.ID, Role: user.Role}
	filter := domain.BookingFilter{ClientID: user.ID}
	if user.Role == domain.RoleProvider {
		filter = domain.BookingFilter{ProviderID: user.ID}

		all, err := s.services.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
		own := domain.ServiceFilter{ProviderID: user.ID}.Apply(all)
		stats.Services = len(own)
		if len(own) > 0 {
			var sum float64
			for _, svc := range own {
				sum += svc.Rating
			}
			stats.AverageRating = sum / float64(len(own))
		}
	}

	bookings, err := s.bookings.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	stats.TotalBookings = len(bookings)
	var completedTotal float64
	for _, b := range bookings {
		if b.Status == domain.BookingCompleted {
			stats.CompletedBookings++
			completedTotal += b.TotalPrice
		}
	}
	if user.Role == domain.RoleProvider {
		stats.Revenue = completedTotal
	} else {
		stats.TotalSpent = completedTotal
	}
	return stats, nil
}

// assemble combines the account record with any stored extended fields.
func (s *UserService) assemble(ctx context.Context, user *domain.User) (*domain.UserProfile, error) {
	profile, err := s.profiles.Find(ctx, user.ID)
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return domain.ProfileFromUser(user), nil
	case err != nil:
		return nil, fmt.Errorf("load profile: %w", err)
	}
	profile.Overlay(user)
	return profile, nil
}

func (s *UserService) store(ctx context.Context, p *domain.UserProfile) {
	if err := s.cache.Set(ctx, p); err != nil {
		s.log.Warn().Err(err).Str("user_id", p.ID).Msg("profile cache write failed")
	}
}
