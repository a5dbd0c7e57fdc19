// Package seed loads the demo catalogue and accounts. Seeding is idempotent:
// records that already exist are left untouched.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
	"github.com/skattajobs/marketplace-api/internal/core/service"
)

// Repositories are the stores the seeder writes to.
type Repositories struct {
	Users    ports.UserRepository
	Services ports.ServiceRepository
	Stages   ports.StageRepository
	Bookings ports.BookingRepository
	Profiles ports.ProfileRepository
}

// Result counts the records inserted per kind.
type Result struct {
	Users    int
	Services int
	Stages   int
	Bookings int
	Profiles int
}

// Run inserts the demo data. Every demo account uses password.
func Run(ctx context.Context, repos Repositories, password string, log zerolog.Logger) (Result, error) {
	var res Result

	hash, err := service.HashPassword(password)
	if err != nil {
		return res, err
	}

	for _, u := range domain.SeedUsers(hash) {
		_, err := repos.Users.FindByEmail(ctx, u.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return res, fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		if _, err := repos.Users.Create(ctx, u); err != nil && !errors.Is(err, domain.ErrUserExists) {
			return res, fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		res.Users++
	}

	if res.Services, err = ensure(ctx, "service", domain.SeedServices(), func(s *domain.Service) string { return s.ID },
		func(ctx context.Context, id string) error { _, err := repos.Services.FindByID(ctx, id); return err },
		domain.ErrServiceNotFound, repos.Services.Create); err != nil {
		return res, err
	}

	if res.Stages, err = ensure(ctx, "stage offer", domain.SeedStageOffers(), func(o *domain.StageOffer) string { return o.ID },
		func(ctx context.Context, id string) error { _, err := repos.Stages.FindByID(ctx, id); return err },
		domain.ErrStageNotFound, repos.Stages.Create); err != nil {
		return res, err
	}

	if res.Bookings, err = ensure(ctx, "booking", domain.SeedBookings(), func(b *domain.Booking) string { return b.ID },
		func(ctx context.Context, id string) error { _, err := repos.Bookings.FindByID(ctx, id); return err },
		domain.ErrBookingNotFound, repos.Bookings.Create); err != nil {
		return res, err
	}

	if res.Profiles, err = ensure(ctx, "profile", domain.SeedProfiles(), func(p *domain.UserProfile) string { return p.ID },
		func(ctx context.Context, id string) error { _, err := repos.Profiles.Find(ctx, id); return err },
		domain.ErrProfileNotFound, repos.Profiles.Upsert); err != nil {
		return res, err
	}

	log.Info().
		Int("users", res.Users).
		Int("services", res.Services).
		Int("stages", res.Stages).
		Int("bookings", res.Bookings).
		Int("profiles", res.Profiles).
		Msg("demo data seeded")
	return res, nil
}

// ensure creates each item whose id is not found yet.
func ensure[T any](
	ctx context.Context,
	kind string,
	items []T,
	id func(T) string,
	find func(context.Context, string) error,
	notFound error,
	create func(context.Context, T) error,
) (int, error) {
	created := 0
	for _, item := range items {
		err := find(ctx, id(item))
		if err == nil {
			continue
		}
		if !errors.Is(err, notFound) {
			return created, fmt.Errorf("seed %s %s: %w", kind, id(item), err)
		}
		if err := create(ctx, item); err != nil {
			return created, fmt.Errorf("seed %s %s: %w", kind, id(item), err)
		}
		created++
	}
	return created, nil
}
