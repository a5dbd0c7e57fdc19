package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/infrastructure/db/memory"
	"github.com/skattajobs/marketplace-api/internal/pkg/token"
)

const demoPassword = "password"

var (
	demoHashOnce sync.Once
	demoHash     string
)

type stubRecorder struct {
	mu      sync.Mutex
	entries []domain.ActivityLog
}

func (r *stubRecorder) Record(e domain.ActivityLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *stubRecorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

type fixture struct {
	users        *memory.UserRepository
	services     *memory.ServiceRepository
	stages       *memory.StageRepository
	applications *memory.ApplicationRepository
	bookings     *memory.BookingRepository
	profiles     *memory.ProfileRepository
	cache        *memory.ProfileCache
	favorites    *memory.FavoriteRepository
	logs         *memory.ActivityRepository
	denylist     *memory.TokenDenylist
	issuer       *token.Issuer
	recorder     *stubRecorder
	log          zerolog.Logger
}

// newFixture returns memory repositories loaded with the demo data.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	demoHashOnce.Do(func() {
		h, err := HashPassword(demoPassword)
		if err != nil {
			panic(err)
		}
		demoHash = h
	})

	f := &fixture{
		users:        memory.NewUserRepository(),
		services:     memory.NewServiceRepository(),
		stages:       memory.NewStageRepository(),
		applications: memory.NewApplicationRepository(),
		bookings:     memory.NewBookingRepository(),
		profiles:     memory.NewProfileRepository(),
		cache:        memory.NewProfileCache(),
		favorites:    memory.NewFavoriteRepository(),
		logs:         memory.NewActivityRepository(0),
		denylist:     memory.NewTokenDenylist(),
		issuer:       token.NewIssuer("secret", time.Hour),
		recorder:     &stubRecorder{},
		log:          zerolog.Nop(),
	}

	ctx := context.Background()
	for _, u := range domain.SeedUsers(demoHash) {
		if _, err := f.users.Create(ctx, u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	for _, s := range domain.SeedServices() {
		if err := f.services.Create(ctx, s); err != nil {
			t.Fatalf("seed service: %v", err)
		}
	}
	for _, o := range domain.SeedStageOffers() {
		if err := f.stages.Create(ctx, o); err != nil {
			t.Fatalf("seed stage: %v", err)
		}
	}
	for _, b := range domain.SeedBookings() {
		if err := f.bookings.Create(ctx, b); err != nil {
			t.Fatalf("seed booking: %v", err)
		}
	}
	for _, p := range domain.SeedProfiles() {
		if err := f.profiles.Upsert(ctx, p); err != nil {
			t.Fatalf("seed profile: %v", err)
		}
	}
	return f
}

var (
	adminActor    = domain.Actor{UserID: "admin1", Role: domain.RoleAdmin}
	clientActor   = domain.Actor{UserID: "client1", Role: domain.RoleClient}
	providerActor = domain.Actor{UserID: "provider1", Role: domain.RoleProvider}
	otherProvider = domain.Actor{UserID: "provider2", Role: domain.RoleProvider}
)
