package client_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/api"
	"github.com/skattajobs/marketplace-api/internal/core/service"
	"github.com/skattajobs/marketplace-api/internal/infrastructure/store"
	"github.com/skattajobs/marketplace-api/internal/pkg/token"
	"github.com/skattajobs/marketplace-api/internal/seed"
	"github.com/skattajobs/marketplace-api/pkg/client"
	"github.com/skattajobs/marketplace-api/pkg/session"
)

func newAPI(t *testing.T) string {
	t.Helper()
	s, err := store.Memory(t.TempDir())
	if err != nil {
		t.Fatalf("memory store: %v", err)
	}
	log := zerolog.Nop()
	if _, err := seed.Run(context.Background(), seed.Repositories{
		Users: s.Users, Services: s.Services, Stages: s.Stages, Bookings: s.Bookings, Profiles: s.Profiles,
	}, "password", log); err != nil {
		t.Fatalf("seed: %v", err)
	}
	issuer := token.NewIssuer("contract-secret", time.Hour)
	router := api.NewRouter(api.Dependencies{
		Auth:      service.NewAuthService(s.Users, issuer, s.Denylist, nil, log),
		Users:     service.NewUserService(s.Users, s.Profiles, s.ProfileCache, s.Services, s.Bookings, s.Denylist, time.Hour, nil, log),
		Catalog:   service.NewCatalogService(s.Services, s.Users, nil, log),
		Stages:    service.NewStageService(s.Stages, s.Applications, nil, log),
		Bookings:  service.NewBookingService(s.Bookings, s.Services, nil, log),
		Favorites: service.NewFavoriteService(s.Favorites, s.Services, log),
		Admin:     service.NewAdminService(s.Users, s.Services, s.Stages, s.Bookings, s.Activity, nil, log),
		Uploads:   service.NewUploadService(s.Files, "http://localhost:3001/api", log),
		Tokens:    issuer,
		Denylist:  s.Denylist,
		Pingers:   s.Pingers,
		Registry:  prometheus.NewRegistry(),
		Log:       log,
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

func TestContract_ClientSession(t *testing.T) {
	ctx := context.Background()
	base := newAPI(t)
	store := session.NewMemoryStore(session.State{})
	c := client.New(store, client.WithBaseURL(base))

	u, err := c.Login(ctx, "client@test.com", "password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Role != client.RoleClient {
		t.Fatalf("expected client role, got %s", u.Role)
	}
	state, _ := store.Load(ctx)
	if !state.IsAuthenticated || state.Token == "" || state.User == nil {
		t.Fatalf("expected stored session, got %+v", state)
	}

	services, err := c.SearchServices(ctx, "", client.ServiceFilter{PriceMin: client.Price(0), PriceMax: client.Price(2000)})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	for _, s := range services {
		if s.ID == "1" {
			t.Fatalf("service 1 must be excluded by price_max=2000")
		}
	}

	b, err := c.CreateBooking(ctx, client.CreateBookingRequest{
		ServiceID: "2", Date: "2024-03-02", Time: "10:00", Duration: 3, Location: "Secteur 12", PaymentMethod: "moov_money",
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if b.TotalPrice != 5400 {
		t.Fatalf("expected total 5400, got %v", b.TotalPrice)
	}
	if _, err := c.UpdateBooking(ctx, b.ID, client.UpdateBookingRequest{Action: "confirm"}); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	favs, err := c.AddFavorite(ctx, "3")
	if err != nil || len(favs) != 1 {
		t.Fatalf("add favorite: %v %v", favs, err)
	}

	d, err := c.Resolve(ctx, "/admin/dashboard")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if d.Outcome != "redirect" || d.Target != "/home" {
		t.Fatalf("client on admin view should go home, got %+v", d)
	}

	if _, err := c.AdminStats(ctx); err == nil {
		t.Fatalf("expected forbidden for client on admin stats")
	}

	if err := c.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if state, _ := store.Load(ctx); state.IsAuthenticated {
		t.Fatalf("expected signed out after logout")
	}
}

func TestContract_RevokedTokenRedirectsToLogin(t *testing.T) {
	ctx := context.Background()
	base := newAPI(t)

	first := client.New(session.NewMemoryStore(session.State{}), client.WithBaseURL(base))
	if _, err := first.Login(ctx, "admin@skattajobs.com", "password"); err != nil {
		t.Fatalf("login: %v", err)
	}
	state, _ := first.Session(ctx)

	// A second client sharing the token sees it revoked after the first logs out.
	other := session.NewMemoryStore(state)
	second := client.New(other, client.WithBaseURL(base))
	if err := first.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}

	_, err := second.AdminStats(ctx)
	if !client.IsUnauthorized(err) {
		t.Fatalf("expected 401, got %v", err)
	}
	if err.(*client.APIError).RedirectTo != client.LoginPath {
		t.Fatalf("expected redirect to login, got %+v", err)
	}
	if s, _ := other.Load(ctx); s.Token != "" {
		t.Fatalf("expected token cleared")
	}
}
