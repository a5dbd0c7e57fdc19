package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/service"
	"github.com/skattajobs/marketplace-api/internal/infrastructure/store"
	"github.com/skattajobs/marketplace-api/internal/pkg/token"
	"github.com/skattajobs/marketplace-api/internal/seed"
)

type testServer struct {
	t *testing.T
	h http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	s, err := store.Memory(t.TempDir())
	if err != nil {
		t.Fatalf("memory store: %v", err)
	}
	log := zerolog.Nop()
	ctx := context.Background()
	if _, err := seed.Run(ctx, seed.Repositories{
		Users: s.Users, Services: s.Services, Stages: s.Stages, Bookings: s.Bookings, Profiles: s.Profiles,
	}, "password", log); err != nil {
		t.Fatalf("seed: %v", err)
	}

	issuer := token.NewIssuer("test-secret", time.Hour)
	e := NewRouter(Dependencies{
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
	return &testServer{t: t, h: e}
}

func (ts *testServer) do(method, path, tok, body string, out any) int {
	ts.t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	ts.h.ServeHTTP(rec, req)
	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			ts.t.Fatalf("%s %s: invalid json %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec.Code
}

func (ts *testServer) login(email string) (string, *domain.User) {
	ts.t.Helper()
	var resp struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}
	code := ts.do(http.MethodPost, "/api/auth/login", "", `{"email":"`+email+`","password":"password"}`, &resp)
	if code != http.StatusOK {
		ts.t.Fatalf("login %s: expected 200, got %d", email, code)
	}
	return resp.Token, resp.User
}

func TestRouter_AdminLoginAndNavigation(t *testing.T) {
	ts := newTestServer(t)
	tok, user := ts.login(domain.DemoAdminEmail)
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", user.Role)
	}

	var d struct {
		Outcome string `json:"outcome"`
		Target  string `json:"target"`
	}
	ts.do(http.MethodGet, "/api/navigation/resolve?path=/admin/dashboard", tok, "", &d)
	if d.Outcome != "render" {
		t.Fatalf("expected admin dashboard to render, got %+v", d)
	}
	ts.do(http.MethodGet, "/api/navigation/resolve?path=/client-dashboard", tok, "", &d)
	if d.Outcome != "redirect" || d.Target != "/home" {
		t.Fatalf("expected redirect home, got %+v", d)
	}

	if code := ts.do(http.MethodGet, "/api/admin/stats", tok, "", nil); code != http.StatusOK {
		t.Fatalf("admin stats: expected 200, got %d", code)
	}
}

func TestRouter_RoleGating(t *testing.T) {
	ts := newTestServer(t)
	client, _ := ts.login(domain.DemoClientEmail)
	provider, _ := ts.login(domain.DemoProviderEmail)

	var errResp ErrorResponse
	if code := ts.do(http.MethodGet, "/api/admin/stats", client, "", &errResp); code != http.StatusForbidden {
		t.Fatalf("client on admin route: expected 403, got %d", code)
	}
	if errResp.Message == "" {
		t.Fatalf("expected a user-facing message, got %+v", errResp)
	}
	if code := ts.do(http.MethodPut, "/api/favorites/1", provider, "", nil); code != http.StatusForbidden {
		t.Fatalf("provider on favorites: expected 403, got %d", code)
	}
	if code := ts.do(http.MethodGet, "/api/bookings", "", "", nil); code != http.StatusUnauthorized {
		t.Fatalf("anonymous bookings: expected 401, got %d", code)
	}
}

func TestRouter_BookingLifecycle(t *testing.T) {
	ts := newTestServer(t)
	client, _ := ts.login(domain.DemoClientEmail)

	var b domain.Booking
	body := `{"service_id":"1","date":"2024-03-01","time":"09:00","duration":2,"location":"Secteur 15","payment_method":"cash"}`
	if code := ts.do(http.MethodPost, "/api/bookings", client, body, &b); code != http.StatusCreated {
		t.Fatalf("create booking: expected 201, got %d", code)
	}
	if b.TotalPrice != 5000 || b.ProviderID != "provider1" || b.Status != domain.BookingPending {
		t.Fatalf("unexpected booking: %+v", b)
	}

	path := "/api/bookings/" + b.ID
	for i := 0; i < 2; i++ {
		var got domain.Booking
		if code := ts.do(http.MethodPut, path, client, `{"status":"confirmed"}`, &got); code != http.StatusOK {
			t.Fatalf("confirm #%d: expected 200, got %d", i+1, code)
		}
		if got.Status != domain.BookingConfirmed {
			t.Fatalf("confirm #%d: status %s", i+1, got.Status)
		}
	}

	if code := ts.do(http.MethodPut, path, client, `{"status":"pending"}`, nil); code != http.StatusUnprocessableEntity {
		t.Fatalf("backwards transition: expected 422, got %d", code)
	}

	var cancelled domain.Booking
	if code := ts.do(http.MethodDelete, path, client, "", &cancelled); code != http.StatusOK || cancelled.Status != domain.BookingCancelled {
		t.Fatalf("cancel: got %d %+v", code, cancelled)
	}
}

func TestRouter_SearchPriceRange(t *testing.T) {
	ts := newTestServer(t)

	ids := func(path string) map[string]bool {
		var services []domain.Service
		if code := ts.do(http.MethodGet, path, "", "", &services); code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, code)
		}
		set := map[string]bool{}
		for _, s := range services {
			set[s.ID] = true
		}
		return set
	}

	if ids("/api/services/search?price_min=0&price_max=2000")["1"] {
		t.Fatalf("service 1 priced 2500 must be excluded by [0,2000]")
	}
	if !ids("/api/services/search?price_min=0&price_max=3000")["1"] {
		t.Fatalf("service 1 priced 2500 must be included by [0,3000]")
	}
	if len(ids("/api/services")) != 3 {
		t.Fatalf("expected the three seeded services")
	}
}

func TestRouter_LogoutRevokesToken(t *testing.T) {
	ts := newTestServer(t)
	tok, _ := ts.login(domain.DemoClientEmail)

	if code := ts.do(http.MethodGet, "/api/auth/profile", tok, "", nil); code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d", code)
	}
	if code := ts.do(http.MethodPost, "/api/auth/logout", tok, "", nil); code != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", code)
	}
	if code := ts.do(http.MethodGet, "/api/auth/profile", tok, "", nil); code != http.StatusUnauthorized {
		t.Fatalf("revoked token: expected 401, got %d", code)
	}
}

func TestRouter_FavoritesAreASet(t *testing.T) {
	ts := newTestServer(t)
	tok, _ := ts.login(domain.DemoClientEmail)

	var resp struct {
		Favorites []string `json:"favorites"`
	}
	ts.do(http.MethodPut, "/api/favorites/2", tok, "", &resp)
	ts.do(http.MethodPut, "/api/favorites/2", tok, "", &resp)
	if len(resp.Favorites) != 1 || resp.Favorites[0] != "2" {
		t.Fatalf("expected a single favorite, got %v", resp.Favorites)
	}
	ts.do(http.MethodDelete, "/api/favorites/3", tok, "", &resp)
	ts.do(http.MethodDelete, "/api/favorites/2", tok, "", &resp)
	if len(resp.Favorites) != 0 {
		t.Fatalf("expected no favorites, got %v", resp.Favorites)
	}
}

func TestRouter_Health(t *testing.T) {
	ts := newTestServer(t)
	if code := ts.do(http.MethodGet, "/health/ready", "", "", nil); code != http.StatusOK {
		t.Fatalf("readiness: expected 200, got %d", code)
	}
	if code := ts.do(http.MethodGet, "/api/nope", "", "", nil); code != http.StatusNotFound {
		t.Fatalf("unknown route: expected 404, got %d", code)
	}
}

func (ts *testServer) upload(tok, kind, filename, content string) *httptest.ResponseRecorder {
	ts.t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	_ = w.WriteField("type", kind)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		ts.t.Fatalf("create form file: %v", err)
	}
	_, _ = part.Write([]byte(content))
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	ts.h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_UploadRejectsMarkup(t *testing.T) {
	ts := newTestServer(t)
	tok, _ := ts.login(domain.DemoClientEmail)

	if rec := ts.upload(tok, "avatar", "x.html", "<script>alert(document.cookie)</script>"); rec.Code != http.StatusBadRequest {
		t.Fatalf("html avatar: expected 400, got %d %s", rec.Code, rec.Body.String())
	}

	rec := ts.upload(tok, "avatar", "me.png", "png-bytes")
	if rec.Code != http.StatusCreated {
		t.Fatalf("png avatar: expected 201, got %d %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	path := strings.TrimPrefix(resp.URL, "http://localhost:3001")

	get := httptest.NewRecorder()
	ts.h.ServeHTTP(get, httptest.NewRequest(http.MethodGet, path, nil))
	if get.Code != http.StatusOK || get.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("unexpected download %d %q", get.Code, get.Header().Get("Content-Type"))
	}
	if get.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("expected nosniff on served uploads")
	}
}

func TestRouter_DeletedUserLosesAccess(t *testing.T) {
	ts := newTestServer(t)
	admin, _ := ts.login(domain.DemoAdminEmail)
	client, user := ts.login(domain.DemoClientEmail)

	if code := ts.do(http.MethodDelete, "/api/users/"+user.ID, admin, "", nil); code != http.StatusOK && code != http.StatusNoContent {
		t.Fatalf("delete user: expected success, got %d", code)
	}

	body := `{"service_id":"1","date":"2024-03-01","time":"09:00","duration":2,"location":"Secteur 15","payment_method":"cash"}`
	if code := ts.do(http.MethodPost, "/api/bookings", client, body, nil); code != http.StatusUnauthorized {
		t.Fatalf("booking with a deleted user's token: expected 401, got %d", code)
	}
	if code := ts.do(http.MethodGet, "/api/admin/stats", admin, "", nil); code != http.StatusOK {
		t.Fatalf("admin must keep access, got %d", code)
	}
}
