package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/infrastructure/db/memory"
	"github.com/skattajobs/marketplace-api/internal/pkg/token"
)

func issue(t *testing.T, issuer *token.Issuer) (string, *token.Claims) {
	t.Helper()
	signed, claims, err := issuer.Issue(&domain.User{ID: "admin1", Email: domain.DemoAdminEmail, Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return signed, claims
}

func run(e *echo.Echo, mw echo.MiddlewareFunc, header string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := mw(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	issuer := token.NewIssuer("secret", time.Hour)
	signed, _ := issue(t, issuer)

	called := false
	rec := run(e, Auth(issuer, memory.NewTokenDenylist(), zerolog.Nop()), "Bearer "+signed, func(c echo.Context) error {
		called = true
		actor := Actor(c)
		if actor.UserID != "admin1" || actor.Role != domain.RoleAdmin {
			t.Fatalf("unexpected actor: %+v", actor)
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	other := token.NewIssuer("other-secret", time.Hour)
	foreign, _ := issue(t, other)

	revoked := memory.NewTokenDenylist()
	revokedToken, claims := issue(t, issuer)
	_ = revoked.Revoke(context.Background(), claims.ID, claims.Expiry())

	deleted := memory.NewTokenDenylist()
	deletedToken, _ := issue(t, issuer)
	_ = deleted.Revoke(context.Background(), domain.SessionRevocationKey("admin1"), time.Now().Add(time.Hour))

	tests := []struct {
		name     string
		header   string
		denylist *memory.TokenDenylist
	}{
		{"missing header", "", memory.NewTokenDenylist()},
		{"invalid header format", "Token abc", memory.NewTokenDenylist()},
		{"invalid token", "Bearer not-a-token", memory.NewTokenDenylist()},
		{"wrong secret", "Bearer " + foreign, memory.NewTokenDenylist()},
		{"revoked", "Bearer " + revokedToken, revoked},
		{"deleted user", "Bearer " + deletedToken, deleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := run(e, Auth(issuer, tt.denylist, zerolog.Nop()), tt.header, func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	e := echo.New()
	issuer := token.NewIssuer("secret", time.Hour)
	mw := OptionalAuth(issuer, memory.NewTokenDenylist(), zerolog.Nop())

	rec := run(e, mw, "", func(c echo.Context) error {
		if Claims(c) != nil {
			t.Fatalf("expected anonymous request")
		}
		return c.NoContent(http.StatusNoContent)
	})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = run(e, mw, "Bearer garbage", func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad token, got %d", rec.Code)
	}
}
