package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

func newAuth(f *fixture) *AuthService {
	return NewAuthService(f.users, f.issuer, f.denylist, f.recorder, f.log)
}

func TestAuthService_Register_Success(t *testing.T) {
	f := newFixture(t)
	svc := newAuth(f)

	res, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Awa", Email: "Awa@Example.com", Password: "pass123", Role: "prestataire",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected token")
	}
	if res.User.Email != "awa@example.com" || res.User.Role != domain.RoleProvider {
		t.Fatalf("unexpected user: %+v", res.User)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	claims, err := f.issuer.Parse(res.Token)
	if err != nil || claims.UserID() != res.User.ID {
		t.Fatalf("token does not identify the new user: %v", err)
	}
}

func TestAuthService_Register_DefaultsToClient(t *testing.T) {
	svc := newAuth(newFixture(t))
	res, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Issa", Email: "issa@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.User.Role != domain.RoleClient {
		t.Fatalf("expected client role, got %s", res.User.Role)
	}
}

func TestAuthService_Register_RejectsRoles(t *testing.T) {
	svc := newAuth(newFixture(t))
	ctx := context.Background()

	for _, role := range []string{"admin", "superuser"} {
		_, err := svc.Register(ctx, ports.RegisterInput{Name: "Eve", Email: "eve@example.com", Password: "x", Role: role})
		if !errors.Is(err, domain.ErrInvalidRole) {
			t.Fatalf("role %q: expected ErrInvalidRole, got %v", role, err)
		}
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuth(newFixture(t))
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@b.c"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuth(newFixture(t))
	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Admin", Email: domain.DemoAdminEmail, Password: "x", Role: "client",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_DemoAdmin(t *testing.T) {
	f := newFixture(t)
	svc := newAuth(f)

	res, err := svc.Login(context.Background(), domain.DemoAdminEmail, demoPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.User.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %s", res.User.Role)
	}
	claims, err := f.issuer.Parse(res.Token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected admin claim, got %s", claims.Role)
	}
	if got := f.recorder.actions(); len(got) != 1 || got[0] != domain.ActivityLogin {
		t.Fatalf("expected one login activity, got %v", got)
	}
}

func TestAuthService_Login_Failures(t *testing.T) {
	svc := newAuth(newFixture(t))
	ctx := context.Background()

	cases := []struct{ email, password string }{
		{domain.DemoAdminEmail, "wrong"},
		{"ghost@example.com", demoPassword},
		{"", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Login(ctx, tc.email, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("%q/%q: expected ErrInvalidCredentials, got %v", tc.email, tc.password, err)
		}
	}
}

func TestAuthService_LogoutRevokes(t *testing.T) {
	f := newFixture(t)
	svc := newAuth(f)
	ctx := context.Background()

	res, _ := svc.Login(ctx, domain.DemoClientEmail, demoPassword)
	claims, _ := f.issuer.Parse(res.Token)
	if err := svc.Logout(ctx, claims); err != nil {
		t.Fatalf("logout: %v", err)
	}
	revoked, _ := f.denylist.IsRevoked(ctx, claims.ID)
	if !revoked {
		t.Fatalf("token not revoked after logout")
	}
}

func TestAuthService_Refresh(t *testing.T) {
	f := newFixture(t)
	svc := newAuth(f)
	ctx := context.Background()

	res, _ := svc.Login(ctx, domain.DemoProviderEmail, demoPassword)
	old, _ := f.issuer.Parse(res.Token)

	refreshed, err := svc.Refresh(ctx, old)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	fresh, err := f.issuer.Parse(refreshed.Token)
	if err != nil || fresh.ID == old.ID {
		t.Fatalf("expected a new token id")
	}
	if revoked, _ := f.denylist.IsRevoked(ctx, old.ID); !revoked {
		t.Fatalf("old token must be revoked")
	}
}
