package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
	"github.com/skattajobs/marketplace-api/internal/pkg/token"
)

// AuthService implements registration, login and session management.
type AuthService struct {
	users    ports.UserRepository
	issuer   *token.Issuer
	denylist ports.TokenDenylist
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	issuer *token.Issuer,
	denylist ports.TokenDenylist,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, issuer: issuer, denylist: denylist, activity: activity, log: log}
}

// HashPassword is the bcrypt hash used for stored credentials.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := domain.NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}

	role := domain.RoleClient
	if in.Role != "" {
		r, err := domain.ParseRole(in.Role)
		if err != nil {
			return nil, err
		}
		role = r
	}
	if !role.SelfAssignable() {
		return nil, fmt.Errorf("%w: %s cannot be self-assigned", domain.ErrInvalidRole, role)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Phone:        in.Phone,
		Location:     in.Location,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	raw, _, err := s.issuer.Issue(created)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", created.ID).Str("role", string(role)).Msg("user registered")
	recordActivity(s.activity, created.ID, domain.ActivityRegister, created.ID, string(role))
	return &ports.AuthResult{Token: raw, User: created}, nil
}

// Login verifies credentials. Unknown e-mails and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Role.Valid() {
		return nil, fmt.Errorf("%w: stored role %q", domain.ErrInvalidRole, user.Role)
	}

	raw, _, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}
	recordActivity(s.activity, user.ID, domain.ActivityLogin, user.ID, "")
	return &ports.AuthResult{Token: raw, User: user}, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *token.Claims) error {
	if err := s.denylist.Revoke(ctx, claims.ID, claims.Expiry()); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	recordActivity(s.activity, claims.UserID(), domain.ActivityLogout, claims.UserID(), "")
	return nil
}

// Refresh exchanges a valid token for a new one carrying the user's current role.
func (s *AuthService) Refresh(ctx context.Context, claims *token.Claims) (*ports.AuthResult, error) {
	user, err := s.users.FindByID(ctx, claims.UserID())
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}

	raw, _, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}
	if err := s.denylist.Revoke(ctx, claims.ID, claims.Expiry()); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("revoke refreshed token failed")
	}
	return &ports.AuthResult{Token: raw, User: user}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}
