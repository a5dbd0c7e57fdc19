package ports

import (
	"context"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/pkg/token"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
	Location string
}

// AuthResult is returned by every operation that issues a token.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, claims *token.Claims) error
	Refresh(ctx context.Context, claims *token.Claims) (*AuthResult, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
