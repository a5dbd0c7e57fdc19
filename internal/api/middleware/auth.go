package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
	"github.com/skattajobs/marketplace-api/internal/pkg/token"
)

const claimsKey = "claims"

// TokenParser verifies a raw bearer token.
type TokenParser interface {
	Parse(raw string) (*token.Claims, error)
}

// Auth validates the bearer token, rejects revoked tokens or tokens of
// deleted users, and injects the claims into the context.
func Auth(parser TokenParser, denylist ports.TokenDenylist, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			claims, err := authenticate(c, parser, denylist, authHeader)
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					return he
				}
				log.Error().Err(err).Msg("token denylist lookup failed")
				return err
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// OptionalAuth behaves like Auth when an Authorization header is present
// and lets anonymous requests through otherwise.
func OptionalAuth(parser TokenParser, denylist ports.TokenDenylist, log zerolog.Logger) echo.MiddlewareFunc {
	required := Auth(parser, denylist, log)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		withAuth := required(next)
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return next(c)
			}
			return withAuth(c)
		}
	}
}

func authenticate(c echo.Context, parser TokenParser, denylist ports.TokenDenylist, header string) (*token.Claims, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	claims, err := parser.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	for _, key := range []string{claims.ID, domain.SessionRevocationKey(claims.UserID())} {
		revoked, err := denylist.IsRevoked(c.Request().Context(), key)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, domain.ErrTokenRevoked.Error())
		}
	}
	return claims, nil
}

// Claims returns the claims injected by Auth, or nil for anonymous requests.
func Claims(c echo.Context) *token.Claims {
	claims, _ := c.Get(claimsKey).(*token.Claims)
	return claims
}

// Actor returns the authenticated actor, or the zero Actor for anonymous requests.
func Actor(c echo.Context) domain.Actor {
	if claims := Claims(c); claims != nil {
		return claims.Actor()
	}
	return domain.Actor{}
}
