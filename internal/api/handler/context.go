package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skattajobs/marketplace-api/internal/api/middleware"
	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/pkg/token"
)

// ctxClaims extracts the claims injected by the Auth middleware and fails
// fast when the route was mounted without it.
func ctxClaims(c echo.Context) (*token.Claims, error) {
	claims := middleware.Claims(c)
	if claims == nil || claims.UserID() == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// ctxActor is ctxClaims narrowed to the identity services need.
func ctxActor(c echo.Context) (domain.Actor, error) {
	claims, err := ctxClaims(c)
	if err != nil {
		return domain.Actor{}, err
	}
	return claims.Actor(), nil
}

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if c.Echo().Validator == nil {
		return nil
	}
	if err := c.Validate(req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}
