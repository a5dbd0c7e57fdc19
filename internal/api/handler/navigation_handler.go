package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skattajobs/marketplace-api/internal/api/middleware"
	"github.com/skattajobs/marketplace-api/internal/core/access"
)

// NavigationHandler exposes the client route guard.
type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// Resolve handles GET /navigation/resolve?path=. The session is taken from
// the optional bearer token.
//
// @Summary      Resolve a client-side path
// @Tags         navigation
// @Produce      json
// @Param        path  query     string  true  "Client path, e.g. /admin/dashboard"
// @Success      200   {object}  access.Decision
// @Router       /navigation/resolve [get]
func (h *NavigationHandler) Resolve(c echo.Context) error {
	claims := middleware.Claims(c)
	authenticated := claims != nil
	actor := middleware.Actor(c)
	return c.JSON(http.StatusOK, access.Resolve(authenticated, actor.Role, c.QueryParam("path")))
}
