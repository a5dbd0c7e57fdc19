package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

// FavoriteHandler manages the signed-in client's favorite services.
type FavoriteHandler struct {
	service ports.FavoriteService
}

func NewFavoriteHandler(service ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// List handles GET /favorites.
//
// @Summary      Favorite service ids
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  favoritesResponse
// @Router       /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	ids, err := h.service.List(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, favoritesResponse{Favorites: ids})
}

// Services handles GET /favorites/services with the catalogue filters.
// Search also matches the provider name here.
//
// @Summary      Favorite services
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        search    query     string  false  "Text search"
// @Param        category  query     string  false  "Category, Tous for any"
// @Param        sort      query     string  false  "recent, price_low, price_high or rating"
// @Success      200       {array}   domain.Service
// @Router       /favorites/services [get]
func (h *FavoriteHandler) Services(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	in, err := serviceListQuery(c)
	if err != nil {
		return err
	}
	services, err := h.service.Services(c.Request().Context(), actor.UserID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// Add handles PUT /favorites/:service_id. Adding twice is a no-op.
//
// @Summary      Add a favorite
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        service_id  path      string  true  "Service id"
// @Success      200         {object}  favoritesResponse
// @Failure      404         {object}  errorResponse
// @Router       /favorites/{service_id} [put]
func (h *FavoriteHandler) Add(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	ids, err := h.service.Add(c.Request().Context(), actor.UserID, c.Param("service_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, favoritesResponse{Favorites: ids})
}

// Remove handles DELETE /favorites/:service_id. Removing an absent id is a no-op.
//
// @Summary      Remove a favorite
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        service_id  path      string  true  "Service id"
// @Success      200         {object}  favoritesResponse
// @Router       /favorites/{service_id} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	ids, err := h.service.Remove(c.Request().Context(), actor.UserID, c.Param("service_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, favoritesResponse{Favorites: ids})
}
