package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skattajobs/marketplace-api/internal/api/middleware"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

// ServiceHandler serves the service catalogue.
type ServiceHandler struct {
	service ports.CatalogService
}

func NewServiceHandler(service ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{service: service}
}

// List handles GET /services.
//
// @Summary      List services
// @Tags         services
// @Produce      json
// @Param        search       query     string  false  "Text search over title, description and tags"
// @Param        category     query     string  false  "Category, Tous for any"
// @Param        location     query     string  false  "Location substring"
// @Param        price_min    query     number  false  "Minimum price"
// @Param        price_max    query     number  false  "Maximum price"
// @Param        min_rating   query     number  false  "Minimum rating"
// @Param        provider_id  query     string  false  "Only services of this provider"
// @Param        sort         query     string  false  "recent, price_low, price_high or rating"
// @Success      200          {array}   domain.Service
// @Failure      400          {object}  errorResponse
// @Router       /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	in, err := serviceListQuery(c)
	if err != nil {
		return err
	}
	services, err := h.service.List(c.Request().Context(), middleware.Actor(c), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// Search handles GET /services/search. Without price bounds the range
// defaults to 0..10000.
//
// @Summary      Search services
// @Tags         services
// @Produce      json
// @Param        q          query     string  false  "Text search"
// @Param        category   query     string  false  "Category, Tous for any"
// @Param        location   query     string  false  "Location substring"
// @Param        price_min  query     number  false  "Minimum price"
// @Param        price_max  query     number  false  "Maximum price"
// @Param        min_rating query     number  false  "Minimum rating"
// @Param        sort       query     string  false  "recent, price_low, price_high or rating"
// @Success      200        {array}   domain.Service
// @Failure      400        {object}  errorResponse
// @Router       /services/search [get]
func (h *ServiceHandler) Search(c echo.Context) error {
	in, err := serviceListQuery(c)
	if err != nil {
		return err
	}
	services, err := h.service.Search(c.Request().Context(), middleware.Actor(c), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// Get handles GET /services/:id.
//
// @Summary      Get a service
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  errorResponse
// @Router       /services/{id} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	svc, err := h.service.Get(c.Request().Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Create handles POST /services.
//
// @Summary      Publish a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service details"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req createServiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	svc, err := h.service.Create(c.Request().Context(), actor, ports.CreateServiceInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		Location:     req.Location,
		Availability: req.Availability,
		Tags:         req.Tags,
		Images:       req.Images,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// Update handles PUT /services/:id.
//
// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Service id"
// @Param        body  body      updateServiceRequest  true  "Fields to change"
// @Success      200   {object}  domain.Service
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req updateServiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	svc, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), req.patch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Delete handles DELETE /services/:id.
//
// @Summary      Delete a service
// @Tags         services
// @Security     BearerAuth
// @Param        id   path  string  true  "Service id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
