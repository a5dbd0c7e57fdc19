package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Stats handles GET /admin/stats.
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AdminStats
// @Failure      403  {object}  errorResponse
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Reports handles GET /admin/reports.
//
// @Summary      Per-category report
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.CategoryReport
// @Failure      403  {object}  errorResponse
// @Router       /admin/reports [get]
func (h *AdminHandler) Reports(c echo.Context) error {
	reports, err := h.service.Reports(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

// Moderate handles POST /admin/moderate/:id.
//
// @Summary      Activate or deactivate a service
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Service id"
// @Param        body  body      moderateRequest  true  "activate or deactivate"
// @Success      200   {object}  domain.Service
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/moderate/{id} [post]
func (h *AdminHandler) Moderate(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req moderateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	svc, err := h.service.Moderate(c.Request().Context(), actor, c.Param("id"), req.Action)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Logs handles GET /admin/logs.
//
// @Summary      Recent activity
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries (default 50, max 200)"
// @Success      200    {array}   domain.ActivityLog
// @Failure      400    {object}  errorResponse
// @Router       /admin/logs [get]
func (h *AdminHandler) Logs(c echo.Context) error {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	logs, err := h.service.Logs(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}
