package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

// StageHandler serves stage, job and vacation-job offers.
type StageHandler struct {
	service ports.StageService
}

func NewStageHandler(service ports.StageService) *StageHandler {
	return &StageHandler{service: service}
}

// List handles GET /stages.
//
// @Summary      List stage offers
// @Tags         stages
// @Produce      json
// @Security     BearerAuth
// @Param        search      query     string   false  "Text search over title, company and description"
// @Param        type        query     string   false  "stage, job or vacation_job"
// @Param        location    query     string   false  "Location substring"
// @Param        company     query     string   false  "Company substring"
// @Param        salary_min  query     number   false  "Minimum salary"
// @Param        salary_max  query     number   false  "Maximum salary"
// @Param        urgent      query     boolean  false  "Only urgent offers"
// @Success      200         {array}   domain.StageOffer
// @Failure      400         {object}  errorResponse
// @Router       /stages [get]
func (h *StageHandler) List(c echo.Context) error {
	filter, err := stageListQuery(c)
	if err != nil {
		return err
	}
	offers, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offers)
}

// Get handles GET /stages/:id.
//
// @Summary      Get a stage offer
// @Tags         stages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Offer id"
// @Success      200  {object}  domain.StageOffer
// @Failure      404  {object}  errorResponse
// @Router       /stages/{id} [get]
func (h *StageHandler) Get(c echo.Context) error {
	offer, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offer)
}

// Apply handles POST /stages/:id/apply.
//
// @Summary      Apply to a stage offer
// @Tags         stages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Offer id"
// @Param        body  body      applyRequest  true  "Application"
// @Success      201   {object}  domain.StageApplication
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /stages/{id}/apply [post]
func (h *StageHandler) Apply(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req applyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	app, err := h.service.Apply(c.Request().Context(), actor, c.Param("id"), ports.ApplyInput{
		Message: req.Message,
		CVURL:   req.CVURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, app)
}

// Applications handles GET /stages/applications.
//
// @Summary      List my applications
// @Tags         stages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.StageApplication
// @Router       /stages/applications [get]
func (h *StageHandler) Applications(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	apps, err := h.service.Applications(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}
