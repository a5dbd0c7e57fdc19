package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skattajobs/marketplace-api/internal/api/metrics"
	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// List handles GET /bookings. Clients see their bookings, providers the
// bookings of their services, admins everything.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Booking status, all for any"
// @Success      200     {array}   domain.Booking
// @Failure      400     {object}  errorResponse
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var status domain.BookingStatus
	if s := c.QueryParam("status"); s != "" && s != "all" {
		if status, err = domain.ParseBookingStatus(s); err != nil {
			return err
		}
	}

	bookings, err := h.service.List(c.Request().Context(), actor, status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Get handles GET /bookings/:id.
//
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  domain.Booking
// @Failure      404  {object}  errorResponse
// @Router       /bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	b, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

// Create handles POST /bookings.
//
// @Summary      Book a service
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req createBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	b, err := h.service.Create(c.Request().Context(), actor, ports.CreateBookingInput{
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		Duration:      req.Duration,
		Location:      req.Location,
		Notes:         req.Notes,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(string(b.PaymentMethod)).Inc()
	return c.JSON(http.StatusCreated, b)
}

// Update handles PUT /bookings/:id. The body names either a target
// status or an action (confirm, cancel, start, complete).
//
// @Summary      Change a booking's status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Booking id"
// @Param        body  body      updateBookingRequest  true  "Status or action"
// @Success      200   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /bookings/{id} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req updateBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	var b *domain.Booking
	switch {
	case req.Status != "" && req.Action != "":
		return fmt.Errorf("%w: send either status or action, not both", domain.ErrValidation)
	case req.Status != "":
		status, perr := domain.ParseBookingStatus(req.Status)
		if perr != nil {
			return perr
		}
		b, err = h.service.UpdateStatus(ctx, actor, c.Param("id"), status)
	case req.Action != "":
		b, err = h.service.ApplyAction(ctx, actor, c.Param("id"), domain.BookingAction(req.Action))
	default:
		return fmt.Errorf("%w: status or action is required", domain.ErrValidation)
	}
	if err != nil {
		return err
	}

	metrics.BookingStatusUpdatesTotal.WithLabelValues(string(b.Status)).Inc()
	return c.JSON(http.StatusOK, b)
}

// Cancel handles DELETE /bookings/:id. Bookings are never removed; the
// booking moves to cancelled.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  domain.Booking
// @Failure      403  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	b, err := h.service.Cancel(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	metrics.BookingStatusUpdatesTotal.WithLabelValues(string(b.Status)).Inc()
	return c.JSON(http.StatusOK, b)
}
