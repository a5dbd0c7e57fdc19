package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skattajobs/marketplace-api/internal/api/metrics"
	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

type UploadHandler struct {
	service ports.UploadService
}

func NewUploadHandler(service ports.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload handles POST /upload (multipart: file, type).
//
// @Summary      Upload a file
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file    true  "File to upload"
// @Param        type  formData  string  true  "avatar, service or portfolio"
// @Success      201   {object}  uploadResponse
// @Failure      400   {object}  errorResponse
// @Failure      413   {object}  errorResponse
// @Router       /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	kind := c.FormValue("type")
	fh, err := c.FormFile("file")
	if err != nil {
		return fmt.Errorf("%w: file is required", domain.ErrValidation)
	}
	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	url, err := h.service.Upload(c.Request().Context(), actor.UserID, ports.UploadInput{
		Kind:     kind,
		Filename: fh.Filename,
		Body:     f,
	})
	if err != nil {
		return err
	}

	metrics.UploadsTotal.WithLabelValues(kind).Inc()
	return c.JSON(http.StatusCreated, uploadResponse{URL: url})
}

// File handles GET /uploads/:name.
//
// @Summary      Download an uploaded file
// @Tags         upload
// @Param        name  path  string  true  "Stored file name"
// @Success      200
// @Failure      404   {object}  errorResponse
// @Router       /uploads/{name} [get]
func (h *UploadHandler) File(c echo.Context) error {
	rc, contentType, err := h.service.Open(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	defer rc.Close()
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	hdr := c.Response().Header()
	hdr.Set("X-Content-Type-Options", "nosniff")
	if !strings.HasPrefix(contentType, "image/") {
		hdr.Set(echo.HeaderContentDisposition, "attachment")
	}
	return c.Stream(http.StatusOK, contentType, rc)
}
