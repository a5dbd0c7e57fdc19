package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/pkg/token"
)

// ErrorResponse is the canonical error envelope for all API errors.
// Error is a stable English description; Message is shown to end users.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type errorMapping struct {
	target  error
	code    int
	message string
	// detail echoes err.Error() instead of target's text.
	detail bool
}

var errorMappings = []errorMapping{
	{domain.ErrValidation, http.StatusBadRequest, "Données invalides", true},
	{domain.ErrInvalidRole, http.StatusBadRequest, "Rôle invalide", true},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Email ou mot de passe incorrect", false},
	{domain.ErrTokenRevoked, http.StatusUnauthorized, "Session expirée, veuillez vous reconnecter", false},
	{token.ErrInvalid, http.StatusUnauthorized, "Session expirée, veuillez vous reconnecter", false},
	{domain.ErrForbidden, http.StatusForbidden, "Accès refusé", false},
	{domain.ErrUserNotFound, http.StatusNotFound, "Utilisateur introuvable", false},
	{domain.ErrServiceNotFound, http.StatusNotFound, "Service introuvable", false},
	{domain.ErrStageNotFound, http.StatusNotFound, "Offre introuvable", false},
	{domain.ErrBookingNotFound, http.StatusNotFound, "Réservation introuvable", false},
	{domain.ErrProfileNotFound, http.StatusNotFound, "Profil introuvable", false},
	{domain.ErrFileNotFound, http.StatusNotFound, "Fichier introuvable", false},
	{domain.ErrUserExists, http.StatusConflict, "Un compte existe déjà avec cet email", false},
	{domain.ErrAlreadyApplied, http.StatusConflict, "Vous avez déjà postulé à cette offre", false},
	{domain.ErrInvalidTransition, http.StatusUnprocessableEntity, "Changement de statut impossible", true},
	{domain.ErrUnknownAction, http.StatusUnprocessableEntity, "Action inconnue", true},
	{domain.ErrServiceInactive, http.StatusUnprocessableEntity, "Ce service n'est plus disponible", false},
}

// statusMessages are the user-facing texts for errors raised by echo itself.
var statusMessages = map[int]string{
	http.StatusBadRequest:            "Requête invalide",
	http.StatusUnauthorized:          "Authentification requise",
	http.StatusForbidden:             "Accès refusé",
	http.StatusNotFound:              "Ressource introuvable",
	http.StatusMethodNotAllowed:      "Méthode non autorisée",
	http.StatusRequestEntityTooLarge: "Fichier trop volumineux",
	http.StatusTooManyRequests:       "Trop de requêtes",
}

const fallbackMessage = "Une erreur est survenue"

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "...", "message": "..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, ErrorResponse) {
	// Echo's own errors (bind failures, 404 from router, body limit, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := statusMessages[he.Code]
		if !ok {
			msg = fallbackMessage
		}
		return he.Code, ErrorResponse{Error: fmt.Sprintf("%v", he.Message), Message: msg}
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			text := m.target.Error()
			if m.detail {
				text = err.Error()
			}
			return m.code, ErrorResponse{Error: text, Message: m.message}
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Message: fallbackMessage}
}
