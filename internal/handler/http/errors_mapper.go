package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-post-keeper/internal/logger"
	"github.com/MKhiriev/go-post-keeper/internal/service"
	"github.com/MKhiriev/go-post-keeper/internal/store"
	"github.com/MKhiriev/go-post-keeper/internal/utils"
	"github.com/MKhiriev/go-post-keeper/internal/validators"
	"github.com/MKhiriev/go-post-keeper/models"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first target matched by
// errors.Is decides status and message.
var errorResponses = []errorResponse{
	{utils.ErrInvalidJSON, http.StatusBadRequest, msgInvalidJSON},
	{errInvalidGzipBody, http.StatusBadRequest, msgInvalidGzipBody},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, msgFieldsCannotBeEmpty},
	{validators.ErrInvalidInput, http.StatusBadRequest, msgFieldsCannotBeEmpty},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, msgInvalidCredentials},
	{service.ErrUnauthorized, http.StatusUnauthorized, msgUnauthorizedAccess},
	{service.ErrInvalidToken, http.StatusBadRequest, msgInvalidToken},

	{store.ErrPostNotFound, http.StatusNotFound, msgPostNotFound},
	{store.ErrNoUserWasFound, http.StatusNotFound, msgUserNotFound},
	{store.ErrEmailAlreadyExists, http.StatusConflict, msgEmailAlreadyExists},
}

// responseFromError resolves the status code and client message for err.
// Validation failures carry their own message.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if !errors.Is(err, resp.target) {
			continue
		}

		var vErr *validators.ValidationError
		if resp.status == http.StatusBadRequest && errors.As(err, &vErr) {
			return resp.status, vErr.Message
		}
		return resp.status, resp.message
	}
	return http.StatusInternalServerError, msgInternalServerError
}

func statusFromError(err error) int {
	status, _ := responseFromError(err)
	return status
}

// writeError logs err and answers with a failed envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := responseFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeJSON(w, r, models.Failure(message), status)
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}
