package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-messagely/internal/app"
	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/service"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/models"
)

// reasonUnauthorized is reported for requests without usable credentials.
const reasonUnauthorized = "unauthorized"

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoUserInContext, http.StatusUnauthorized},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
	{service.ErrExpiredToken, http.StatusUnauthorized},
	{service.ErrMalformedToken, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrDuplicateIdentity, http.StatusConflict},
	{service.ErrAlreadyRead, http.StatusConflict},
	{service.ErrInvalidArgument, http.StatusBadRequest},
}

// errorMessages is checked in order; more specific errors come first.
var errorMessages = []struct {
	err     error
	message string
}{
	{ErrInvalidMessageID, app.MsgInvalidMessageID},
	{service.ErrWrongPassword, app.MsgInvalidUsernamePassword},
	{service.ErrExpiredToken, app.MsgTokenIsExpired},
	{service.ErrInvalidToken, app.MsgTokenIsInvalid},
	{service.ErrMalformedToken, app.MsgTokenIsInvalid},
	{ErrEmptyAuthorizationHeader, app.MsgUnauthorized},
	{ErrInvalidAuthorizationHeader, app.MsgUnauthorized},
	{ErrNoUserInContext, app.MsgUnauthorized},
	{service.ErrForbidden, app.MsgForbidden},
	{service.ErrNotFound, app.MsgNotFound},
	{service.ErrDuplicateIdentity, app.MsgUsernameTaken},
	{service.ErrAlreadyRead, app.MsgMessageAlreadyRead},
	{service.ErrInvalidArgument, app.MsgInvalidDataProvided},
}

func statusFromError(err error) int {
	for _, s := range errorStatuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}

func reasonFromError(err error) string {
	if errors.Is(err, ErrEmptyAuthorizationHeader) ||
		errors.Is(err, ErrInvalidAuthorizationHeader) ||
		errors.Is(err, ErrNoUserInContext) {
		return reasonUnauthorized
	}
	return service.Reason(err)
}

// writeError writes the JSON error envelope for err. Server-side failures
// are logged at error level, client errors at debug.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	body := models.ErrorResponse{
		Error: models.ErrorBody{
			Reason:  reasonFromError(err),
			Message: messageFromError(err),
			Status:  status,
		},
	}
	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
