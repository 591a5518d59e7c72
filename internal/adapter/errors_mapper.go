package adapter

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-messagely/models"
	"github.com/go-resty/resty/v2"
)

// kindByReason maps the server's reason codes onto client sentinels. The
// status code is the fallback for unknown or missing reasons.
var kindByReason = map[string]error{
	"unauthorized":        ErrUnauthorized,
	"invalid_credentials": ErrUnauthorized,
	"invalid_token":       ErrUnauthorized,
	"expired_token":       ErrUnauthorized,
	"malformed_token":     ErrUnauthorized,
	"forbidden":           ErrForbidden,
	"not_found":           ErrNotFound,
	"duplicate_identity":  ErrConflict,
	"already_read":        ErrConflict,
	"invalid_argument":    ErrBadRequest,
	"internal":            ErrServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}

	respErr := &ResponseError{Status: resp.StatusCode()}
	if body, ok := resp.Error().(*models.ErrorResponse); ok && body.Error.Reason != "" {
		respErr.Reason = body.Error.Reason
		respErr.Message = body.Error.Message
	} else {
		respErr.Message = strings.TrimSpace(string(resp.Body()))
		if respErr.Message == "" {
			respErr.Message = http.StatusText(resp.StatusCode())
		}
	}

	if kind, ok := kindByReason[respErr.Reason]; ok {
		respErr.kind = kind
	} else {
		respErr.kind = kindByStatus(respErr.Status)
	}

	return respErr
}

func kindByStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusConflict:
		return ErrConflict
	case status >= http.StatusInternalServerError:
		return ErrServerError
	default:
		return ErrBadRequest
	}
}
