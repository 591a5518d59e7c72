package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
	ErrServerError  = errors.New("server error")

	ErrEmptyToken = errors.New("server returned no token")
)

// ResponseError is a non-2xx answer from the server.
type ResponseError struct {
	Status  int
	Reason  string
	Message string

	kind error
}

func (e *ResponseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v: http %d: %s", e.kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%v: http %d (%s): %s", e.kind, e.Status, e.Reason, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}
