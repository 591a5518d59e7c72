// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-messagely/internal/service"
)

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoUserInContext is returned when a protected handler runs without
	// the auth middleware having stored a username.
	ErrNoUserInContext = errors.New("no authenticated user in context")

	// ErrInvalidMessageID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidMessageID = errors.New("invalid message id")
)

// errRouteNotFound answers requests for a path or method that is not served.
var errRouteNotFound = fmt.Errorf("%w: no such route", service.ErrNotFound)
