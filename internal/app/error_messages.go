// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// messagely server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of error responses. Keeping them in one place keeps the
// wording consistent throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. missing username, blank body).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidUsernamePassword is returned on a failed login. Unknown
	// usernames and wrong passwords share this message.
	MsgInvalidUsernamePassword = "invalid username/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUnauthorized is returned when the Authorization header is missing
	// or is not a bearer token.
	MsgUnauthorized = "authorization required"

	// MsgTokenIsExpired is returned when a session token is well formed and
	// correctly signed but past its expiry time.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsInvalid is returned when a session token cannot be parsed or
	// verified (wrong signature, foreign issuer, unexpected algorithm).
	MsgTokenIsInvalid = "token is invalid"

	// MsgForbidden is returned when an authenticated user asks for data that
	// belongs to somebody else.
	MsgForbidden = "access to this resource is forbidden"

	// MsgNotFound is returned when the requested user or message does not
	// exist.
	MsgNotFound = "not found"

	// MsgUsernameTaken is returned when registration collides with an
	// existing username.
	MsgUsernameTaken = "username is already taken"

	// MsgMessageAlreadyRead is returned when the recipient marks a message
	// that has already been read.
	MsgMessageAlreadyRead = "message is already read"

	// MsgInvalidMessageID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidMessageID = "invalid message id"
)
