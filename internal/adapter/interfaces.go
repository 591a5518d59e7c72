// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed Go client for the messagely HTTP API.
//
// The primary abstraction is [APIClient]; [NewHTTPClient] returns the
// resty-backed implementation. Failed calls return a [*ResponseError] that
// wraps one of the sentinels in errors.go, so callers branch with
// [errors.Is] (e.g. [ErrConflict] for a taken username or an already read
// message, [ErrUnauthorized] for a missing or expired token).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-messagely/models"
)

// APIClient talks to a messagely server on behalf of one user.
type APIClient interface {
	// SetToken stores the bearer token attached to every authenticated
	// request. Register and Login call it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before the first
	// successful Register or Login.
	Token() string

	// Register creates the account described by user and stores the returned
	// token.
	Register(ctx context.Context, user models.User) (string, error)

	// Login authenticates username and stores the returned token.
	Login(ctx context.Context, username, password string) (string, error)

	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	GetUser(ctx context.Context, username string) (models.UserProfile, error)

	// MessagesTo and MessagesFrom only succeed for the token's own username.
	MessagesTo(ctx context.Context, username string) ([]models.ReceivedMessage, error)
	MessagesFrom(ctx context.Context, username string) ([]models.SentMessage, error)

	SendMessage(ctx context.Context, toUsername, body string) (models.Message, error)
	GetMessage(ctx context.Context, id int64) (models.MessageDetail, error)
	MarkRead(ctx context.Context, id int64) (models.ReadReceipt, error)

	// Version returns the server's version string. No token is needed.
	Version(ctx context.Context) (string, error)
}
