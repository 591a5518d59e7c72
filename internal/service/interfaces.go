// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the messaging backend.
//
// Services sit between the transport layer and the store: they verify
// credentials, issue and recover session tokens, and enforce the rules of
// the message ledger (who may read what, and when a message may be marked
// read). Every failure is reported with one of the sentinels in errors.go.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper,MessageServiceWrapper

import (
	"context"
	"time"

	"github.com/MKhiriev/go-messagely/models"
)

// AuthService owns credentials: registration, verification and login
// bookkeeping.
type AuthService interface {
	// Register hashes user.Password and persists the account. The returned
	// user carries neither the raw secret nor its hash.
	// ErrDuplicateIdentity if the username is taken.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Verify reports whether password matches the stored hash.
	// ErrNotFound if the username does not exist.
	Verify(ctx context.Context, username, password string) (bool, error)

	// TouchLogin sets the last login time of username to now and returns it.
	TouchLogin(ctx context.Context, username string) (time.Time, error)

	// Login verifies the credentials and touches the login time.
	// ErrWrongPassword on a mismatch.
	Login(ctx context.Context, username, password string) (time.Time, error)
}

// SessionService issues and recovers stateless session tokens.
type SessionService interface {
	Issue(ctx context.Context, username string) (models.Token, error)

	// Recover returns the username a token was issued for.
	// ErrMalformedToken, ErrInvalidToken or ErrExpiredToken on failure.
	Recover(ctx context.Context, token string) (string, error)
}

// UserService is the read-only user directory.
type UserService interface {
	ListAll(ctx context.Context) ([]models.UserSummary, error)
	Get(ctx context.Context, username string) (models.UserProfile, error)
}

// MessageService is the message ledger.
type MessageService interface {
	// Send stores a new unread message from -> to.
	Send(ctx context.Context, from, to, body string) (models.Message, error)

	// MarkRead sets the read time of message id. Only the recipient may do
	// it, and only once.
	MarkRead(ctx context.Context, id int64, reader string) (models.ReadReceipt, error)

	// MessagesFrom returns the outbox of username ordered by send time.
	MessagesFrom(ctx context.Context, username string) ([]models.SentMessage, error)

	// MessagesTo returns the inbox of username ordered by send time.
	MessagesTo(ctx context.Context, username string) ([]models.ReceivedMessage, error)

	// Get returns a message with both participants. viewer must be one of
	// them, otherwise ErrForbidden.
	Get(ctx context.Context, id int64, viewer string) (models.MessageDetail, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper decorates an AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// MessageServiceWrapper decorates a MessageService.
type MessageServiceWrapper interface {
	Wrap(MessageService) MessageService
}
