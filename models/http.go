// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of a login call.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SendMessageRequest is the body of a send call. The sender is always the
// authenticated user and is never taken from the body.
type SendMessageRequest struct {
	ToUsername string `json:"to_username"`
	Body       string `json:"body"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the JSON envelope written for every failed request.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries a machine-readable reason code next to a short
// human-readable message.
type ErrorBody struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// UsersResponse wraps the user directory listing.
type UsersResponse struct {
	Users []UserSummary `json:"users"`
}

// UserResponse wraps a single user profile.
type UserResponse struct {
	User UserProfile `json:"user"`
}

// SentMessagesResponse wraps an outbox listing.
type SentMessagesResponse struct {
	Messages []SentMessage `json:"messages"`
}

// ReceivedMessagesResponse wraps an inbox listing.
type ReceivedMessagesResponse struct {
	Messages []ReceivedMessage `json:"messages"`
}

// MessageResponse wraps a newly sent message.
type MessageResponse struct {
	Message Message `json:"message"`
}

// MessageDetailResponse wraps a single message with both participants.
type MessageDetailResponse struct {
	Message MessageDetail `json:"message"`
}

// ReadReceiptResponse wraps the result of marking a message read.
type ReadReceiptResponse struct {
	Message ReadReceipt `json:"message"`
}
