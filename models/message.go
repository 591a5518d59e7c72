// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message is a directed text message between two users.
//
// ID and SentAt are assigned by the database on insert and never change.
// ReadAt is nil while the message is unread and is set exactly once, by the
// recipient.
type Message struct {
	ID           int64      `json:"id"`
	FromUsername string     `json:"from_username"`
	ToUsername   string     `json:"to_username"`
	Body         string     `json:"body"`
	SentAt       time.Time  `json:"sent_at"`
	ReadAt       *time.Time `json:"read_at"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}

// IsRead reports whether the recipient has already marked the message read.
func (m Message) IsRead() bool {
	return m.ReadAt != nil
}

// SentMessage is an outbox entry: a message joined with the public profile
// of its recipient.
type SentMessage struct {
	ID     int64       `json:"id"`
	ToUser UserSummary `json:"to_user"`
	Body   string      `json:"body"`
	SentAt time.Time   `json:"sent_at"`
	ReadAt *time.Time  `json:"read_at"`
}

// ReceivedMessage is an inbox entry: a message joined with the public
// profile of its sender.
type ReceivedMessage struct {
	ID       int64       `json:"id"`
	FromUser UserSummary `json:"from_user"`
	Body     string      `json:"body"`
	SentAt   time.Time   `json:"sent_at"`
	ReadAt   *time.Time  `json:"read_at"`
}

// MessageDetail is a single message joined with both participants.
type MessageDetail struct {
	ID       int64       `json:"id"`
	FromUser UserSummary `json:"from_user"`
	ToUser   UserSummary `json:"to_user"`
	Body     string      `json:"body"`
	SentAt   time.Time   `json:"sent_at"`
	ReadAt   *time.Time  `json:"read_at"`
}

// ReadReceipt is returned after a message has been marked read.
type ReadReceipt struct {
	ID     int64     `json:"id"`
	ReadAt time.Time `json:"read_at"`
}
