// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-messagely/internal/store"
	"github.com/MKhiriev/go-messagely/models"
)

// fakeLedger is an in-memory store with the same observable behaviour as
// the Postgres repositories: serial ids, a store-owned clock, insertion
// ordering, and a read transition that happens at most once.
type fakeLedger struct {
	mu       sync.Mutex
	clock    time.Time
	users    []models.User
	messages []models.Message
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{clock: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeLedger) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeLedger) storages() *store.Storages {
	return &store.Storages{UserRepository: f, MessageRepository: f}
}

func (f *fakeLedger) findUser(username string) (models.User, bool) {
	for _, u := range f.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

func (f *fakeLedger) CreateUser(_ context.Context, user models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.findUser(user.Username); ok {
		return models.User{}, store.ErrUsernameAlreadyExists
	}
	user.JoinAt = f.tick()
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeLedger) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.findUser(username)
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return u, nil
}

func (f *fakeLedger) UpdateLastLogin(_ context.Context, username string) (time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.users {
		if f.users[i].Username == username {
			now := f.tick()
			f.users[i].LastLoginAt = &now
			return now, nil
		}
	}
	return time.Time{}, store.ErrNoUserWasFound
}

func (f *fakeLedger) ListUsers(_ context.Context) ([]models.UserSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.UserSummary, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u.Summary())
	}
	return out, nil
}

func (f *fakeLedger) UserExists(_ context.Context, username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.findUser(username)
	return ok, nil
}

func (f *fakeLedger) CreateMessage(_ context.Context, msg models.Message) (models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.findUser(msg.FromUsername); !ok {
		return models.Message{}, fmt.Errorf("%w: sender %q", store.ErrNoUserWasFound, msg.FromUsername)
	}
	if _, ok := f.findUser(msg.ToUsername); !ok {
		return models.Message{}, fmt.Errorf("%w: recipient %q", store.ErrNoUserWasFound, msg.ToUsername)
	}

	msg.ID = int64(len(f.messages) + 1)
	msg.SentAt = f.tick()
	msg.ReadAt = nil
	f.messages = append(f.messages, msg)
	return msg, nil
}

func (f *fakeLedger) MarkRead(_ context.Context, id int64, reader string) (models.ReadReceipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if id <= 0 || id > int64(len(f.messages)) {
		return models.ReadReceipt{}, store.ErrMessageNotFound
	}
	msg := &f.messages[id-1]
	if msg.ToUsername != reader {
		return models.ReadReceipt{}, store.ErrNotRecipient
	}
	if msg.ReadAt != nil {
		return models.ReadReceipt{}, store.ErrMessageAlreadyRead
	}
	now := f.tick()
	msg.ReadAt = &now
	return models.ReadReceipt{ID: id, ReadAt: now}, nil
}

func (f *fakeLedger) GetMessage(_ context.Context, id int64) (models.MessageDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if id <= 0 || id > int64(len(f.messages)) {
		return models.MessageDetail{}, store.ErrMessageNotFound
	}
	msg := f.messages[id-1]
	from, _ := f.findUser(msg.FromUsername)
	to, _ := f.findUser(msg.ToUsername)
	return models.MessageDetail{
		ID:       msg.ID,
		FromUser: from.Summary(),
		ToUser:   to.Summary(),
		Body:     msg.Body,
		SentAt:   msg.SentAt,
		ReadAt:   msg.ReadAt,
	}, nil
}

func (f *fakeLedger) MessagesFrom(_ context.Context, username string) ([]models.SentMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.SentMessage
	for _, m := range f.messages {
		if m.FromUsername != username {
			continue
		}
		to, _ := f.findUser(m.ToUsername)
		out = append(out, models.SentMessage{ID: m.ID, ToUser: to.Summary(), Body: m.Body, SentAt: m.SentAt, ReadAt: m.ReadAt})
	}
	return out, nil
}

func (f *fakeLedger) MessagesTo(_ context.Context, username string) ([]models.ReceivedMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.ReceivedMessage
	for _, m := range f.messages {
		if m.ToUsername != username {
			continue
		}
		from, _ := f.findUser(m.FromUsername)
		out = append(out, models.ReceivedMessage{ID: m.ID, FromUser: from.Summary(), Body: m.Body, SentAt: m.SentAt, ReadAt: m.ReadAt})
	}
	return out, nil
}
