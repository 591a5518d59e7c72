// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/models"
	"github.com/jackc/pgerrcode"
)

// messageRepository is the PostgreSQL-backed implementation of
// [MessageRepository] over the "messages" table.
type messageRepository struct {
	*DB
	logger *logger.Logger
}

// NewMessageRepository constructs a [MessageRepository] backed by db.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateMessage inserts a single message row. A foreign-key violation is
// reported as [ErrNoUserWasFound] naming the missing participant; since it is
// one INSERT, a failed send leaves nothing behind.
func (m *messageRepository) CreateMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	var created models.Message
	err := m.DB.QueryRowContext(ctx, createMessage, msg.FromUsername, msg.ToUsername, msg.Body).Scan(
		&created.ID,
		&created.FromUsername,
		&created.ToUsername,
		&created.Body,
		&created.SentAt,
		&created.ReadAt,
	)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			switch postgresConstraint(err) {
			case messageSenderFK:
				return models.Message{}, fmt.Errorf("%w: sender %q", ErrNoUserWasFound, msg.FromUsername)
			case messageRecipientFK:
				return models.Message{}, fmt.Errorf("%w: recipient %q", ErrNoUserWasFound, msg.ToUsername)
			default:
				return models.Message{}, ErrNoUserWasFound
			}
		}

		log.Err(err).
			Str("func", "*messageRepository.CreateMessage").
			Str("from", msg.FromUsername).
			Str("to", msg.ToUsername).
			Msg("failed to insert message")
		return models.Message{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// MarkRead runs the single-statement read transition. The outcome is read
// from what the statement returns:
//   - no row: the message does not exist
//   - recipient differs from reader: [ErrNotRecipient]
//   - read_at returned by the UPDATE: this call marked it
//   - otherwise: it was already read, possibly by a concurrent call
func (m *messageRepository) MarkRead(ctx context.Context, id int64, reader string) (models.ReadReceipt, error) {
	log := logger.FromContext(ctx)

	var (
		recipient string
		readAt    *time.Time
	)
	err := m.DB.QueryRowContext(ctx, markMessageRead, id, reader).Scan(&recipient, &readAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ReadReceipt{}, ErrMessageNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*messageRepository.MarkRead").
			Int64("message_id", id).
			Msg("failed to mark message as read")
		return models.ReadReceipt{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if recipient != reader {
		return models.ReadReceipt{}, ErrNotRecipient
	}
	if readAt == nil {
		return models.ReadReceipt{}, ErrMessageAlreadyRead
	}

	return models.ReadReceipt{ID: id, ReadAt: *readAt}, nil
}

// GetMessage returns one message with both participants' summaries.
func (m *messageRepository) GetMessage(ctx context.Context, id int64) (models.MessageDetail, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetMessageQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.GetMessage").Msg("failed to create query")
		return models.MessageDetail{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var detail models.MessageDetail
	err = m.withRetry(ctx, func(ctx context.Context) error {
		return m.DB.QueryRowContext(ctx, query, args...).Scan(
			&detail.ID,
			&detail.FromUser.Username, &detail.FromUser.FirstName, &detail.FromUser.LastName, &detail.FromUser.Phone,
			&detail.ToUser.Username, &detail.ToUser.FirstName, &detail.ToUser.LastName, &detail.ToUser.Phone,
			&detail.Body,
			&detail.SentAt,
			&detail.ReadAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.MessageDetail{}, ErrMessageNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*messageRepository.GetMessage").
			Int64("message_id", id).
			Msg("failed to get message")
		return models.MessageDetail{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return detail, nil
}

// MessagesFrom returns the outbox of username. An empty outbox is an empty
// slice; whether the user exists is not checked here.
func (m *messageRepository) MessagesFrom(ctx context.Context, username string) ([]models.SentMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMessagesFromQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.MessagesFrom").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var results []models.SentMessage
	err = m.withRetry(ctx, func(ctx context.Context) error {
		rows, err := m.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		results = make([]models.SentMessage, 0, 16)
		for rows.Next() {
			var item models.SentMessage
			scanErr := rows.Scan(
				&item.ID,
				&item.ToUser.Username, &item.ToUser.FirstName, &item.ToUser.LastName, &item.ToUser.Phone,
				&item.Body,
				&item.SentAt,
				&item.ReadAt,
			)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			results = append(results, item)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*messageRepository.MessagesFrom").
			Str("username", username).
			Msg("failed to get sent messages")
		return nil, err
	}

	return results, nil
}

// MessagesTo returns the inbox of username, symmetric to MessagesFrom.
func (m *messageRepository) MessagesTo(ctx context.Context, username string) ([]models.ReceivedMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMessagesToQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.MessagesTo").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var results []models.ReceivedMessage
	err = m.withRetry(ctx, func(ctx context.Context) error {
		rows, err := m.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		results = make([]models.ReceivedMessage, 0, 16)
		for rows.Next() {
			var item models.ReceivedMessage
			scanErr := rows.Scan(
				&item.ID,
				&item.FromUser.Username, &item.FromUser.FirstName, &item.FromUser.LastName, &item.FromUser.Phone,
				&item.Body,
				&item.SentAt,
				&item.ReadAt,
			)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			results = append(results, item)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*messageRepository.MessagesTo").
			Str("username", username).
			Msg("failed to get received messages")
		return nil, err
	}

	return results, nil
}
