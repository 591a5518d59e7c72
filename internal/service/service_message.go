package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/store"
	"github.com/MKhiriev/go-messagely/models"
)

// messageService is the message ledger. Ordering and atomicity of
// MarkRead are delegated to the repository.
type messageService struct {
	messageRepository store.MessageRepository
	userRepository    store.UserRepository

	logger *logger.Logger
}

func NewMessageService(messageRepository store.MessageRepository, userRepository store.UserRepository, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		userRepository:    userRepository,
		logger:            logger,
	}
}

// Send stores a new message. A missing participant is ErrNotFound and
// leaves no row behind.
func (s *messageService) Send(ctx context.Context, from, to, body string) (models.Message, error) {
	msg, err := s.messageRepository.CreateMessage(ctx, models.Message{
		FromUsername: from,
		ToUsername:   to,
		Body:         body,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("from", from).
			Str("to", to).
			Msg("sending message failed")
		return models.Message{}, mapStoreError(err)
	}

	return msg, nil
}

// MarkRead sets read_at on message id if reader is its recipient and it is
// still unread.
func (s *messageService) MarkRead(ctx context.Context, id int64, reader string) (models.ReadReceipt, error) {
	receipt, err := s.messageRepository.MarkRead(ctx, id, reader)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("id", id).
			Str("reader", reader).
			Msg("marking message read failed")
		return models.ReadReceipt{}, mapStoreError(err)
	}

	return receipt, nil
}

// MessagesFrom returns the outbox of username. ErrNotFound only when the
// user itself is unknown.
func (s *messageService) MessagesFrom(ctx context.Context, username string) ([]models.SentMessage, error) {
	if err := s.ensureUserExists(ctx, username); err != nil {
		return nil, err
	}

	messages, err := s.messageRepository.MessagesFrom(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("listing sent messages failed")
		return nil, mapStoreError(err)
	}
	if messages == nil {
		messages = []models.SentMessage{}
	}

	return messages, nil
}

// MessagesTo returns the inbox of username. ErrNotFound only when the user
// itself is unknown.
func (s *messageService) MessagesTo(ctx context.Context, username string) ([]models.ReceivedMessage, error) {
	if err := s.ensureUserExists(ctx, username); err != nil {
		return nil, err
	}

	messages, err := s.messageRepository.MessagesTo(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("listing received messages failed")
		return nil, mapStoreError(err)
	}
	if messages == nil {
		messages = []models.ReceivedMessage{}
	}

	return messages, nil
}

// Get returns message id if viewer sent or received it.
func (s *messageService) Get(ctx context.Context, id int64, viewer string) (models.MessageDetail, error) {
	msg, err := s.messageRepository.GetMessage(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("message lookup failed")
		return models.MessageDetail{}, mapStoreError(err)
	}

	if msg.FromUser.Username != viewer && msg.ToUser.Username != viewer {
		logger.FromContext(ctx).Warn().
			Int64("id", id).
			Str("viewer", viewer).
			Msg("message requested by a non-participant")
		return models.MessageDetail{}, fmt.Errorf("%w: %q is not a participant of message %d", ErrForbidden, viewer, id)
	}

	return msg, nil
}

func (s *messageService) ensureUserExists(ctx context.Context, username string) error {
	exists, err := s.userRepository.UserExists(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("user existence check failed")
		return mapStoreError(err)
	}
	if !exists {
		return fmt.Errorf("%w: user %q", ErrNotFound, username)
	}
	return nil
}
