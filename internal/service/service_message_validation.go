package service

import (
	"context"

	"github.com/MKhiriev/go-messagely/internal/validators"
	"github.com/MKhiriev/go-messagely/models"
)

// MessageValidationService rejects malformed input before it reaches the
// wrapped MessageService.
type MessageValidationService struct {
	inner     MessageService
	validator validators.Validator
}

func NewMessageValidationService() MessageServiceWrapper {
	return &MessageValidationService{
		validator: validators.NewMessagingValidator(),
	}
}

func (v *MessageValidationService) Send(ctx context.Context, from, to, body string) (models.Message, error) {
	msg := models.Message{FromUsername: from, ToUsername: to, Body: body}
	if err := v.validator.Validate(ctx, msg); err != nil {
		return models.Message{}, mapValidationError(err)
	}

	return v.inner.Send(ctx, from, to, body)
}

func (v *MessageValidationService) MarkRead(ctx context.Context, id int64, reader string) (models.ReadReceipt, error) {
	if err := v.validator.Validate(ctx, models.Message{ID: id}, validators.FieldID); err != nil {
		return models.ReadReceipt{}, mapValidationError(err)
	}

	return v.inner.MarkRead(ctx, id, reader)
}

func (v *MessageValidationService) MessagesFrom(ctx context.Context, username string) ([]models.SentMessage, error) {
	return v.inner.MessagesFrom(ctx, username)
}

func (v *MessageValidationService) MessagesTo(ctx context.Context, username string) ([]models.ReceivedMessage, error) {
	return v.inner.MessagesTo(ctx, username)
}

func (v *MessageValidationService) Get(ctx context.Context, id int64, viewer string) (models.MessageDetail, error) {
	if err := v.validator.Validate(ctx, models.Message{ID: id}, validators.FieldID); err != nil {
		return models.MessageDetail{}, mapValidationError(err)
	}

	return v.inner.Get(ctx, id, viewer)
}

func (v *MessageValidationService) Wrap(inner MessageService) MessageService {
	v.inner = inner
	return v
}
