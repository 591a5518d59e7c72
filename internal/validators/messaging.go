package validators

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-messagely/models"
)

// Field name constants used to scope validation to a subset of fields.
const (
	// FieldUsername targets the identity key of a user.
	FieldUsername = "username"

	// FieldPassword targets the raw secret supplied at registration or login.
	FieldPassword = "password"

	// FieldFromUsername targets the sender of a message.
	FieldFromUsername = "from_username"

	// FieldToUsername targets the recipient of a message.
	FieldToUsername = "to_username"

	// FieldBody targets the text of a message.
	FieldBody = "body"

	// FieldID targets the store-assigned message id. Only meaningful for
	// messages that were already persisted.
	FieldID = "id"
)

const (
	// MaxUsernameLength bounds the username in runes.
	MaxUsernameLength = 64

	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

// MessagingValidator implements Validator for the user and message models
// accepted by the service layer: models.User, models.LoginRequest,
// models.Message and models.SendMessageRequest.
type MessagingValidator struct {
}

// NewMessagingValidator constructs a MessagingValidator and returns it as
// the Validator interface.
func NewMessagingValidator() Validator {
	return &MessagingValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. When no fields are given a default set is validated.
func (v *MessagingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.Message:
		return v.validateMessage(ctx, value, fields...)
	case *models.Message:
		return v.validateMessage(ctx, *value, fields...)

	case models.SendMessageRequest:
		return v.validateSendMessageRequest(ctx, value, fields...)
	case *models.SendMessageRequest:
		return v.validateSendMessageRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUser checks a registration payload. Profile fields are free-form
// and never rejected.
//
// Default fields: username, password.
func (v *MessagingValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := checkUsername(user.Username); err != nil {
				return err
			}
		case FieldPassword:
			if err := checkPassword(user.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLoginRequest only checks presence: a malformed username on login
// simply never matches an account.
//
// Default fields: username, password.
func (v *MessagingValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(req.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMessage checks a message about to be sent.
//
// Default fields: from_username, to_username, body.
func (v *MessagingValidator) validateMessage(_ context.Context, msg models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFromUsername, FieldToUsername, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldFromUsername:
			if isBlank(msg.FromUsername) {
				return ErrEmptyFromUser
			}
		case FieldToUsername:
			if isBlank(msg.ToUsername) {
				return ErrEmptyToUser
			}
		case FieldBody:
			if isBlank(msg.Body) {
				return ErrEmptyBody
			}
		case FieldID:
			if msg.ID <= 0 {
				return ErrInvalidMessageID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSendMessageRequest checks the body of a send call.
//
// Default fields: to_username, body.
func (v *MessagingValidator) validateSendMessageRequest(_ context.Context, req models.SendMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToUsername, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldToUsername:
			if isBlank(req.ToUsername) {
				return ErrEmptyToUser
			}
		case FieldBody:
			if isBlank(req.Body) {
				return ErrEmptyBody
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// checkUsername enforces the identity key format: non-blank, at most
// MaxUsernameLength runes, no whitespace or path separators so that it can
// be used verbatim as a URL segment.
func checkUsername(username string) error {
	if isBlank(username) {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrInvalidUsername
	}
	if strings.ContainsFunc(username, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r) || r == '/'
	}) {
		return ErrInvalidUsername
	}
	return nil
}

func checkPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
