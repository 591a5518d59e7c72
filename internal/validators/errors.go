package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrInvalidUsername  = errors.New("invalid username")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrEmptyFromUser    = errors.New("sender username is required")
	ErrEmptyToUser      = errors.New("recipient username is required")
	ErrEmptyBody        = errors.New("message body is required")
	ErrInvalidMessageID = errors.New("invalid message id")
)
