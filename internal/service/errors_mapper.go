package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-messagely/internal/store"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/internal/validators"
)

// mapStoreError translates repository sentinels into the service taxonomy.
// The original error stays in the chain. Unknown errors pass through.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return fmt.Errorf("%w: %w", ErrDuplicateIdentity, err)
	case errors.Is(err, store.ErrNoUserWasFound),
		errors.Is(err, store.ErrMessageNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrNotRecipient):
		return fmt.Errorf("%w: %w", ErrForbidden, err)
	case errors.Is(err, store.ErrMessageAlreadyRead):
		return fmt.Errorf("%w: %w", ErrAlreadyRead, err)
	default:
		return err
	}
}

// mapTokenError translates JWT parsing failures.
func mapTokenError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, utils.ErrTokenExpired):
		return ErrExpiredToken
	case errors.Is(err, utils.ErrTokenMalformed):
		return ErrMalformedToken
	default:
		return ErrInvalidToken
	}
}

// mapValidationError marks every validation failure as an invalid argument.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, validators.ErrUnsupportedType) || errors.Is(err, validators.ErrUnknownField) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}
