// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-messagely/internal/store"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrNotFound, ReasonNotFound},
		{fmt.Errorf("%w: user %q", ErrNotFound, "bob"), ReasonNotFound},
		{ErrDuplicateIdentity, ReasonDuplicateIdentity},
		{ErrInvalidArgument, ReasonInvalidArgument},
		{ErrForbidden, ReasonForbidden},
		{ErrInvalidToken, ReasonInvalidToken},
		{ErrExpiredToken, ReasonExpiredToken},
		{ErrMalformedToken, ReasonMalformedToken},
		{ErrAlreadyRead, ReasonAlreadyRead},
		{ErrWrongPassword, ReasonInvalidCredentials},
		{errors.New("boom"), ReasonInternal},
		{nil, ReasonInternal},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reason(tt.err))
		})
	}
}

func TestMapStoreError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"duplicate", store.ErrUsernameAlreadyExists, ErrDuplicateIdentity},
		{"no user", store.ErrNoUserWasFound, ErrNotFound},
		{"wrapped no user", fmt.Errorf("%w: recipient %q", store.ErrNoUserWasFound, "bob"), ErrNotFound},
		{"no message", store.ErrMessageNotFound, ErrNotFound},
		{"not recipient", store.ErrNotRecipient, ErrForbidden},
		{"already read", store.ErrMessageAlreadyRead, ErrAlreadyRead},
		{"other", store.ErrExecutingQuery, store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapStoreError(tt.in)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in)
		})
	}

	assert.NoError(t, mapStoreError(nil))
}

func TestMapTokenError(t *testing.T) {
	assert.NoError(t, mapTokenError(nil))
	assert.ErrorIs(t, mapTokenError(utils.ErrTokenExpired), ErrExpiredToken)
	assert.ErrorIs(t, mapTokenError(utils.ErrTokenMalformed), ErrMalformedToken)
	assert.ErrorIs(t, mapTokenError(utils.ErrTokenInvalid), ErrInvalidToken)
	assert.ErrorIs(t, mapTokenError(errors.New("unexpected")), ErrInvalidToken)
}

func TestMapValidationError(t *testing.T) {
	assert.NoError(t, mapValidationError(nil))

	err := mapValidationError(validators.ErrEmptyBody)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, validators.ErrEmptyBody)

	assert.NotErrorIs(t, mapValidationError(validators.ErrUnsupportedType), ErrInvalidArgument)
	assert.NotErrorIs(t, mapValidationError(validators.ErrUnknownField), ErrInvalidArgument)
}
