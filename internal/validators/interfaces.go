// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the
// credential store or the message ledger.
//
// Validation is syntactic only: usernames are well formed, passwords fit
// bcrypt's input limit, message bodies are not blank. Whether a user exists
// or a message may be read is decided by the service layer.
package validators

import "context"

// Validator checks v. When fields are given only those are checked,
// otherwise every field relevant to v's type is.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
