package service

import "errors"

// Error taxonomy shared by every service. Details are attached with
// fmt.Errorf("%w: ...", ErrX) so callers match with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateIdentity = errors.New("duplicate identity")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrMalformedToken    = errors.New("token is malformed")
	ErrAlreadyRead       = errors.New("message is already read")

	ErrWrongPassword         = errors.New("wrong password")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Machine-readable reason codes returned by Reason.
const (
	ReasonNotFound           = "not_found"
	ReasonDuplicateIdentity  = "duplicate_identity"
	ReasonInvalidArgument    = "invalid_argument"
	ReasonForbidden          = "forbidden"
	ReasonInvalidToken       = "invalid_token"
	ReasonExpiredToken       = "expired_token"
	ReasonMalformedToken     = "malformed_token"
	ReasonAlreadyRead        = "already_read"
	ReasonInvalidCredentials = "invalid_credentials"
	ReasonInternal           = "internal"
)

var reasons = []struct {
	err    error
	reason string
}{
	{ErrNotFound, ReasonNotFound},
	{ErrDuplicateIdentity, ReasonDuplicateIdentity},
	{ErrInvalidArgument, ReasonInvalidArgument},
	{ErrForbidden, ReasonForbidden},
	{ErrInvalidToken, ReasonInvalidToken},
	{ErrExpiredToken, ReasonExpiredToken},
	{ErrMalformedToken, ReasonMalformedToken},
	{ErrAlreadyRead, ReasonAlreadyRead},
	{ErrWrongPassword, ReasonInvalidCredentials},
}

// Reason returns the stable reason code of the first taxonomy error found in
// err's chain, or ReasonInternal.
func Reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ReasonInternal
}
