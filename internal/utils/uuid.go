package utils

import (
	"unicode"

	"github.com/google/uuid"
)

// MaxTraceIDLength bounds trace ids accepted from clients.
const MaxTraceIDLength = 128

// NewTraceID returns a time-ordered UUIDv7, or a random v4 if the clock
// source fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ValidTraceID reports whether a client-supplied trace id is safe to echo
// and log: non-empty, bounded, printable ASCII without spaces.
func ValidTraceID(id string) bool {
	if id == "" || len(id) > MaxTraceIDLength {
		return false
	}
	for _, r := range id {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) || r == ' ' {
			return false
		}
	}
	return true
}
