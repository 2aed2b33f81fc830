// Package common defines sentinel errors shared by the store, the codec,
// the storage backends and the CLI. Callers should use errors.Is to match
// these values; most are returned wrapped with extra context.
package common

import "errors"

var (
	// Store-level errors.
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUnknownUser       = errors.New("unknown user")
	ErrAuthFailure       = errors.New("invalid username or password")

	// Link policy errors, only returned when the policy forbids the link.
	ErrSelfLink       = errors.New("cannot befriend yourself")
	ErrAlreadyFriends = errors.New("users are already friends")

	// Codec errors.
	ErrTruncatedStream = errors.New("truncated stream")
	ErrMalformedStream = errors.New("malformed stream")
	ErrUnencodable     = errors.New("value cannot be encoded")

	// Configuration errors.
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrInvalidConfig  = errors.New("invalid config")
)
