// Package common defines shared constants and sentinel errors used across
// client and server layers of authcore. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Credential errors.
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already registered")

	// CorruptHash means a stored password hash is structurally unreadable.
	// This is a data-integrity fault, never a user-facing credential error.
	ErrCorruptHash = errors.New("corrupt password hash")

	// Token lifecycle errors. Kept distinct so callers can tell
	// "log in again" apart from "invalid session".
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrUserNotFound means a valid token references a user that no longer
	// exists (deleted after issuance).
	ErrUserNotFound = errors.New("user not found")

	// ErrDirectory wraps storage-layer faults from the user directory.
	ErrDirectory = errors.New("user directory error")
)
