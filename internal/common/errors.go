// Package common defines shared constants and sentinel errors used across
// the SaludConecta client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Session persistence errors.
	ErrCorruptSession = errors.New("corrupt persisted session")

	// Call token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
