// Package common defines shared constants and sentinel errors used across
// the server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal           = errors.New("internal error")
	ErrorValidation         = errors.New("validation error")
	ErrorUnauthorized       = errors.New("invalid credentials")
	ErrorStorageUnavailable = errors.New("storage unavailable")

	// Token verification errors. The HTTP layer collapses all three into a
	// single unauthorized response; the distinction is for logs only.
	ErrInvalidToken   = errors.New("invalid token signature")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
)
