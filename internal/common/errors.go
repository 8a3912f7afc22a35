// Package common defines shared constants and sentinel errors used across
// bookmarkd components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrorEmailTaken = errors.New("credentials taken")

	// Service-level errors (generic/internal flow control).
	ErrorInternal           = errors.New("internal error")
	ErrorInvalidCredentials = errors.New("credentials incorrect")
	ErrorForbidden          = errors.New("access to resource denied")

	// Validation errors, raised at the transport boundary.
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrorInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrorTokenExpired = errors.New("token expired")
)
