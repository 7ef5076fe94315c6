// Package domain holds the error taxonomy shared by the auth service layers.
// Handlers map these sentinels onto HTTP status codes; usecases wrap them
// with user-facing messages.
package domain

import "errors"

var (
	// ErrBadRequest marks missing or malformed required input; never retried
	ErrBadRequest = errors.New("bad request")
	// ErrNotFound marks an absent identity or precondition record
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized marks a credential or token mismatch
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden marks an expired but otherwise well-formed credential
	ErrForbidden = errors.New("forbidden")
	// ErrUnprocessable marks a failed identity-existence check in a context
	// expecting prior provisioning
	ErrUnprocessable = errors.New("unprocessable entity")
	// ErrConflict marks creation of an identity that already exists
	ErrConflict = errors.New("already exists")
)
