package qbittorrent

import (
	"errors"
	"fmt"
)

// Common errors returned by the qBittorrent client.
var (
	// ErrUnsupportedValue is returned when a parameter value is not a
	// supported scalar type.
	ErrUnsupportedValue = errors.New("unsupported parameter value")

	// ErrNoSessionCookie is returned when a login response carries no
	// Set-Cookie header to establish a session from.
	ErrNoSessionCookie = errors.New("no session cookie in login response")
)

// AuthError indicates that the login handshake failed. It names the
// username that was attempted and wraps the underlying cause.
type AuthError struct {
	Username string
	Err      error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed for user %q: %v", e.Username, e.Err)
}

// Unwrap returns the underlying cause.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// StatusError indicates that the API answered a call with a non-200
// HTTP status.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("qbittorrent API error: %s returned status %d", e.Endpoint, e.StatusCode)
}

// IsForbidden reports whether the call was rejected for a missing or
// expired session.
func (e *StatusError) IsForbidden() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsNotFound reports whether the target of the call does not exist.
func (e *StatusError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsConflict reports whether the call conflicted with the current
// state, e.g. creating a category that already exists.
func (e *StatusError) IsConflict() bool {
	return e.StatusCode == 409
}
