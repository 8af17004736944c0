// Package usecase implements the business logic for the access feature.
package usecase

import "errors"

var (
	// ErrEmptyPassword is returned when the submitted password is empty or
	// whitespace-only. Callers should reject this input before reaching the
	// database at all.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrInvalidCredentials is the single generic failure for any password
	// that matches nothing. No distinction is surfaced about why, to prevent
	// credential enumeration.
	ErrInvalidCredentials = errors.New("invalid password")

	// ErrSessionExpired is returned when an operation requires a live session.
	ErrSessionExpired = errors.New("session has expired")

	// ErrCodeRevoked is returned when the server's active credential version
	// no longer matches the session's stored version. The session must end
	// rather than be extended.
	ErrCodeRevoked = errors.New("credential has been rotated")

	// ErrSharedPasswordNoClients is returned when creating or updating a
	// non-master shared password with an empty client set.
	ErrSharedPasswordNoClients = errors.New("non-master shared password must reference at least one client")

	// ErrClientNotFound is returned when a client lookup by ID fails.
	ErrClientNotFound = errors.New("client not found")

	// ErrAccessCodeNotFound is returned when an access code lookup by ID fails.
	ErrAccessCodeNotFound = errors.New("access code not found")

	// ErrSharedPasswordNotFound is returned when a shared password lookup by ID fails.
	ErrSharedPasswordNotFound = errors.New("shared password not found")
)
