// Package domain defines domain-level errors for the auth feature.
package domain

import "blog_backend/internal/shared/apperr"

// Domain errors for authentication operations.
// Each one also matches its apperr category so the transport can map it to a status.
var (
	// ErrUserAlreadyExists indicates that the username or email is taken.
	ErrUserAlreadyExists = apperr.New(apperr.ErrConflict, "username or email already taken")

	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = apperr.New(apperr.ErrNotFound, "user not found")

	// ErrInvalidCredentials indicates that the provided credentials are incorrect.
	// This is returned during login when email or password is invalid.
	ErrInvalidCredentials = apperr.New(apperr.ErrInvalidArgument, "invalid email or password")

	// ErrWeakPassword indicates a password shorter than the minimum length.
	ErrWeakPassword = apperr.New(apperr.ErrInvalidArgument, "password must be at least 8 characters long")
)
