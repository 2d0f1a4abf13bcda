// Package domain defines domain-level errors for the profile feature.
package domain

import "blog_backend/internal/shared/apperr"

var (
	// ErrProfileNotFound indicates that no user has the requested username.
	ErrProfileNotFound = apperr.New(apperr.ErrNotFound, "profile not found")

	// ErrSelfFollow indicates a user tried to follow or unfollow themself.
	ErrSelfFollow = apperr.New(apperr.ErrInvalidArgument, "cannot follow yourself")
)
