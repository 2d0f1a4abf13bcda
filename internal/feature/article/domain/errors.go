// Package domain defines domain-level errors for the article feature.
package domain

import "blog_backend/internal/shared/apperr"

var (
	// ErrArticleNotFound indicates that no article has the requested slug or id.
	ErrArticleNotFound = apperr.New(apperr.ErrNotFound, "article not found")

	// ErrUserNotFound indicates that the acting user no longer exists.
	ErrUserNotFound = apperr.New(apperr.ErrNotFound, "user not found")

	// ErrNotOwner indicates that the actor may not modify the resource.
	ErrNotOwner = apperr.New(apperr.ErrUnauthorized, "only the author may modify this resource")

	// ErrSlugTaken indicates a slug collision on insert.
	ErrSlugTaken = apperr.New(apperr.ErrConflict, "article slug already exists")
)
