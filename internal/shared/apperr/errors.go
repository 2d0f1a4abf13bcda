// Package apperr defines the error taxonomy shared by every feature.
// Feature packages wrap these sentinels so that callers can match either the
// feature-specific error or its category with errors.Is.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indicates that the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates that the actor does not own the entity it tried to mutate.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict indicates a uniqueness violation reported by the store.
	ErrConflict = errors.New("conflict")

	// ErrInvalidArgument indicates input rejected by a business rule.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStoreFailure indicates a transport or transaction failure in the store.
	ErrStoreFailure = errors.New("store failure")
)

// kindError carries a caller-facing message and matches its category under errors.Is.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// New returns an error whose text is msg and which matches kind under errors.Is.
func New(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Store wraps err as a StoreFailure while keeping the original error in the chain.
// It returns nil for a nil error.
func Store(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStoreFailure) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStoreFailure, err)
}

// IsKnown reports whether err already belongs to a category other than StoreFailure.
func IsKnown(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrInvalidArgument)
}

// HTTPStatus maps an error to the HTTP status code used by the transport layer.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
