package api

import (
	"net/http"

	"blog_backend/internal/platform/logging"
	"blog_backend/internal/shared/apperr"

	"github.com/gin-gonic/gin"
)

// AbortWithError maps err onto its HTTP status, logs it at a level matching
// that status and writes an ErrorResponse. Server errors never expose details.
func AbortWithError(c *gin.Context, op string, err error) {
	status := apperr.HTTPStatus(err)
	entry := logging.WithContext(c.Request.Context()).
		WithField("op", op).
		WithField("status", status).
		WithError(err)

	msg := err.Error()
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
		msg = "internal server error"
	} else {
		entry.Warn("request rejected")
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}

// AbortInvalidBody rejects a request body that failed binding validation.
func AbortInvalidBody(c *gin.Context, op string, err error) {
	logging.WithContext(c.Request.Context()).
		WithField("op", op).
		WithError(err).
		Warn("request validation failed")
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid request"})
}

// AbortInvalidParam rejects a path or query parameter that could not be bound.
func AbortInvalidParam(c *gin.Context, op string, err error) {
	logging.WithContext(c.Request.Context()).
		WithField("op", op).
		WithError(err).
		Warn("request parameter rejected")
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid parameter"})
}
