// Package middleware holds the gin middleware shared by every route.
package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"blog_backend/internal/platform/logging"
	"blog_backend/internal/shared/ratelimiter"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns every request an id, honouring an incoming X-Request-ID.
// The id is stored in the request context for logging.WithContext.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.New().String()
		}
		ctx := context.WithValue(c.Request.Context(), logging.RequestIDKey, id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// AccessLog writes one structured line per request after it completes.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		entry := logging.WithContext(c.Request.Context()).WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"route":      c.FullPath(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			entry.Error("request failed")
		case status >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}

// RateLimit rejects a client that exceeds limiter's budget for the route with 429.
// Clients are identified by IP address.
func RateLimit(limiter *ratelimiter.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retry := limiter.Allow(c.ClientIP() + " " + c.FullPath())
		if ok {
			c.Next()
			return
		}
		logging.WithContext(c.Request.Context()).
			WithField("client_ip", c.ClientIP()).
			WithField("route", c.FullPath()).
			Warn("rate limit exceeded")
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
	}
}
