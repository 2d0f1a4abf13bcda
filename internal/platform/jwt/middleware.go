package jwtmw

import (
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "userID"

var errMissingBearer = errors.New("missing bearer token")

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated users only.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			// Server misconfiguration (JWT_SECRET not set)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		userID, err := authenticate(c, secret)
		if errors.Is(err, errMissingBearer) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// AuthOptional identifies the caller when a valid bearer token is present and
// lets anonymous requests through otherwise. An invalid token is still rejected.
func AuthOptional(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		userID, err := authenticate(c, secret)
		if errors.Is(err, errMissingBearer) {
			c.Next()
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by the middleware.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

func authenticate(c *gin.Context, secret string) (uint, error) {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return 0, errMissingBearer
	}
	tokenStr := strings.TrimPrefix(auth, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, jwt.ErrTokenInvalidClaims
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	// uint is 32 bits on some platforms
	if !ok || sub < 1 || sub > math.MaxUint32 || sub != math.Trunc(sub) {
		return 0, jwt.ErrTokenInvalidClaims
	}
	return uint(sub), nil
}
