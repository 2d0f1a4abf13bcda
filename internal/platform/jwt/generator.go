// Package jwtmw issues and verifies the bearer tokens that identify API callers.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// generator signs HS256 tokens carrying the user id in "sub".
type generator struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewGenerator creates a new JWT generator with the provided secret and expiration duration.
func NewGenerator(secret string, expiration time.Duration) *generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

// GenerateToken creates a signed JWT token with standard claims.
func (g *generator) GenerateToken(userID uint, username string) (string, error) {
	now := g.now()
	claims := jwt.MapClaims{
		"sub":      userID,
		"exp":      now.Add(g.expiration).Unix(),
		"iat":      now.Unix(),
		"username": username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
