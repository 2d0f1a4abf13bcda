// Package entity defines the domain entities for the auth feature.
package entity

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt cost used for new credentials.
var hashCost = bcrypt.DefaultCost

// User represents a registered user in the system.
// It contains authentication credentials and the public profile fields.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the public handle. It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:64;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	Bio   string `gorm:"size:1024"`
	Image string `gorm:"size:512"`

	// Password is the bcrypt hash of the credential, never the plaintext.
	Password string `gorm:"size:255;not null" json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// NewUser builds a user and hashes the plaintext credential.
// This is the only construction path, so a User value never holds plaintext.
func NewUser(username, email, password string) (*User, error) {
	u := &User{Username: username, Email: email}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword replaces the credential with the hash of plain.
func (u *User) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
