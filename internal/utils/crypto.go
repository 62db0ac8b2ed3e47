package utils

import "github.com/google/uuid"

// NewUserId returns a random opaque user identifier.
func NewUserId() string {
	return uuid.New().String()
}

// NewVerificationToken returns a single-use email verification token.
func NewVerificationToken() string {
	return uuid.New().String()
}
