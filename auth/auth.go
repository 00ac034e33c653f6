// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrInvalidToken    = errors.New("invalid token format")
)

// GenerateSessionToken creates a random token identifying one ballot session.
// The token is a handle, not a credential: it carries no identity.
func GenerateSessionToken() string {
	return uuid.NewString()
}

// ParseSessionToken normalizes a client-supplied token.
// Anything that is not a UUID is rejected before touching the session store.
func ParseSessionToken(token string) (string, error) {
	id, err := uuid.Parse(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	return id.String(), nil
}

// ValidateAdminKey compares the provided key with the configured one in constant time.
// Both are hashed first so the comparison does not leak the key length.
func ValidateAdminKey(provided, expected string) error {
	if expected == "" || provided == "" {
		return ErrInvalidAdminKey
	}
	a := sha256.Sum256([]byte(provided))
	b := sha256.Sum256([]byte(expected))
	if !hmac.Equal(a[:], b[:]) {
		return ErrInvalidAdminKey
	}
	return nil
}
