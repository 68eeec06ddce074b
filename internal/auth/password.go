package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Verify when the password does not
// match the stored digest.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// PasswordHasher hashes and verifies passwords with bcrypt.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a bcrypt password hasher. Costs outside the
// bcrypt range fall back to the default cost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt digest of plaintext. Bcrypt rejects inputs over
// 72 bytes; that surfaces as an error here, not a truncation.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(digest), nil
}

// Verify compares plaintext against a stored digest. Returns
// ErrInvalidCredentials on mismatch or malformed digest.
func (h *PasswordHasher) Verify(plaintext, digest string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
