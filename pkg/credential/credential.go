// Package credential hashes and verifies registrant passwords with bcrypt.
// Plaintext secrets never leave this package in any form other than a hash.
package credential

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"registrar/pkg/serrors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Verify when the secret does not match the hash.
var ErrMismatch = errors.New("credential mismatch")

// Hash creates a salted bcrypt hash of the provided secret using the given
// cost. A cost of zero selects bcrypt.DefaultCost.
func Hash(secret string, cost int) (string, error) {
	if secret == "" {
		return "", serrors.Invalid("password", "cannot be empty")
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", serrors.Invalid("password", "is too long")
		}

		return "", fmt.Errorf("could not hash secret: %w", err)
	}

	return string(hashed), nil
}

// Verify checks a plaintext secret against a bcrypt hash. It returns
// ErrMismatch for a wrong secret or an empty hash.
func Verify(secret, hash string) error {
	if hash == "" {
		return ErrMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}

		return fmt.Errorf("could not verify secret: %w", err)
	}

	return nil
}

// NewToken returns a URL-safe random token with 256 bits of entropy.
func NewToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
