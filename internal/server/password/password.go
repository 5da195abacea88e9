// Package password wraps bcrypt for credential hashing and verification.
//
// Hash output embeds a random salt, so hashing the same plaintext twice
// yields different strings; Verify compares in constant time regardless of
// where a mismatch occurs.
package password

import (
	"errors"
	"fmt"

	"github.com/khushal/hello-grpc/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// Hash derives a salted bcrypt hash from plaintext. It fails only on
// catastrophic internal error and such a failure is not retryable.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(h), nil
}

// Verify reports whether plaintext matches hash. A well-formed but
// non-matching hash yields (false, nil); a hash that is not a bcrypt product
// yields common.ErrorMalformedHash.
func Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", common.ErrorMalformedHash, err)
}
