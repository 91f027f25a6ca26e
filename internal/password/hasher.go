// Package password provides the one-way credential hasher used at
// registration and login.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is fixed for all users. Raising it only affects newly stored
// hashes; bcrypt embeds the cost in the output so Verify keeps working.
const hashCost = 10

// Hasher hashes and verifies plaintext passwords with bcrypt. The salt is
// random per call and embedded in the output, so hashing the same plaintext
// twice yields different strings that both verify.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the fixed cost factor.
func NewHasher() *Hasher {
	return &Hasher{cost: hashCost}
}

// Hash returns the salted bcrypt hash of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(out), nil
}

// Verify reports whether plaintext matches hash. Malformed hashes verify
// as false, never as an error.
func (h *Hasher) Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
