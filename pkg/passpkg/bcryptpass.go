// Package passpkg provides one-way hashing for account PINs.
package passpkg

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash returns the bcrypt hash of the given PIN.
func Hash(pin string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash pin: %w", err)
	}

	return string(hashed), nil
}

// Check checks if the provided PIN is correct for the given hash.
func Check(pin, hashedPIN string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPIN), []byte(pin))
}
