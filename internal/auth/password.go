// Package auth provides password hashing and bearer token management.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor. It matches the factor the stored
// hashes were produced with, so existing credentials keep verifying.
const HashCost = 10

// HashPassword computes a salted bcrypt hash of the plaintext password.
// The salt is random, so two calls on the same input yield different hashes.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), HashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
