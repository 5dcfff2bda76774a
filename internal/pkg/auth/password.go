package auth

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor used for password hashes.
const BcryptCost = 12

// Password policy bounds. The upper bound matches bcrypt's 72 byte input
// limit; anything longer is silently truncated by the hash otherwise.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// ErrPasswordPolicy is the sentinel for passwords outside the policy bounds.
var ErrPasswordPolicy = errors.New("password does not meet the policy")

// ValidatePassword checks a candidate password against the account policy.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Errorf("%w: at least %d characters required", ErrPasswordPolicy, MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: at most %d bytes allowed", ErrPasswordPolicy, MaxPasswordLength)
	}
	return nil
}

// HashPassword hashes a plaintext password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a stored hash
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
