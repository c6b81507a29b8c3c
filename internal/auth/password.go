package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperrors "carzone/internal/errors"
)

const bcryptCost = 10

// ErrHashFormat is returned when a stored password hash cannot be parsed.
// It indicates corrupt data, not a user mistake, and is never surfaced as-is.
var ErrHashFormat = errors.New("malformed password hash")

// HashPassword hashes a plaintext password with bcrypt. bcrypt salts each
// hash itself, so two calls with the same input produce different outputs.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperrors.ErrPasswordTooLong
		}
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// A mismatch returns (false, nil); only a malformed hash yields an error.
// bcrypt compares in constant time.
func CheckPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, ErrHashFormat
	}
}
