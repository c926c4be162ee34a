package auth

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/spec-kit/estate-cms/pkg/util"
)

// bcrypt silently truncates input beyond 72 bytes; reject instead.
const maxPasswordBytes = 72

// ErrPasswordTooLong is returned for passwords exceeding the bcrypt limit.
// It surfaces as a validation failure rather than an internal error.
var ErrPasswordTooLong = apperrors.NewValidationError("password must be at most 72 bytes")

// HashPassword hashes a plaintext password. Costs outside bcrypt's valid
// range fall back to the library default.
func HashPassword(password string, cost int) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
