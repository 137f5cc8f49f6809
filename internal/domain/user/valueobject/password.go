package valueobject

import (
	"strings"

	"github.com/payflow/backend/internal/domain/shared"
)

// Password is a value object holding either a raw password (at registration,
// before hashing) or a stored hash (when reconstituted). The two factories
// keep the distinction explicit.
type Password struct {
	value string
}

// NewPassword creates a Password from raw user input, at least 6 characters.
func NewPassword(value string) (Password, error) {
	if strings.TrimSpace(value) == "" {
		return Password{}, shared.NewDataError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(value) < 6 {
		return Password{}, shared.NewDataError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	return Password{value: value}, nil
}

// NewHashedPassword wraps an already-hashed password from storage.
func NewHashedPassword(value string) (Password, error) {
	if strings.TrimSpace(value) == "" {
		return Password{}, shared.NewDataError("INVALID_PASSWORD", "Hashed password cannot be empty")
	}
	return Password{value: value}, nil
}

// Value returns the password content.
func (p Password) Value() string {
	return p.value
}
