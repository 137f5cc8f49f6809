package valueobject

import (
	"strings"

	"github.com/payflow/backend/internal/domain/shared"
)

// Username is a value object for a login name. Stored lowercase.
type Username struct {
	value string
}

// NewUsername creates a Username between 3 and 50 characters.
func NewUsername(value string) (Username, error) {
	if strings.TrimSpace(value) == "" {
		return Username{}, shared.NewDataError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(value) < 3 || len(value) > 50 {
		return Username{}, shared.NewDataError("INVALID_USERNAME", "Username must be between 3 and 50 characters")
	}
	return Username{value: strings.ToLower(strings.TrimSpace(value))}, nil
}

// Value returns the normalized username.
func (u Username) Value() string {
	return u.value
}

// Equals returns true if both usernames are equal.
func (u Username) Equals(other Username) bool {
	return u.value == other.value
}

// String returns the normalized username.
func (u Username) String() string {
	return u.value
}
