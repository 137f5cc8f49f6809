package valueobject

import (
	"strconv"

	"github.com/payflow/backend/internal/domain/shared"
)

// UserID identifies a persisted user.
type UserID struct {
	value int64
}

// NewUserID creates a UserID from a positive integer.
func NewUserID(id int64) (UserID, error) {
	if id <= 0 {
		return UserID{}, shared.NewDataError("INVALID_USER_ID", "User ID must be greater than zero")
	}
	return UserID{value: id}, nil
}

// Value returns the numeric identifier.
func (id UserID) Value() int64 {
	return id.value
}

// IsZero reports whether the identifier has not been assigned.
func (id UserID) IsZero() bool {
	return id.value == 0
}

// String returns the decimal string form.
func (id UserID) String() string {
	return strconv.FormatInt(id.value, 10)
}
