package valueobject

import (
	"strings"
	"unicode/utf8"

	"github.com/payflow/backend/internal/domain/shared"
)

// MaxDescriptionLength is the longest accepted bill description.
const MaxDescriptionLength = 255

// Description is a value object for a bill's free-text description.
type Description struct {
	value string
}

// NewDescription creates a Description, trimming surrounding whitespace.
// The untrimmed input is what is measured against the length limit.
func NewDescription(value string) (Description, error) {
	if strings.TrimSpace(value) == "" {
		return Description{}, shared.NewDataError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if utf8.RuneCountInString(value) > MaxDescriptionLength {
		return Description{}, shared.NewDataError("INVALID_DESCRIPTION", "Description cannot be longer than 255 characters")
	}
	return Description{value: strings.TrimSpace(value)}, nil
}

// Value returns the trimmed description text.
func (d Description) Value() string {
	return d.value
}

// Equals returns true if both descriptions are equal.
func (d Description) Equals(other Description) bool {
	return d.value == other.value
}

// String returns the description text.
func (d Description) String() string {
	return d.value
}
