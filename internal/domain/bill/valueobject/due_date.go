package valueobject

import (
	"time"

	"github.com/payflow/backend/internal/domain/shared"
)

// DateLayout is the calendar-date wire format used throughout billing.
const DateLayout = "2006-01-02"

// truncateToDay normalizes a timestamp to a calendar date in UTC so that
// value-object equality and range comparisons ignore the time component.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date.
func Today() time.Time {
	return truncateToDay(time.Now())
}

// DueDate is a value object for the date a bill falls due. Range checks
// (not in the past, not too far out) belong to the create use case, not here.
type DueDate struct {
	value time.Time
}

// NewDueDate creates a DueDate from a non-zero timestamp.
func NewDueDate(value time.Time) (DueDate, error) {
	if value.IsZero() {
		return DueDate{}, shared.NewDataError("INVALID_DUE_DATE", "Due date cannot be empty")
	}
	return DueDate{value: truncateToDay(value)}, nil
}

// ParseDueDate creates a DueDate from its yyyy-MM-dd string form.
func ParseDueDate(s string) (DueDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return DueDate{}, shared.NewDataError("INVALID_DUE_DATE", "Due date must be in format yyyy-MM-dd")
	}
	return NewDueDate(t)
}

// Value returns the calendar date.
func (d DueDate) Value() time.Time {
	return d.value
}

// IsOnOrBefore reports whether the due date falls on or before the given date.
func (d DueDate) IsOnOrBefore(t time.Time) bool {
	return !d.value.After(truncateToDay(t))
}

// Equals returns true if both dates fall on the same day.
func (d DueDate) Equals(other DueDate) bool {
	return d.value.Equal(other.value)
}

// String returns the date in yyyy-MM-dd form.
func (d DueDate) String() string {
	return d.value.Format(DateLayout)
}
