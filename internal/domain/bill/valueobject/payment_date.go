package valueobject

import (
	"time"

	"github.com/payflow/backend/internal/domain/shared"
)

// PaymentDate is a value object for the date a bill was settled.
// It can never lie in the future.
type PaymentDate struct {
	value time.Time
}

// NewPaymentDate creates a PaymentDate from a non-zero timestamp that is
// not after today.
func NewPaymentDate(value time.Time) (PaymentDate, error) {
	if value.IsZero() {
		return PaymentDate{}, shared.NewDataError("INVALID_PAYMENT_DATE", "Payment date cannot be empty")
	}
	day := truncateToDay(value)
	if day.After(Today()) {
		return PaymentDate{}, shared.NewDataError("INVALID_PAYMENT_DATE", "Payment date cannot be in the future")
	}
	return PaymentDate{value: day}, nil
}

// ParsePaymentDate creates a PaymentDate from its yyyy-MM-dd string form.
func ParsePaymentDate(s string) (PaymentDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return PaymentDate{}, shared.NewDataError("INVALID_PAYMENT_DATE", "Payment date must be in format yyyy-MM-dd")
	}
	return NewPaymentDate(t)
}

// Value returns the calendar date.
func (d PaymentDate) Value() time.Time {
	return d.value
}

// Equals returns true if both dates fall on the same day.
func (d PaymentDate) Equals(other PaymentDate) bool {
	return d.value.Equal(other.value)
}

// String returns the date in yyyy-MM-dd form.
func (d PaymentDate) String() string {
	return d.value.Format(DateLayout)
}
