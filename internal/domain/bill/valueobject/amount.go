package valueobject

import (
	"fmt"

	"github.com/payflow/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Amount is a value object for a bill's monetary value.
// It is immutable - Add and Subtract return new Amount instances.
// Construction through NewAmount guarantees a strictly positive value;
// ZeroAmount is the only way to obtain a non-positive Amount and exists
// for empty aggregate results.
type Amount struct {
	value decimal.Decimal
}

// NewAmount creates an Amount from a decimal, rejecting values <= 0.
func NewAmount(value decimal.Decimal) (Amount, error) {
	if value.LessThanOrEqual(decimal.Zero) {
		return Amount{}, shared.NewDataError("INVALID_AMOUNT", "Amount must be greater than zero")
	}
	return Amount{value: value}, nil
}

// NewAmountFromString creates an Amount from its decimal string form.
func NewAmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, shared.NewDataError("INVALID_AMOUNT", fmt.Sprintf("Invalid amount: %q", s))
	}
	return NewAmount(d)
}

// ZeroAmount returns the zero Amount, bypassing the positive-value rule.
func ZeroAmount() Amount {
	return Amount{value: decimal.Zero}
}

// Value returns the decimal value.
func (a Amount) Value() decimal.Decimal {
	return a.value
}

// Add returns a new Amount with the sum of both values.
func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value.Add(other.value)}
}

// Subtract returns a new Amount with the difference of both values.
func (a Amount) Subtract(other Amount) Amount {
	return Amount{value: a.value.Sub(other.value)}
}

// IsPositive returns true if the value is greater than zero.
func (a Amount) IsPositive() bool {
	return a.value.IsPositive()
}

// Equals returns true if both amounts are numerically equal.
func (a Amount) Equals(other Amount) bool {
	return a.value.Equal(other.value)
}

// String returns the amount with two decimal places.
func (a Amount) String() string {
	return a.value.StringFixed(2)
}
