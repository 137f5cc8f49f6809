package valueobject

import (
	"strconv"

	"github.com/payflow/backend/internal/domain/shared"
)

// BillID identifies a persisted bill. The zero value is invalid; bills
// receive their identifier from the persistence layer on first save.
type BillID struct {
	value int64
}

// NewBillID creates a BillID from a positive integer.
func NewBillID(id int64) (BillID, error) {
	if id <= 0 {
		return BillID{}, shared.NewDataError("INVALID_BILL_ID", "Bill ID must be greater than zero")
	}
	return BillID{value: id}, nil
}

// ParseBillID creates a BillID from its decimal string form.
func ParseBillID(s string) (BillID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return BillID{}, shared.NewDataError("INVALID_BILL_ID", "Invalid bill ID format")
	}
	return NewBillID(id)
}

// Value returns the numeric identifier.
func (id BillID) Value() int64 {
	return id.value
}

// IsZero reports whether the identifier has not been assigned.
func (id BillID) IsZero() bool {
	return id.value == 0
}

// Equals returns true if both identifiers are equal.
func (id BillID) Equals(other BillID) bool {
	return id.value == other.value
}

// String returns the decimal string form.
func (id BillID) String() string {
	return strconv.FormatInt(id.value, 10)
}
