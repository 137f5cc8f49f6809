package bill

import "github.com/payflow/backend/internal/domain/shared"

// Status represents the lifecycle status of a bill
type Status string

const (
	StatusPending   Status = "PENDING"   // Awaiting payment, before or on due date
	StatusPaid      Status = "PAID"      // Settled; payment date recorded
	StatusOverdue   Status = "OVERDUE"   // Past due date, still payable
	StatusCancelled Status = "CANCELLED" // Voided before payment
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsActionable returns true if the bill can still be paid, updated or
// cancelled. PAID and CANCELLED are frozen apart from the narrow
// OVERDUE/PENDING toggle, which never touches them.
func (s Status) IsActionable() bool {
	return s == StatusPending || s == StatusOverdue
}

// ParseStatus converts a string into a Status
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", shared.NewDataError("INVALID_STATUS", "Unknown bill status: "+s)
	}
	return status, nil
}
