package bill

import (
	"io"
	"time"

	"github.com/payflow/backend/internal/domain/bill"
	"github.com/shopspring/decimal"
)

// Command is the closed set of billing operations accepted from the
// boundary layer. One variant per operation; the marker method keeps the
// set sealed to this package.
type Command interface {
	isCommand()
}

// CreateCommand carries the inputs for creating a bill.
type CreateCommand struct {
	DueDate     time.Time
	Amount      decimal.Decimal
	Description string
}

// UpdateCommand carries the inputs for replacing a bill's editable fields.
type UpdateCommand struct {
	ID          int64
	DueDate     time.Time
	Amount      decimal.Decimal
	Description string
}

// PayCommand carries the inputs for settling a bill.
type PayCommand struct {
	ID          int64
	PaymentDate time.Time
}

// ListCommand carries the inputs for a paginated bill listing.
// Page is zero-based; Size must be at least 1 (the boundary layer owns
// that check).
type ListCommand struct {
	StartDate   time.Time
	EndDate     time.Time
	Description string
	Page        int
	Size        int
}

// CalculateTotalPaidCommand carries an inclusive payment-date range.
type CalculateTotalPaidCommand struct {
	StartDate time.Time
	EndDate   time.Time
}

// FindCommand carries a bill identifier lookup.
type FindCommand struct {
	ID int64
}

// ChangeStatusCommand carries an external status transition request.
type ChangeStatusCommand struct {
	ID        int64
	NewStatus bill.Status
}

// ImportCommand carries a CSV stream and its filename for diagnostics.
type ImportCommand struct {
	File     io.Reader
	Filename string
}

func (CreateCommand) isCommand()             {}
func (UpdateCommand) isCommand()             {}
func (PayCommand) isCommand()                {}
func (ListCommand) isCommand()               {}
func (CalculateTotalPaidCommand) isCommand() {}
func (FindCommand) isCommand()               {}
func (ChangeStatusCommand) isCommand()       {}
func (ImportCommand) isCommand()             {}
