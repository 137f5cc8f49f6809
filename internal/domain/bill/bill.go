package bill

import (
	"fmt"

	"github.com/payflow/backend/internal/domain/bill/valueobject"
	"github.com/payflow/backend/internal/domain/shared"
)

// Bill is the aggregate root for one payable obligation. All mutation goes
// through its methods; fields are never writable from outside the package,
// which is what keeps the status machine honest.
type Bill struct {
	id          valueobject.BillID
	dueDate     valueobject.DueDate
	paymentDate *valueobject.PaymentDate
	amount      valueobject.Amount
	description valueobject.Description
	status      Status
}

// New creates a PENDING bill with no identifier. The identifier is
// assigned by the persistence layer on first save.
func New(dueDate valueobject.DueDate, amount valueobject.Amount, description valueobject.Description) (*Bill, error) {
	if dueDate.Value().IsZero() || !amount.IsPositive() || description.Value() == "" {
		return nil, shared.NewDataError("INVALID_BILL_DATA", "All bill data must be provided")
	}
	return &Bill{
		dueDate:     dueDate,
		amount:      amount,
		description: description,
		status:      StatusPending,
	}, nil
}

// Reconstitute rebuilds a bill from persisted state without revalidating
// business rules. Only the persistence layer should call it.
func Reconstitute(
	id valueobject.BillID,
	dueDate valueobject.DueDate,
	paymentDate *valueobject.PaymentDate,
	amount valueobject.Amount,
	description valueobject.Description,
	status Status,
) *Bill {
	return &Bill{
		id:          id,
		dueDate:     dueDate,
		paymentDate: paymentDate,
		amount:      amount,
		description: description,
		status:      status,
	}
}

// ID returns the bill identifier. IsZero is true until first save.
func (b *Bill) ID() valueobject.BillID { return b.id }

// DueDate returns the date the bill falls due.
func (b *Bill) DueDate() valueobject.DueDate { return b.dueDate }

// PaymentDate returns the settlement date, or nil while unpaid.
func (b *Bill) PaymentDate() *valueobject.PaymentDate { return b.paymentDate }

// Amount returns the billed amount.
func (b *Bill) Amount() valueobject.Amount { return b.amount }

// Description returns the bill description.
func (b *Bill) Description() valueobject.Description { return b.description }

// Status returns the current lifecycle status.
func (b *Bill) Status() Status { return b.status }

// AssignID records the identifier issued by the persistence layer.
func (b *Bill) AssignID(id valueobject.BillID) {
	b.id = id
}

// Pay settles the bill, recording the payment date and moving it to PAID.
// Only actionable bills (PENDING or OVERDUE) can be paid.
func (b *Bill) Pay(paymentDate *valueobject.PaymentDate) error {
	if paymentDate == nil {
		return shared.NewDataError("INVALID_BILL_DATA", "Payment date must be provided")
	}
	if !b.status.IsActionable() {
		return shared.NewStatusError("INVALID_BILL_STATUS", fmt.Sprintf("Bill cannot be paid in current status: %s", b.status))
	}
	b.paymentDate = paymentDate
	b.status = StatusPaid
	return nil
}

// Update replaces the due date, amount and description. Only actionable
// bills can be modified; the three fields are replaced together or not at all.
func (b *Bill) Update(dueDate valueobject.DueDate, amount valueobject.Amount, description valueobject.Description) error {
	if dueDate.Value().IsZero() || !amount.IsPositive() || description.Value() == "" {
		return shared.NewDataError("INVALID_BILL_DATA", "All update data must be provided")
	}
	if !b.status.IsActionable() {
		return shared.NewStatusError("INVALID_BILL_STATUS", fmt.Sprintf("Bill cannot be modified in current status: %s", b.status))
	}
	b.dueDate = dueDate
	b.amount = amount
	b.description = description
	return nil
}

// Cancel voids the bill. Only actionable bills can be cancelled.
func (b *Bill) Cancel() error {
	if !b.status.IsActionable() {
		return shared.NewStatusError("INVALID_BILL_STATUS", fmt.Sprintf("Bill cannot be cancelled in current status: %s", b.status))
	}
	b.status = StatusCancelled
	return nil
}

// MarkOverdue moves a PENDING bill past its due date to OVERDUE.
func (b *Bill) MarkOverdue() error {
	if b.status != StatusPending {
		return shared.NewStatusError("INVALID_BILL_STATUS", "Only PENDING bills can be marked as OVERDUE")
	}
	if !b.dueDate.IsOnOrBefore(valueobject.Today()) {
		return shared.NewStatusError("INVALID_BILL_STATUS", "Cannot mark bill as OVERDUE before due date")
	}
	b.status = StatusOverdue
	return nil
}

// MarkPending moves an OVERDUE bill back to PENDING.
func (b *Bill) MarkPending() error {
	if b.status != StatusOverdue {
		return shared.NewStatusError("INVALID_BILL_STATUS", "Only OVERDUE bills can be marked as PENDING")
	}
	b.status = StatusPending
	return nil
}
