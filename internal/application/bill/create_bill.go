package bill

import (
	"context"
	"time"

	"github.com/payflow/backend/internal/domain/bill"
	"github.com/payflow/backend/internal/domain/bill/valueobject"
	"github.com/payflow/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// maxAmount caps what a single bill may be worth.
var maxAmount = decimal.RequireFromString("999999999.99")

// maxDueDateYears is how far into the future a due date may lie.
const maxDueDateYears = 10

// CreateBillUseCase creates a new PENDING bill. Due date and amount are
// range-checked here, beyond what the value objects themselves enforce.
type CreateBillUseCase struct {
	repo bill.Repository
}

// NewCreateBillUseCase creates a new CreateBillUseCase
func NewCreateBillUseCase(repo bill.Repository) *CreateBillUseCase {
	return &CreateBillUseCase{repo: repo}
}

// Execute validates the command, constructs the aggregate and persists it.
func (uc *CreateBillUseCase) Execute(ctx context.Context, cmd CreateCommand) (SingleResult, error) {
	if err := validateDueDate(cmd); err != nil {
		return SingleResult{}, err
	}
	if err := validateAmount(cmd.Amount); err != nil {
		return SingleResult{}, err
	}

	dueDate, err := valueobject.NewDueDate(cmd.DueDate)
	if err != nil {
		return SingleResult{}, err
	}
	amount, err := valueobject.NewAmount(cmd.Amount)
	if err != nil {
		return SingleResult{}, err
	}
	description, err := valueobject.NewDescription(cmd.Description)
	if err != nil {
		return SingleResult{}, err
	}

	b, err := bill.New(dueDate, amount, description)
	if err != nil {
		return SingleResult{}, err
	}

	saved, err := uc.repo.Save(ctx, b)
	if err != nil {
		return SingleResult{}, err
	}
	return SingleResult{Bill: saved}, nil
}

func validateDueDate(cmd CreateCommand) error {
	if cmd.DueDate.IsZero() {
		return shared.NewDataError("INVALID_DUE_DATE", "Due date cannot be empty")
	}
	today := valueobject.Today()
	due := time.Date(cmd.DueDate.Year(), cmd.DueDate.Month(), cmd.DueDate.Day(), 0, 0, 0, 0, time.UTC)
	if due.Before(today) {
		return shared.NewDataError("INVALID_DUE_DATE", "Due date cannot be in the past")
	}
	if due.After(today.AddDate(maxDueDateYears, 0, 0)) {
		return shared.NewDataError("INVALID_DUE_DATE", "Due date cannot be more than 10 years in the future")
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDataError("INVALID_AMOUNT", "Amount must be greater than zero")
	}
	if amount.GreaterThan(maxAmount) {
		return shared.NewDataError("INVALID_AMOUNT", "Amount cannot be greater than 999999999.99")
	}
	return nil
}
