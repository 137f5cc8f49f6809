package bill

import (
	"context"

	"github.com/payflow/backend/internal/domain/bill"
	"github.com/payflow/backend/internal/domain/bill/valueobject"
)

// UpdateBillUseCase replaces the due date, amount and description of an
// actionable bill.
type UpdateBillUseCase struct {
	repo bill.Repository
}

// NewUpdateBillUseCase creates a new UpdateBillUseCase
func NewUpdateBillUseCase(repo bill.Repository) *UpdateBillUseCase {
	return &UpdateBillUseCase{repo: repo}
}

// Execute loads the bill, delegates to the aggregate and persists.
func (uc *UpdateBillUseCase) Execute(ctx context.Context, cmd UpdateCommand) (SingleResult, error) {
	id, err := valueobject.NewBillID(cmd.ID)
	if err != nil {
		return SingleResult{}, err
	}

	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
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

	if err := b.Update(dueDate, amount, description); err != nil {
		return SingleResult{}, err
	}

	saved, err := uc.repo.Save(ctx, b)
	if err != nil {
		return SingleResult{}, err
	}
	return SingleResult{Bill: saved}, nil
}
