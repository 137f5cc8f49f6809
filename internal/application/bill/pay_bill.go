package bill

import (
	"context"

	"github.com/payflow/backend/internal/domain/bill"
	"github.com/payflow/backend/internal/domain/bill/valueobject"
)

// PayBillUseCase settles an actionable bill on a given payment date.
type PayBillUseCase struct {
	repo bill.Repository
}

// NewPayBillUseCase creates a new PayBillUseCase
func NewPayBillUseCase(repo bill.Repository) *PayBillUseCase {
	return &PayBillUseCase{repo: repo}
}

// Execute loads the bill, delegates to the aggregate and persists.
func (uc *PayBillUseCase) Execute(ctx context.Context, cmd PayCommand) (SingleResult, error) {
	id, err := valueobject.NewBillID(cmd.ID)
	if err != nil {
		return SingleResult{}, err
	}

	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return SingleResult{}, err
	}

	paymentDate, err := valueobject.NewPaymentDate(cmd.PaymentDate)
	if err != nil {
		return SingleResult{}, err
	}

	if err := b.Pay(&paymentDate); err != nil {
		return SingleResult{}, err
	}

	saved, err := uc.repo.Save(ctx, b)
	if err != nil {
		return SingleResult{}, err
	}
	return SingleResult{Bill: saved}, nil
}
