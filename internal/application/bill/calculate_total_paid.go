package bill

import (
	"context"

	"github.com/payflow/backend/internal/domain/bill"
	"github.com/payflow/backend/internal/domain/bill/valueobject"
	"github.com/shopspring/decimal"
)

// CalculateTotalPaidUseCase sums the amount of every bill whose payment
// date falls in the given inclusive range.
type CalculateTotalPaidUseCase struct {
	repo bill.Repository
}

// NewCalculateTotalPaidUseCase creates a new CalculateTotalPaidUseCase
func NewCalculateTotalPaidUseCase(repo bill.Repository) *CalculateTotalPaidUseCase {
	return &CalculateTotalPaidUseCase{repo: repo}
}

// Execute returns the decimal-exact sum, or the zero Amount when nothing
// was paid in the period.
func (uc *CalculateTotalPaidUseCase) Execute(ctx context.Context, cmd CalculateTotalPaidCommand) (TotalPaidResult, error) {
	paid, err := uc.repo.FindByPaymentDateBetween(ctx, cmd.StartDate, cmd.EndDate)
	if err != nil {
		return TotalPaidResult{}, err
	}

	total := decimal.Zero
	for _, b := range paid {
		total = total.Add(b.Amount().Value())
	}

	if !total.IsPositive() {
		return TotalPaidResult{TotalPaid: valueobject.ZeroAmount()}, nil
	}

	amount, err := valueobject.NewAmount(total)
	if err != nil {
		return TotalPaidResult{}, err
	}
	return TotalPaidResult{TotalPaid: amount}, nil
}
