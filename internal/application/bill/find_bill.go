package bill

import (
	"context"

	"github.com/payflow/backend/internal/domain/bill"
	"github.com/payflow/backend/internal/domain/bill/valueobject"
)

// FindBillUseCase looks up one bill by identifier.
type FindBillUseCase struct {
	repo bill.Repository
}

// NewFindBillUseCase creates a new FindBillUseCase
func NewFindBillUseCase(repo bill.Repository) *FindBillUseCase {
	return &FindBillUseCase{repo: repo}
}

// Execute returns the bill or a not-found data error.
func (uc *FindBillUseCase) Execute(ctx context.Context, cmd FindCommand) (SingleResult, error) {
	id, err := valueobject.NewBillID(cmd.ID)
	if err != nil {
		return SingleResult{}, err
	}

	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return SingleResult{}, err
	}
	return SingleResult{Bill: b}, nil
}
