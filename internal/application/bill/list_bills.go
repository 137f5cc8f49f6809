package bill

import (
	"context"

	"github.com/payflow/backend/internal/domain/bill"
)

// ListBillsUseCase returns one page of bills filtered by due-date range and
// an optional case-insensitive description substring.
type ListBillsUseCase struct {
	repo bill.Repository
}

// NewListBillsUseCase creates a new ListBillsUseCase
func NewListBillsUseCase(repo bill.Repository) *ListBillsUseCase {
	return &ListBillsUseCase{repo: repo}
}

// Execute queries the page and the total count for the same filter.
func (uc *ListBillsUseCase) Execute(ctx context.Context, cmd ListCommand) (ListResult, error) {
	bills, err := uc.repo.FindByDueDateBetweenAndDescription(
		ctx, cmd.StartDate, cmd.EndDate, cmd.Description, cmd.Page, cmd.Size)
	if err != nil {
		return ListResult{}, err
	}

	total, err := uc.repo.CountByDueDateBetweenAndDescription(
		ctx, cmd.StartDate, cmd.EndDate, cmd.Description)
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Bills:         bills,
		TotalElements: total,
		CurrentPage:   cmd.Page,
		PageSize:      cmd.Size,
	}, nil
}
