package bill

import (
	"context"

	"github.com/payflow/backend/internal/domain/bill"
	"github.com/payflow/backend/internal/domain/bill/valueobject"
	"github.com/payflow/backend/internal/domain/shared"
)

// ChangeBillStatusUseCase applies external status transitions: cancelling,
// marking overdue and toggling an overdue bill back to pending. Marking a
// bill PAID this way is always rejected; payment goes through PayBillUseCase
// so a payment date is recorded.
type ChangeBillStatusUseCase struct {
	repo bill.Repository
}

// NewChangeBillStatusUseCase creates a new ChangeBillStatusUseCase
func NewChangeBillStatusUseCase(repo bill.Repository) *ChangeBillStatusUseCase {
	return &ChangeBillStatusUseCase{repo: repo}
}

// Execute loads the bill, applies the transition and persists.
func (uc *ChangeBillStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (SingleResult, error) {
	id, err := valueobject.NewBillID(cmd.ID)
	if err != nil {
		return SingleResult{}, err
	}

	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return SingleResult{}, err
	}

	switch cmd.NewStatus {
	case bill.StatusCancelled:
		err = b.Cancel()
	case bill.StatusOverdue:
		err = b.MarkOverdue()
	case bill.StatusPending:
		err = b.MarkPending()
	case bill.StatusPaid:
		err = shared.NewStatusError("INVALID_BILL_STATUS", "Use the pay operation to mark a bill as PAID")
	default:
		err = shared.NewDataError("INVALID_STATUS", "Unknown bill status: "+cmd.NewStatus.String())
	}
	if err != nil {
		return SingleResult{}, err
	}

	saved, err := uc.repo.Save(ctx, b)
	if err != nil {
		return SingleResult{}, err
	}
	return SingleResult{Bill: saved}, nil
}
