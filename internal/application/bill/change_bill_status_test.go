package bill

import (
	"context"
	"testing"
	"time"

	"github.com/payflow/backend/internal/domain/bill"
	"github.com/payflow/backend/internal/domain/bill/valueobject"
	"github.com/payflow/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// overdueTestBill is a PENDING bill already past its due date.
func overdueTestBill(t *testing.T, id int64, status bill.Status) *bill.Bill {
	t.Helper()
	billID, err := valueobject.NewBillID(id)
	require.NoError(t, err)
	dueDate, err := valueobject.NewDueDate(time.Now().AddDate(0, 0, -10))
	require.NoError(t, err)
	amount, err := valueobject.NewAmountFromString("80.00")
	require.NoError(t, err)
	description, err := valueobject.NewDescription("Late bill")
	require.NoError(t, err)
	return bill.Reconstitute(billID, dueDate, nil, amount, description, status)
}

func TestChangeBillStatusUseCase_Cancel(t *testing.T) {
	repo := new(MockBillRepository)
	uc := NewChangeBillStatusUseCase(repo)
	b := testBill(t, 1, bill.StatusPending, "80.00")

	repo.On("FindByID", mock.Anything, b.ID()).Return(b, nil)
	repo.On("Save", mock.Anything, b).Return(b, nil)

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{ID: 1, NewStatus: bill.StatusCancelled})
	require.NoError(t, err)
	assert.Equal(t, bill.StatusCancelled, result.Bill.Status())
	repo.AssertExpectations(t)
}

func TestChangeBillStatusUseCase_MarkOverdue(t *testing.T) {
	repo := new(MockBillRepository)
	uc := NewChangeBillStatusUseCase(repo)
	b := overdueTestBill(t, 2, bill.StatusPending)

	repo.On("FindByID", mock.Anything, b.ID()).Return(b, nil)
	repo.On("Save", mock.Anything, b).Return(b, nil)

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{ID: 2, NewStatus: bill.StatusOverdue})
	require.NoError(t, err)
	assert.Equal(t, bill.StatusOverdue, result.Bill.Status())
}

func TestChangeBillStatusUseCase_MarkOverdueBeforeDueDate(t *testing.T) {
	repo := new(MockBillRepository)
	uc := NewChangeBillStatusUseCase(repo)
	b := testBill(t, 3, bill.StatusPending, "80.00") // due next month

	repo.On("FindByID", mock.Anything, b.ID()).Return(b, nil)

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{ID: 3, NewStatus: bill.StatusOverdue})
	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindStatus))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestChangeBillStatusUseCase_MarkPending(t *testing.T) {
	repo := new(MockBillRepository)
	uc := NewChangeBillStatusUseCase(repo)
	b := overdueTestBill(t, 4, bill.StatusOverdue)

	repo.On("FindByID", mock.Anything, b.ID()).Return(b, nil)
	repo.On("Save", mock.Anything, b).Return(b, nil)

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{ID: 4, NewStatus: bill.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, bill.StatusPending, result.Bill.Status())
}

func TestChangeBillStatusUseCase_PaidAlwaysRejected(t *testing.T) {
	for _, status := range []bill.Status{bill.StatusPending, bill.StatusOverdue, bill.StatusPaid, bill.StatusCancelled} {
		t.Run("from "+status.String(), func(t *testing.T) {
			repo := new(MockBillRepository)
			uc := NewChangeBillStatusUseCase(repo)
			b := overdueTestBill(t, 5, status)

			repo.On("FindByID", mock.Anything, b.ID()).Return(b, nil)

			_, err := uc.Execute(context.Background(), ChangeStatusCommand{ID: 5, NewStatus: bill.StatusPaid})
			require.Error(t, err)
			assert.True(t, shared.IsKind(err, shared.KindStatus))
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestChangeBillStatusUseCase_NotFound(t *testing.T) {
	repo := new(MockBillRepository)
	uc := NewChangeBillStatusUseCase(repo)

	id, err := valueobject.NewBillID(99)
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err = uc.Execute(context.Background(), ChangeStatusCommand{ID: 99, NewStatus: bill.StatusCancelled})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
