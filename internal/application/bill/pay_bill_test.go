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

func TestPayBillUseCase_Execute(t *testing.T) {
	repo := new(MockBillRepository)
	uc := NewPayBillUseCase(repo)
	b := testBill(t, 1, bill.StatusPending, "120.00")

	repo.On("FindByID", mock.Anything, b.ID()).Return(b, nil)
	repo.On("Save", mock.Anything, b).Return(b, nil)

	result, err := uc.Execute(context.Background(), PayCommand{ID: 1, PaymentDate: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, bill.StatusPaid, result.Bill.Status())
	require.NotNil(t, result.Bill.PaymentDate())
	repo.AssertExpectations(t)
}

func TestPayBillUseCase_AlreadyPaid(t *testing.T) {
	repo := new(MockBillRepository)
	uc := NewPayBillUseCase(repo)
	b := testBill(t, 1, bill.StatusPaid, "120.00")

	repo.On("FindByID", mock.Anything, b.ID()).Return(b, nil)

	_, err := uc.Execute(context.Background(), PayCommand{ID: 1, PaymentDate: time.Now()})
	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindStatus))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPayBillUseCase_FuturePaymentDate(t *testing.T) {
	repo := new(MockBillRepository)
	uc := NewPayBillUseCase(repo)
	b := testBill(t, 1, bill.StatusPending, "120.00")

	repo.On("FindByID", mock.Anything, b.ID()).Return(b, nil)

	_, err := uc.Execute(context.Background(), PayCommand{ID: 1, PaymentDate: time.Now().AddDate(0, 0, 1)})
	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindData))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPayBillUseCase_NotFound(t *testing.T) {
	repo := new(MockBillRepository)
	uc := NewPayBillUseCase(repo)

	id, err := valueobject.NewBillID(42)
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err = uc.Execute(context.Background(), PayCommand{ID: 42, PaymentDate: time.Now()})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPayBillUseCase_InvalidID(t *testing.T) {
	repo := new(MockBillRepository)
	uc := NewPayBillUseCase(repo)

	_, err := uc.Execute(context.Background(), PayCommand{ID: 0, PaymentDate: time.Now()})
	require.Error(t, err)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
