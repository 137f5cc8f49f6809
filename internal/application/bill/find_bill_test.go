package bill

import (
	"context"
	"testing"

	"github.com/payflow/backend/internal/domain/bill"
	"github.com/payflow/backend/internal/domain/bill/valueobject"
	"github.com/payflow/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFindBillUseCase_Execute(t *testing.T) {
	repo := new(MockBillRepository)
	uc := NewFindBillUseCase(repo)
	b := testBill(t, 7, bill.StatusPending, "45.00")

	repo.On("FindByID", mock.Anything, b.ID()).Return(b, nil)

	result, err := uc.Execute(context.Background(), FindCommand{ID: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Bill.ID().Value())
	repo.AssertExpectations(t)
}

func TestFindBillUseCase_NotFound(t *testing.T) {
	repo := new(MockBillRepository)
	uc := NewFindBillUseCase(repo)

	id, err := valueobject.NewBillID(99)
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err = uc.Execute(context.Background(), FindCommand{ID: 99})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestFindBillUseCase_InvalidID(t *testing.T) {
	repo := new(MockBillRepository)
	uc := NewFindBillUseCase(repo)

	_, err := uc.Execute(context.Background(), FindCommand{ID: -1})
	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindData))
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
