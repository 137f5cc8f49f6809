package bill

import (
	"context"
	"testing"
	"time"

	"github.com/payflow/backend/internal/domain/bill"
	"github.com/payflow/backend/internal/domain/bill/valueobject"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBillRepository implements bill.Repository for testing
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) Save(ctx context.Context, b *bill.Bill) (*bill.Bill, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bill.Bill), args.Error(1)
}

func (m *MockBillRepository) SaveAll(ctx context.Context, bills []*bill.Bill) ([]*bill.Bill, error) {
	args := m.Called(ctx, bills)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bill.Bill), args.Error(1)
}

func (m *MockBillRepository) FindByID(ctx context.Context, id valueobject.BillID) (*bill.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bill.Bill), args.Error(1)
}

func (m *MockBillRepository) FindByDueDateBetweenAndDescription(ctx context.Context, start, end time.Time, description string, page, size int) ([]*bill.Bill, error) {
	args := m.Called(ctx, start, end, description, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bill.Bill), args.Error(1)
}

func (m *MockBillRepository) CountByDueDateBetweenAndDescription(ctx context.Context, start, end time.Time, description string) (int64, error) {
	args := m.Called(ctx, start, end, description)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillRepository) FindByPaymentDateBetween(ctx context.Context, start, end time.Time) ([]*bill.Bill, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bill.Bill), args.Error(1)
}

// testBill builds a persisted bill in the given status for use case tests.
func testBill(t *testing.T, id int64, status bill.Status, amountStr string) *bill.Bill {
	t.Helper()
	billID, err := valueobject.NewBillID(id)
	require.NoError(t, err)
	dueDate, err := valueobject.NewDueDate(time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)
	amount, err := valueobject.NewAmountFromString(amountStr)
	require.NoError(t, err)
	description, err := valueobject.NewDescription("Test bill")
	require.NoError(t, err)
	return bill.Reconstitute(billID, dueDate, nil, amount, description, status)
}
