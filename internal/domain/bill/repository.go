package bill

import (
	"context"
	"time"

	"github.com/payflow/backend/internal/domain/bill/valueobject"
)

// Repository is the persistence abstraction consumed by the bill use cases.
// Save assigns the identifier on first save. SaveAll may persist only a
// subset of the given bills; callers must count the returned slice rather
// than assume all-or-nothing.
type Repository interface {
	Save(ctx context.Context, b *Bill) (*Bill, error)
	SaveAll(ctx context.Context, bills []*Bill) ([]*Bill, error)
	FindByID(ctx context.Context, id valueobject.BillID) (*Bill, error)
	FindByDueDateBetweenAndDescription(ctx context.Context, start, end time.Time, description string, page, size int) ([]*Bill, error)
	CountByDueDateBetweenAndDescription(ctx context.Context, start, end time.Time, description string) (int64, error)
	FindByPaymentDateBetween(ctx context.Context, start, end time.Time) ([]*Bill, error)
}
