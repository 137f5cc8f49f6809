package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/payflow/backend/internal/domain/bill"
	"github.com/payflow/backend/internal/domain/bill/valueobject"
	"github.com/payflow/backend/internal/domain/shared"
	"github.com/payflow/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormBillRepository implements bill.Repository using GORM
type GormBillRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormBillRepository creates a new GormBillRepository
func NewGormBillRepository(db *gorm.DB, logger *zap.Logger) *GormBillRepository {
	return &GormBillRepository{db: db, logger: logger}
}

// Save creates or updates a bill. On first save the generated identifier
// is assigned to the aggregate.
func (r *GormBillRepository) Save(ctx context.Context, b *bill.Bill) (*bill.Bill, error) {
	var model models.BillModel
	model.FromDomain(b)

	tx := r.db.WithContext(ctx)
	if model.ID != 0 {
		// The model is rebuilt from the aggregate, so created_at is zero
		// here and must not be written on updates.
		tx = tx.Omit("CreatedAt")
	}
	if err := tx.Save(&model).Error; err != nil {
		return nil, err
	}

	if b.ID().IsZero() {
		id, err := valueobject.NewBillID(model.ID)
		if err != nil {
			return nil, err
		}
		b.AssignID(id)
	}
	return b, nil
}

// SaveAll persists bills one by one, skipping rows the database declines.
// The returned slice holds only the bills that were actually saved.
func (r *GormBillRepository) SaveAll(ctx context.Context, bills []*bill.Bill) ([]*bill.Bill, error) {
	saved := make([]*bill.Bill, 0, len(bills))
	for _, b := range bills {
		persisted, err := r.Save(ctx, b)
		if err != nil {
			r.logger.Warn("Skipping bill that could not be saved",
				zap.String("due_date", b.DueDate().String()),
				zap.String("description", b.Description().Value()),
				zap.Error(err),
			)
			continue
		}
		saved = append(saved, persisted)
	}
	return saved, nil
}

// FindByID finds a bill by its ID
func (r *GormBillRepository) FindByID(ctx context.Context, id valueobject.BillID) (*bill.Bill, error) {
	var model models.BillModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByDueDateBetweenAndDescription returns one page of bills due in the
// inclusive range, optionally filtered by a case-insensitive description
// substring, ordered by due date.
func (r *GormBillRepository) FindByDueDateBetweenAndDescription(ctx context.Context, start, end time.Time, description string, page, size int) ([]*bill.Bill, error) {
	var billModels []models.BillModel
	query := r.filteredQuery(ctx, start, end, description).
		Order("due_date ASC, id ASC").
		Limit(size).
		Offset(page * size)

	if err := query.Find(&billModels).Error; err != nil {
		return nil, err
	}
	return toDomainBills(billModels)
}

// CountByDueDateBetweenAndDescription counts bills matching the same filter
// as FindByDueDateBetweenAndDescription.
func (r *GormBillRepository) CountByDueDateBetweenAndDescription(ctx context.Context, start, end time.Time, description string) (int64, error) {
	var count int64
	if err := r.filteredQuery(ctx, start, end, description).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByPaymentDateBetween returns all bills paid in the inclusive range.
func (r *GormBillRepository) FindByPaymentDateBetween(ctx context.Context, start, end time.Time) ([]*bill.Bill, error) {
	var billModels []models.BillModel
	if err := r.db.WithContext(ctx).
		Where("payment_date >= ? AND payment_date <= ?", start, end).
		Find(&billModels).Error; err != nil {
		return nil, err
	}
	return toDomainBills(billModels)
}

// filteredQuery builds the due-date range and description filter shared by
// the list and count queries. LOWER(...) LIKE keeps the match
// case-insensitive on every supported database.
func (r *GormBillRepository) filteredQuery(ctx context.Context, start, end time.Time, description string) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.BillModel{}).
		Where("due_date >= ? AND due_date <= ?", start, end)
	if description != "" {
		query = query.Where("LOWER(description) LIKE LOWER(?)", "%"+description+"%")
	}
	return query
}

func toDomainBills(billModels []models.BillModel) ([]*bill.Bill, error) {
	bills := make([]*bill.Bill, 0, len(billModels))
	for i := range billModels {
		b, err := billModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, nil
}
