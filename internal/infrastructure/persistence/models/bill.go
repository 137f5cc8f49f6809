package models

import (
	"time"

	"github.com/payflow/backend/internal/domain/bill"
	"github.com/payflow/backend/internal/domain/bill/valueobject"
	"github.com/shopspring/decimal"
)

// BillModel is the persistence model for the Bill aggregate root.
type BillModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	DueDate     time.Time       `gorm:"type:date;not null;index"`
	PaymentDate *time.Time      `gorm:"type:date;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	Status      string          `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (BillModel) TableName() string {
	return "bills"
}

// ToDomain converts the persistence model to a domain Bill aggregate.
// Stored rows always satisfy the value-object rules, so a conversion
// error means the row was corrupted outside the application.
func (m *BillModel) ToDomain() (*bill.Bill, error) {
	id, err := valueobject.NewBillID(m.ID)
	if err != nil {
		return nil, err
	}
	dueDate, err := valueobject.NewDueDate(m.DueDate)
	if err != nil {
		return nil, err
	}
	amount, err := valueobject.NewAmount(m.Amount)
	if err != nil {
		return nil, err
	}
	description, err := valueobject.NewDescription(m.Description)
	if err != nil {
		return nil, err
	}

	var paymentDate *valueobject.PaymentDate
	if m.PaymentDate != nil {
		pd, err := valueobject.NewPaymentDate(*m.PaymentDate)
		if err != nil {
			return nil, err
		}
		paymentDate = &pd
	}

	status, err := bill.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}

	return bill.Reconstitute(id, dueDate, paymentDate, amount, description, status), nil
}

// FromDomain populates the persistence model from a domain Bill aggregate.
func (m *BillModel) FromDomain(b *bill.Bill) {
	m.ID = b.ID().Value()
	m.DueDate = b.DueDate().Value()
	m.Amount = b.Amount().Value()
	m.Description = b.Description().Value()
	m.Status = b.Status().String()

	if pd := b.PaymentDate(); pd != nil {
		v := pd.Value()
		m.PaymentDate = &v
	} else {
		m.PaymentDate = nil
	}
}
