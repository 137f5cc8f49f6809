package handler

import (
	"github.com/payflow/backend/internal/domain/bill"
	"github.com/shopspring/decimal"
)

// CreateBillRequest is the payload for creating a bill
type CreateBillRequest struct {
	DueDate     string          `json:"dueDate" binding:"required,dateonly"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"required"`
}

// UpdateBillRequest is the payload for replacing a bill's editable fields
type UpdateBillRequest struct {
	DueDate     string          `json:"dueDate" binding:"required,dateonly"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"required"`
}

// PayBillRequest is the payload for settling a bill
type PayBillRequest struct {
	PaymentDate string `json:"paymentDate" binding:"required,dateonly"`
}

// ChangeStatusRequest is the payload for an external status transition
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListBillsRequest carries the query parameters for a paginated listing.
// Pages are zero-indexed.
type ListBillsRequest struct {
	StartDate   string `form:"startDate" binding:"required,dateonly"`
	EndDate     string `form:"endDate" binding:"required,dateonly"`
	Description string `form:"description"`
	Page        int    `form:"page,default=0" binding:"min=0"`
	Size        int    `form:"size,default=10" binding:"min=1,max=100"`
}

// TotalPaidRequest carries the query parameters for the paid-total report
type TotalPaidRequest struct {
	StartDate string `form:"startDate" binding:"required,dateonly"`
	EndDate   string `form:"endDate" binding:"required,dateonly"`
}

// BillResponse is the wire representation of a bill
type BillResponse struct {
	ID          int64   `json:"id"`
	DueDate     string  `json:"dueDate"`
	PaymentDate *string `json:"paymentDate,omitempty"`
	Amount      string  `json:"amount"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
}

// TotalPaidResponse is the wire representation of the paid-total report
type TotalPaidResponse struct {
	TotalPaid string `json:"totalPaid"`
}

// ImportResponse is the wire representation of a CSV import outcome
type ImportResponse struct {
	TotalProcessed int    `json:"totalProcessed"`
	SuccessCount   int    `json:"successCount"`
	ErrorCount     int    `json:"errorCount"`
	Message        string `json:"message"`
}

// NewBillResponse maps a bill aggregate to its wire form
func NewBillResponse(b *bill.Bill) BillResponse {
	resp := BillResponse{
		ID:          b.ID().Value(),
		DueDate:     b.DueDate().String(),
		Amount:      b.Amount().String(),
		Description: b.Description().Value(),
		Status:      b.Status().String(),
	}
	if pd := b.PaymentDate(); pd != nil {
		s := pd.String()
		resp.PaymentDate = &s
	}
	return resp
}

// NewBillResponses maps a slice of bill aggregates to their wire form
func NewBillResponses(bills []*bill.Bill) []BillResponse {
	responses := make([]BillResponse, len(bills))
	for i, b := range bills {
		responses[i] = NewBillResponse(b)
	}
	return responses
}
