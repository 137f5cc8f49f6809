package bill

import (
	"github.com/payflow/backend/internal/domain/bill"
	"github.com/payflow/backend/internal/domain/bill/valueobject"
)

// Result is the closed set of use case outputs, one variant per operation
// shape.
type Result interface {
	isResult()
}

// SingleResult wraps one bill.
type SingleResult struct {
	Bill *bill.Bill
}

// ListResult wraps one page of bills plus the total count for the filter.
type ListResult struct {
	Bills         []*bill.Bill
	TotalElements int64
	CurrentPage   int
	PageSize      int
}

// TotalPages computes the page count by ceiling division.
func (r ListResult) TotalPages() int64 {
	return (r.TotalElements + int64(r.PageSize) - 1) / int64(r.PageSize)
}

// HasNext reports whether a later page exists.
func (r ListResult) HasNext() bool {
	return int64(r.CurrentPage) < r.TotalPages()-1
}

// HasPrevious reports whether an earlier page exists.
func (r ListResult) HasPrevious() bool {
	return r.CurrentPage > 0
}

// TotalPaidResult wraps the summed amount of bills paid in a period.
type TotalPaidResult struct {
	TotalPaid valueobject.Amount
}

// ImportResult reports the outcome of a bulk CSV import.
type ImportResult struct {
	TotalProcessed int
	SuccessCount   int
	ErrorCount     int
	Message        string
}

func (SingleResult) isResult()    {}
func (ListResult) isResult()      {}
func (TotalPaidResult) isResult() {}
func (ImportResult) isResult()    {}
