package csvimport

import (
	"errors"
	"io"

	"github.com/payflow/backend/internal/domain/bill"
	"github.com/payflow/backend/internal/domain/bill/valueobject"
	"go.uber.org/zap"
)

// Column names expected in the header row of a bill CSV file.
const (
	ColumnDueDate     = "dueDate"
	ColumnAmount      = "amount"
	ColumnDescription = "description"
)

// BillImporter parses bill CSV files into domain aggregates. Rows that fail
// validation are dropped and logged; only stream-level problems (bad
// encoding, missing header) abort the whole parse.
type BillImporter struct {
	logger *zap.Logger
}

// NewBillImporter creates a new BillImporter
func NewBillImporter(logger *zap.Logger) *BillImporter {
	return &BillImporter{logger: logger}
}

// ImportBills parses the stream and returns the bills that passed
// validation, in file order.
func (i *BillImporter) ImportBills(r io.Reader) ([]*bill.Bill, error) {
	parser, err := NewParser(r)
	if err != nil {
		// An empty upload is an empty batch, not a stream failure.
		if errors.Is(err, ErrEmptyFile) {
			return nil, nil
		}
		return nil, err
	}
	if err := parser.ParseHeader(ColumnDueDate, ColumnAmount, ColumnDescription); err != nil {
		return nil, err
	}

	var bills []*bill.Bill
	for {
		row, err := parser.ReadRow()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			i.logger.Warn("Skipping malformed CSV row", zap.Error(err))
			continue
		}
		if row.IsEmpty() {
			continue
		}

		b, err := i.parseRow(row)
		if err != nil {
			i.logger.Warn("Skipping invalid bill row",
				zap.Int("line", row.LineNumber),
				zap.Error(err),
			)
			continue
		}
		bills = append(bills, b)
	}
	return bills, nil
}

func (i *BillImporter) parseRow(row *Row) (*bill.Bill, error) {
	dueDate, err := valueobject.ParseDueDate(row.Get(ColumnDueDate))
	if err != nil {
		return nil, err
	}
	amount, err := valueobject.NewAmountFromString(row.Get(ColumnAmount))
	if err != nil {
		return nil, err
	}
	description, err := valueobject.NewDescription(row.Get(ColumnDescription))
	if err != nil {
		return nil, err
	}
	return bill.New(dueDate, amount, description)
}
