package bill

import (
	"context"
	"io"

	"github.com/payflow/backend/internal/domain/bill"
	"go.uber.org/zap"
)

// CSVImporter parses a CSV stream into candidate bills, dropping rows that
// fail value-object construction. Implemented by infrastructure/csvimport.
type CSVImporter interface {
	ImportBills(r io.Reader) ([]*bill.Bill, error)
}

// ImportBillsUseCase ingests bills in bulk from a CSV stream.
//
// The whole batch is fail-soft on purpose: this is a background bulk
// operation, so any failure - unreadable stream, malformed header, a
// repository outage - degrades to a zero result with a message instead of
// propagating. Per-row validation failures are already dropped inside the
// importer; rows the repository declines are reported via ErrorCount.
type ImportBillsUseCase struct {
	repo     bill.Repository
	importer CSVImporter
	logger   *zap.Logger
}

// NewImportBillsUseCase creates a new ImportBillsUseCase
func NewImportBillsUseCase(repo bill.Repository, importer CSVImporter, logger *zap.Logger) *ImportBillsUseCase {
	return &ImportBillsUseCase{repo: repo, importer: importer, logger: logger}
}

// Execute parses the stream, batch-saves the parsed bills and reports counts.
func (uc *ImportBillsUseCase) Execute(ctx context.Context, cmd ImportCommand) (ImportResult, error) {
	bills, err := uc.importer.ImportBills(cmd.File)
	if err != nil {
		uc.logger.Error("Error importing bills from CSV",
			zap.String("filename", cmd.Filename),
			zap.Error(err),
		)
		return ImportResult{Message: "Error importing bills: " + err.Error()}, nil
	}

	if len(bills) == 0 {
		return ImportResult{Message: "No bills found in CSV file"}, nil
	}

	saved, err := uc.repo.SaveAll(ctx, bills)
	if err != nil {
		uc.logger.Error("Error saving imported bills",
			zap.String("filename", cmd.Filename),
			zap.Int("parsed", len(bills)),
			zap.Error(err),
		)
		return ImportResult{Message: "Error importing bills: " + err.Error()}, nil
	}

	uc.logger.Info("Bill import completed",
		zap.String("filename", cmd.Filename),
		zap.Int("parsed", len(bills)),
		zap.Int("saved", len(saved)),
	)

	return ImportResult{
		TotalProcessed: len(bills),
		SuccessCount:   len(saved),
		ErrorCount:     len(bills) - len(saved),
		Message:        "Import completed successfully",
	}, nil
}
