package csvimport

import (
	"errors"
	"fmt"
)

// Common import errors
var (
	// ErrEmptyFile is returned when the CSV file is empty
	ErrEmptyFile = errors.New("CSV file is empty")

	// ErrInvalidEncoding is returned when the file is not valid UTF-8
	ErrInvalidEncoding = errors.New("invalid file encoding")

	// ErrMissingHeader is returned when the CSV file has no header row
	ErrMissingHeader = errors.New("CSV file missing header row")
)

// InvalidHeaderError is returned when required columns are absent
type InvalidHeaderError struct {
	Missing []string
}

// Error implements the error interface
func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("CSV file missing required columns: %v", e.Missing)
}
