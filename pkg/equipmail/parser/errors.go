package parser

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrMissingColumns indicates the sheet header does not reach a mapped column.
var ErrMissingColumns = errors.New("missing columns")

// ErrInvalidNumber indicates a numeric cell could not be parsed.
var ErrInvalidNumber = errors.New("invalid number")

// RowError describes a malformed data row. Rows with a RowError are skipped.
type RowError struct {
	Sheet  string
	Row    int
	Column string // field name, e.g. "age"
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("sheet %q row %d (%s): %v", e.Sheet, e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// NewRowError creates a new RowError.
func NewRowError(sheet string, row int, column string, err error) *RowError {
	return &RowError{
		Sheet:  sheet,
		Row:    row,
		Column: column,
		Err:    err,
	}
}
