package remap

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoSheets indicates the workbook holds no worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// SheetError represents an error while updating one sheet.
type SheetError struct {
	SheetName string
	Op        string // "read", "write"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("remap error in sheet %q (%s): %v", e.SheetName, e.Op, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, op string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Op:        op,
		Err:       err,
	}
}
