package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harper/catalog/internal/catalog"
)

var (
	ErrInputNotFound   = errors.New("excel file not found")
	ErrNotXLSX         = errors.New("input file must be an .xlsx file")
	ErrReadSpreadsheet = errors.New("failed to read excel file")
	ErrRowLimit        = errors.New("row limit exceeded")
	ErrMissingColumns  = errors.New("missing required columns")
	ErrWriteSheet      = errors.New("failed to write excel file")

	// Shared with the data file store.
	ErrOutputDirMissing = catalog.ErrDirMissing
	ErrWriteOutput      = catalog.ErrWrite
)

// RowLimitError reports a spreadsheet with more data rows than MaxRows.
type RowLimitError struct {
	Count int
	Limit int
}

func (e *RowLimitError) Error() string {
	return fmt.Sprintf("file exceeds %d row limit (found %d data rows)", e.Limit, e.Count)
}

func (e *RowLimitError) Unwrap() error { return ErrRowLimit }

// MissingColumnsError lists every required column absent from the header.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Missing, ", ")
}

func (e *MissingColumnsError) Unwrap() error { return ErrMissingColumns }
