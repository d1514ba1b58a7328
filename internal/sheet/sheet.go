// ABOUTME: Spreadsheet capability used by the converters.
// ABOUTME: Reads the first sheet into rows and writes rows into a named sheet.

package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/harper/catalog/internal/fileutil"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet name written by the exporter.
const DefaultSheet = "Cards"

// Reader loads every row of a workbook's first sheet.
type Reader interface {
	ReadRows(path string) ([][]string, error)
}

// Writer stores rows into a single-sheet workbook.
type Writer interface {
	WriteRows(path, sheetName string, rows [][]string) error
}

// Excel implements Reader and Writer on top of excelize.
type Excel struct{}

func NewExcel() *Excel {
	return &Excel{}
}

// ReadRows returns the rows of the first sheet, starting at the first row
// holding a value. Trailing empty cells are dropped by excelize, so rows may
// be shorter than the header.
func (Excel) ReadRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return trimLeadingBlank(rows), nil
}

func trimLeadingBlank(rows [][]string) [][]string {
	for i, row := range rows {
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				return rows[i:]
			}
		}
	}
	return nil
}

// WriteRows creates a new workbook at path with a single sheet holding rows.
// The file only appears once it has been fully written.
func (Excel) WriteRows(path, sheetName string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = DefaultSheet
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	return fileutil.WriteAtomic(path, 0644, func(w io.Writer) error {
		return f.Write(w)
	})
}
