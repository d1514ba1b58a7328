package convert

import (
	"github.com/harper/catalog/internal/models"
)

// Column names, in the order the exporter writes them.
const (
	ColTitle       = "title"
	ColDescription = "description"
	ColCategories  = "categories"
	ColTypes       = "types"
	ColVisibility  = "visibility"
	ColLink        = "link"
	ColHidden      = "hidden"
)

// RequiredColumns must all be present in an imported header row.
var RequiredColumns = []string{ColTitle, ColDescription, ColCategories, ColTypes, ColVisibility, ColLink}

// ExportColumns is the fixed header written by the exporter.
var ExportColumns = []string{ColTitle, ColDescription, ColCategories, ColTypes, ColVisibility, ColLink, ColHidden}

// ColumnMap maps a required column name to its index in the source rows.
type ColumnMap map[string]int

// MapHeaders matches header cells against RequiredColumns, ignoring case,
// surrounding whitespace and unknown columns. When a name repeats, the last
// occurrence wins.
func MapHeaders(header []string) (ColumnMap, error) {
	cols := make(ColumnMap, len(RequiredColumns))
	for i, h := range header {
		name := models.Normalize(h)
		for _, req := range RequiredColumns {
			if name == req {
				cols[name] = i
				break
			}
		}
	}

	var missing []string
	for _, req := range RequiredColumns {
		if _, ok := cols[req]; !ok {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}
	return cols, nil
}

// Cell returns the value of column name in row, or "" when the row is too
// short to hold it.
func (m ColumnMap) Cell(row []string, name string) string {
	idx, ok := m[name]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
