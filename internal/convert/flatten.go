package convert

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/harper/catalog/internal/catalog"
)

// FlattenRecord renders one data file record as a row in ExportColumns
// order. List fields are joined with ", "; missing or falsy values render
// empty; hidden is "true" only for a boolean true.
func FlattenRecord(rec catalog.Record) []string {
	hidden := "false"
	if b, ok := rec[ColHidden].(bool); ok && b {
		hidden = "true"
	}

	return []string{
		scalarCell(rec[ColTitle]),
		scalarCell(rec[ColDescription]),
		listCell(rec[ColCategories]),
		listCell(rec[ColTypes]),
		scalarCell(rec[ColVisibility]),
		scalarCell(rec[ColLink]),
		hidden,
	}
}

// FlattenRecords returns the header row followed by one row per record.
func FlattenRecords(records []catalog.Record) [][]string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, append([]string(nil), ExportColumns...))
	for _, rec := range records {
		rows = append(rows, FlattenRecord(rec))
	}
	return rows
}

func listCell(v any) string {
	items, ok := v.([]any)
	if !ok {
		return scalarCell(v)
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = text(item)
	}
	return strings.Join(parts, ", ")
}

func scalarCell(v any) string {
	if falsy(v) {
		return ""
	}
	return text(v)
}

func falsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case float64:
		return t == 0
	}
	return false
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = text(item)
		}
		return strings.Join(parts, ",")
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
