package convert

// MaxRows is the largest number of data rows (header excluded) the importer
// accepts.
const MaxRows = 1000

// CheckRowLimit returns the number of data rows in a sheet of total rows,
// or a *RowLimitError when it exceeds MaxRows.
func CheckRowLimit(total int) (int, error) {
	count := total - 1
	if count < 0 {
		count = 0
	}
	if count > MaxRows {
		return count, &RowLimitError{Count: count, Limit: MaxRows}
	}
	return count, nil
}
