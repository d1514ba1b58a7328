package convert

import (
	"io"
	"log/slog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memSheet is an in-memory sheet.Reader and sheet.Writer.
type memSheet struct {
	rows    [][]string
	readErr error

	writtenPath  string
	writtenSheet string
	written      [][]string
	writeErr     error
}

func (m *memSheet) ReadRows(string) ([][]string, error) {
	return m.rows, m.readErr
}

func (m *memSheet) WriteRows(path, sheetName string, rows [][]string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writtenPath = path
	m.writtenSheet = sheetName
	m.written = rows
	return nil
}

var canonicalHeader = []string{"title", "description", "categories", "types", "visibility", "link"}
