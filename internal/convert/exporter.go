package convert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/harper/catalog/internal/catalog"
	"github.com/harper/catalog/internal/fileutil"
	"github.com/harper/catalog/internal/sheet"
)

// DefaultExportPath is where the exporter writes when no path is given.
const DefaultExportPath = "./cards-export.xlsx"

// ExportResult summarizes a successful export.
type ExportResult struct {
	Cards int
	Path  string
}

// Exporter converts the cards data file into a spreadsheet.
type Exporter struct {
	Writer sheet.Writer
	Logger *slog.Logger
}

func NewExporter(writer sheet.Writer, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{Writer: writer, Logger: logger}
}

// Run reads the data file at inputPath and writes a workbook to outputPath.
func (ex *Exporter) Run(ctx context.Context, inputPath, outputPath string) (*ExportResult, error) {
	ex.Logger.Info("reading cards", "path", inputPath)
	records, err := catalog.LoadRecords(inputPath)
	if err != nil {
		return nil, err
	}
	ex.Logger.Info("found cards", "count", len(records))

	rows := FlattenRecords(records)

	if !fileutil.DirExists(outputPath) {
		return nil, fmt.Errorf("%w: %s", ErrOutputDirMissing, fileutil.ParentDir(outputPath))
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("operation cancelled: %w", err)
	}

	ex.Logger.Info("writing excel file", "path", outputPath, "sheet", sheet.DefaultSheet)
	if err := ex.Writer.WriteRows(outputPath, sheet.DefaultSheet, rows); err != nil {
		return nil, fmt.Errorf("%w - %v", ErrWriteSheet, err)
	}

	return &ExportResult{Cards: len(records), Path: outputPath}, nil
}
