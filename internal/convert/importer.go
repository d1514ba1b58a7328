package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/harper/catalog/internal/catalog"
	"github.com/harper/catalog/internal/models"
	"github.com/harper/catalog/internal/sheet"
)

// ContextCheckInterval is how often (in rows) the import loop checks for
// cancellation.
var ContextCheckInterval = 100

// ImportResult summarizes a successful import.
type ImportResult struct {
	Cards      []models.Card
	Warnings   []models.Warning
	Duplicates int
	DataRows   int
	// Empty is set when the sheet had no data rows at all.
	Empty bool
}

// Importer converts a spreadsheet into the cards data file.
type Importer struct {
	Reader sheet.Reader
	Logger *slog.Logger
}

func NewImporter(reader sheet.Reader, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{Reader: reader, Logger: logger}
}

// ValidateInputFile checks that path exists and names an .xlsx file.
func ValidateInputFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w at %s", ErrInputNotFound, path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return ErrNotXLSX
	}
	return nil
}

// Run reads inputPath, converts it and writes the cards to outputPath. On
// any error nothing is written.
func (im *Importer) Run(ctx context.Context, inputPath, outputPath string) (*ImportResult, error) {
	if err := ValidateInputFile(inputPath); err != nil {
		return nil, err
	}

	im.Logger.Info("reading excel file", "path", inputPath)
	rows, err := im.Reader.ReadRows(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w - %v", ErrReadSpreadsheet, err)
	}

	res, err := im.Convert(ctx, rows)
	if err != nil {
		return nil, err
	}

	if err := catalog.Save(outputPath, res.Cards); err != nil {
		return nil, err
	}
	im.Logger.Info("wrote cards", "path", outputPath, "cards", len(res.Cards))

	return res, nil
}

// Convert applies the import policy to rows already read from a sheet.
// Row 0 is the header.
func (im *Importer) Convert(ctx context.Context, rows [][]string) (*ImportResult, error) {
	res := &ImportResult{Cards: []models.Card{}}

	if len(rows) == 0 {
		res.Empty = true
		return res, nil
	}

	count, err := CheckRowLimit(len(rows))
	if err != nil {
		return nil, err
	}
	res.DataRows = count
	im.Logger.Info("found data rows", "count", count)

	if count == 0 {
		res.Empty = true
		return res, nil
	}

	cols, err := MapHeaders(rows[0])
	if err != nil {
		return nil, err
	}

	dedup := NewDeduplicator()
	for i := 1; i < len(rows); i++ {
		rowNum := i + 1

		if i%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("operation cancelled at row %d: %w", rowNum, err)
			}
		}

		row := rows[i]
		if IsBlankRow(row) {
			continue
		}

		card := TransformRow(row, cols)

		if dedup.Seen(card.Title) {
			res.Warnings = append(res.Warnings, duplicateWarning(rowNum, card.Title))
			res.Duplicates++
			im.Logger.Debug("skipped duplicate title", "row", rowNum, "title", card.Title)
			continue
		}

		res.Warnings = append(res.Warnings, ValidateCard(card, rowNum)...)
		res.Cards = append(res.Cards, *card)
	}

	return res, nil
}
