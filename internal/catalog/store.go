// ABOUTME: Reading and writing the canonical cards.json data file.
// ABOUTME: Lenient record decoding for export, strict card decoding for checks.

package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/harper/catalog/internal/fileutil"
	"github.com/harper/catalog/internal/models"
)

// DefaultPath is the canonical data file location, relative to the
// repository root.
const DefaultPath = "src/data/cards.json"

var (
	ErrNotFound   = errors.New("cards file not found")
	ErrRead       = errors.New("failed to read cards file")
	ErrParse      = errors.New("failed to parse cards file")
	ErrNotArray   = errors.New("cards file must contain an array")
	ErrDirMissing = errors.New("output directory does not exist")
	ErrWrite      = errors.New("failed to write cards file")
)

// Record is one element of the data file decoded without a schema, so that
// fields of the wrong type still reach the exporter.
type Record map[string]any

func readArray(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-specified file path is expected CLI behavior
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w at %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	var top any
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if _, ok := top.([]any); !ok {
		return nil, ErrNotArray
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return elems, nil
}

// LoadRecords reads the data file as an array of loosely typed records.
func LoadRecords(path string) ([]Record, error) {
	elems, err := readArray(path)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(elems))
	for i, raw := range elems {
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil || rec == nil {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrParse, i)
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadCards reads the data file into typed cards. Any field of the wrong
// type is a parse error.
func LoadCards(path string) ([]models.Card, error) {
	elems, err := readArray(path)
	if err != nil {
		return nil, err
	}

	cards := make([]models.Card, 0, len(elems))
	for i, raw := range elems {
		var c models.Card
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrParse, i, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Encode renders cards as a two-space indented JSON array with a trailing
// newline. HTML characters are written as-is.
func Encode(w io.Writer, cards []models.Card) error {
	if cards == nil {
		cards = []models.Card{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cards); err != nil {
		return err
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Save writes cards to path. Nothing is left on disk if the write fails.
func Save(path string, cards []models.Card) error {
	if !fileutil.DirExists(path) {
		return fmt.Errorf("%w: %s", ErrDirMissing, fileutil.ParentDir(path))
	}

	err := fileutil.WriteAtomic(path, 0644, func(w io.Writer) error {
		return Encode(w, cards)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
