// ABOUTME: Tests for loading and saving the cards data file.
// ABOUTME: Covers fatal decode errors, lenient records and output layout.

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harper/catalog/internal/models"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadRecordsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"invalid json", `[{"title":`, ErrParse},
		{"object top level", `{"title":"A"}`, ErrNotArray},
		{"null top level", `null`, ErrNotArray},
		{"non-object element", `[{"title":"A"}, 5]`, ErrParse},
		{"null element", `[null]`, ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRecords(writeFile(t, tt.content))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadRecordsMissingFile(t *testing.T) {
	_, err := LoadRecords(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadRecordsKeepsLooseFields(t *testing.T) {
	path := writeFile(t, `[{"title":"A","categories":"data","hidden":"yes","extra":1}]`)

	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0]["categories"] != "data" {
		t.Errorf("expected string categories to survive, got %v", records[0]["categories"])
	}
	if records[0]["hidden"] != "yes" {
		t.Errorf("expected raw hidden value, got %v", records[0]["hidden"])
	}
}

func TestLoadCards(t *testing.T) {
	path := writeFile(t, `[
  {"title":"A","description":"d","categories":["data"],"types":["code"],"visibility":"public","link":"http://x","hidden":true},
  {"title":"B","description":"","categories":[],"types":[],"visibility":"","link":""}
]`)

	cards, err := LoadCards(path)
	if err != nil {
		t.Fatalf("LoadCards failed: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if !cards[0].IsHidden() || cards[1].IsHidden() {
		t.Error("unexpected hidden flags")
	}
}

func TestLoadCardsWrongFieldType(t *testing.T) {
	_, err := LoadCards(writeFile(t, `[{"title":"A","categories":"data"}]`))
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestSaveLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	cards := []models.Card{
		*models.NewCard("A & B", "<b>d</b>", []string{"data"}, nil, "public", "http://x?a=1&b=2"),
	}

	if err := Save(path, cards); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := `[
  {
    "title": "A & B",
    "description": "<b>d</b>",
    "categories": [
      "data"
    ],
    "types": [],
    "visibility": "public",
    "link": "http://x?a=1&b=2"
  }
]
`
	if string(data) != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", data, want)
	}
}

func TestSaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")

	if err := Save(path, nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "[]\n" {
		t.Errorf("expected empty array, got %q", data)
	}
}

func TestSaveMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "cards.json")

	err := Save(path, nil)
	if !errors.Is(err, ErrDirMissing) {
		t.Errorf("expected ErrDirMissing, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("expected no output file")
	}
}
