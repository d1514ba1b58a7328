package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/harper/catalog/internal/catalog"
	"github.com/harper/catalog/internal/sheet"
)

func TestFlattenRecord(t *testing.T) {
	tests := []struct {
		name string
		rec  catalog.Record
		want []string
	}{
		{
			name: "full record",
			rec: catalog.Record{
				"title": "A", "description": "d",
				"categories": []any{"data", "analytics"}, "types": []any{"code"},
				"visibility": "public", "link": "http://x", "hidden": true,
			},
			want: []string{"A", "d", "data, analytics", "code", "public", "http://x", "true"},
		},
		{
			name: "missing fields",
			rec:  catalog.Record{},
			want: []string{"", "", "", "", "", "", "false"},
		},
		{
			name: "string lists and truthy hidden",
			rec:  catalog.Record{"categories": "data, ai-agent", "hidden": "true"},
			want: []string{"", "", "data, ai-agent", "", "", "", "false"},
		},
		{
			name: "falsy scalars",
			rec:  catalog.Record{"title": false, "description": float64(0), "link": nil},
			want: []string{"", "", "", "", "", "", "false"},
		},
		{
			name: "numbers render plainly",
			rec:  catalog.Record{"title": float64(42), "description": 1.5},
			want: []string{"42", "1.5", "", "", "", "", "false"},
		},
		{
			name: "empty list",
			rec:  catalog.Record{"types": []any{}},
			want: []string{"", "", "", "", "", "", "false"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlattenRecord(tt.rec); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func writeCards(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "cards.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExporterEmptyArray(t *testing.T) {
	dir := t.TempDir()
	input := writeCards(t, dir, "[]")
	mem := &memSheet{}

	res, err := NewExporter(mem, discardLogger()).Run(context.Background(), input, filepath.Join(dir, "out.xlsx"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.Cards != 0 {
		t.Errorf("cards = %d", res.Cards)
	}
	if mem.writtenSheet != "Cards" {
		t.Errorf("sheet = %q", mem.writtenSheet)
	}
	if !reflect.DeepEqual(mem.written, [][]string{ExportColumns}) {
		t.Errorf("expected header only, got %v", mem.written)
	}
}

func TestExporterFatalErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		output  string
		want    error
	}{
		{"not an array", `{"title":"A"}`, filepath.Join(dir, "out.xlsx"), catalog.ErrNotArray},
		{"unparsable", `[`, filepath.Join(dir, "out.xlsx"), catalog.ErrParse},
		{"missing output dir", `[]`, filepath.Join(dir, "nope", "out.xlsx"), ErrOutputDirMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := &memSheet{}
			input := writeCards(t, t.TempDir(), tt.content)

			_, err := NewExporter(mem, discardLogger()).Run(context.Background(), input, tt.output)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if mem.written != nil {
				t.Error("expected nothing to be written")
			}
		})
	}
}

func TestExporterMissingInput(t *testing.T) {
	_, err := NewExporter(&memSheet{}, discardLogger()).Run(context.Background(), filepath.Join(t.TempDir(), "cards.json"), "out.xlsx")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestExporterWriteFailure(t *testing.T) {
	dir := t.TempDir()
	input := writeCards(t, dir, "[]")
	mem := &memSheet{writeErr: errors.New("disk full")}

	_, err := NewExporter(mem, discardLogger()).Run(context.Background(), input, filepath.Join(dir, "out.xlsx"))
	if !errors.Is(err, ErrWriteSheet) {
		t.Errorf("expected ErrWriteSheet, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	xl := sheet.NewExcel()

	source := [][]string{
		canonicalHeader,
		{"GPT-RAG", "RAG framework", "ai-application, ai-agent", "code, design guidance", "public", "https://github.com/Azure/gpt-rag"},
		{"Migration Guide", "Cloud adoption", "data", "migration guidance, blog", "private", "https://example.com/migration"},
	}
	input := filepath.Join(dir, "in.xlsx")
	if err := xl.WriteRows(input, sheet.DefaultSheet, source); err != nil {
		t.Fatal(err)
	}

	jsonPath := filepath.Join(dir, "cards.json")
	imported, err := NewImporter(xl, discardLogger()).Run(context.Background(), input, jsonPath)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(imported.Warnings) != 0 {
		t.Fatalf("unexpected warnings %v", imported.Warnings)
	}

	exported := filepath.Join(dir, "out.xlsx")
	if _, err := NewExporter(xl, discardLogger()).Run(context.Background(), jsonPath, exported); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	rows, err := xl.ReadRows(exported)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rows[0], ExportColumns) {
		t.Errorf("header = %v", rows[0])
	}
	for i, src := range source[1:] {
		want := append(append([]string(nil), src...), "false")
		if !reflect.DeepEqual(rows[i+1], want) {
			t.Errorf("row %d = %q, want %q", i+1, rows[i+1], want)
		}
	}

	// Importing the export again yields the same cards.
	again, err := NewImporter(xl, discardLogger()).Convert(context.Background(), rows)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(again.Cards, imported.Cards) {
		t.Errorf("round trip mismatch:\n%+v\n%+v", again.Cards, imported.Cards)
	}
}
