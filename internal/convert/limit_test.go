package convert

import (
	"errors"
	"testing"
)

func TestCheckRowLimit(t *testing.T) {
	tests := []struct {
		total     int
		wantCount int
		wantErr   bool
	}{
		{0, 0, false},
		{1, 0, false},
		{2, 1, false},
		{MaxRows + 1, MaxRows, false},
		{MaxRows + 2, MaxRows + 1, true},
		{5000, 4999, true},
	}

	for _, tt := range tests {
		count, err := CheckRowLimit(tt.total)
		if count != tt.wantCount {
			t.Errorf("CheckRowLimit(%d) count = %d, want %d", tt.total, count, tt.wantCount)
		}
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckRowLimit(%d) err = %v, wantErr %v", tt.total, err, tt.wantErr)
		}
	}
}

func TestRowLimitErrorMessage(t *testing.T) {
	_, err := CheckRowLimit(1502)

	var rl *RowLimitError
	if !errors.As(err, &rl) {
		t.Fatalf("expected RowLimitError, got %v", err)
	}
	if rl.Count != 1501 {
		t.Errorf("count = %d", rl.Count)
	}
	if err.Error() != "file exceeds 1000 row limit (found 1501 data rows)" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrRowLimit) {
		t.Error("expected ErrRowLimit")
	}
}
