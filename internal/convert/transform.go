package convert

import (
	"strings"

	"github.com/harper/catalog/internal/models"
)

// TransformRow builds a card from a data row. Values are normalized but not
// judged; invalid values are kept for the validator to report.
func TransformRow(row []string, cols ColumnMap) *models.Card {
	get := func(name string) string {
		return strings.TrimSpace(cols.Cell(row, name))
	}

	return models.NewCard(
		get(ColTitle),
		get(ColDescription),
		models.SplitList(get(ColCategories)),
		models.SplitList(get(ColTypes)),
		strings.ToLower(get(ColVisibility)),
		get(ColLink),
	)
}

// IsBlankRow reports whether every cell of row is empty or whitespace.
func IsBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
