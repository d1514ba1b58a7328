package convert

import (
	"fmt"

	"github.com/harper/catalog/internal/models"
)

// Check validates cards already stored in the data file. Row numbers are
// 1-based positions in the array. Repeated titles are reported but, unlike
// an import, nothing is dropped.
func Check(cards []models.Card) []models.Warning {
	var warnings []models.Warning
	dedup := NewDeduplicator()

	for i := range cards {
		row := i + 1
		card := &cards[i]
		if dedup.Seen(card.Title) {
			warnings = append(warnings, models.NewWarning(row, ColTitle, card.Title,
				fmt.Sprintf("Duplicate title '%s'", card.Title)))
		}
		warnings = append(warnings, ValidateCard(card, row)...)
	}

	return warnings
}
