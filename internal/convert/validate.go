package convert

import (
	"fmt"
	"strings"

	"github.com/harper/catalog/internal/models"
)

// ValidateCard checks a card's fields against the allow-lists. It only
// reports; the card is never modified or rejected.
func ValidateCard(card *models.Card, row int) []models.Warning {
	var warnings []models.Warning

	if card.Title == "" {
		warnings = append(warnings, models.NewWarning(row, ColTitle, "", "Empty title field"))
	}

	for _, c := range card.Categories {
		if !models.IsCategory(c) {
			warnings = append(warnings, models.NewWarning(row, ColCategories, c,
				fmt.Sprintf("Invalid category '%s'. Allowed: %s", c, strings.Join(models.Categories(), ", "))))
		}
	}

	for _, ty := range card.Types {
		if !models.IsType(ty) {
			warnings = append(warnings, models.NewWarning(row, ColTypes, ty,
				fmt.Sprintf("Invalid type '%s'. Allowed: %s", ty, strings.Join(models.Types(), ", "))))
		}
	}

	if card.Visibility != "" && !models.IsVisibility(card.Visibility) {
		warnings = append(warnings, models.NewWarning(row, ColVisibility, card.Visibility,
			fmt.Sprintf("Invalid visibility '%s'. Allowed: %s", card.Visibility, strings.Join(models.Visibilities(), ", "))))
	}

	return warnings
}

func duplicateWarning(row int, title string) models.Warning {
	return models.NewWarning(row, ColTitle, title, fmt.Sprintf("Duplicate title '%s' (skipped)", title))
}
