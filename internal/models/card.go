// ABOUTME: Card model representing one entry of the solution catalog.
// ABOUTME: JSON field order matches the canonical cards.json layout.

package models

type Card struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Types       []string `json:"types"`
	Visibility  string   `json:"visibility"`
	Link        string   `json:"link"`
	Hidden      *bool    `json:"hidden,omitempty"`
}

// NewCard builds a card from already-trimmed field values. List fields are
// never nil so they encode as [] rather than null.
func NewCard(title, description string, categories, types []string, visibility, link string) *Card {
	if categories == nil {
		categories = []string{}
	}
	if types == nil {
		types = []string{}
	}
	return &Card{
		Title:       title,
		Description: description,
		Categories:  categories,
		Types:       types,
		Visibility:  visibility,
		Link:        link,
	}
}

// IsHidden reports whether the card is flagged hidden. Only an explicit
// true hides a card.
func (c *Card) IsHidden() bool {
	return c.Hidden != nil && *c.Hidden
}
