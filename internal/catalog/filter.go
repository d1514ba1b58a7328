// ABOUTME: Read-only views over the catalog as the gallery presents them.
// ABOUTME: Hidden cards are dropped; search and facet filters narrow the rest.

package catalog

import (
	"slices"
	"strings"

	"github.com/harper/catalog/internal/models"
)

// Visible returns the cards that are not flagged hidden.
func Visible(cards []models.Card) []models.Card {
	out := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		if !c.IsHidden() {
			out = append(out, c)
		}
	}
	return out
}

// Filter selects cards by title search and facet values. Values within a
// facet are alternatives; facets combine. An empty facet matches all.
type Filter struct {
	Search     string
	Categories []string
	Types      []string
	Visibility []string
}

func normalizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if n := models.Normalize(v); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func anyIn(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, h := range have {
		if slices.Contains(want, models.Normalize(h)) {
			return true
		}
	}
	return false
}

// Match reports whether a single card passes the filter.
func (f Filter) Match(c models.Card) bool {
	term := models.Normalize(f.Search)
	if term != "" && !strings.Contains(models.Normalize(c.Title), term) {
		return false
	}
	if !anyIn(c.Categories, normalizeAll(f.Categories)) {
		return false
	}
	if !anyIn(c.Types, normalizeAll(f.Types)) {
		return false
	}
	vis := normalizeAll(f.Visibility)
	if len(vis) > 0 && !slices.Contains(vis, models.Normalize(c.Visibility)) {
		return false
	}
	return true
}

// Apply returns the matching cards in their original order.
func (f Filter) Apply(cards []models.Card) []models.Card {
	out := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}
