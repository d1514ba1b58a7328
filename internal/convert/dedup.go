package convert

import "github.com/harper/catalog/internal/models"

// Deduplicator remembers the normalized titles seen so far in a run.
// Empty titles are never remembered, so they never collide.
type Deduplicator struct {
	seen map[string]struct{}
}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{seen: make(map[string]struct{})}
}

// Seen reports whether title repeats an earlier one and records it if not.
func (d *Deduplicator) Seen(title string) bool {
	key := models.NormalizeTitle(title)
	if key == "" {
		return false
	}
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}
