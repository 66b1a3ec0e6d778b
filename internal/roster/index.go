package roster

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// IndexByID keys items by their entity ID. The first item with a given ID
// wins; later IDs that repeat are returned in duplicates, once per repeat.
// Items must be non-nil.
func IndexByID[E core.Entity](items []E) (index map[string]E, duplicates []string) {
	index = make(map[string]E, len(items))
	for _, item := range items {
		id := item.GetID()
		if _, seen := index[id]; seen {
			duplicates = append(duplicates, id)
			continue
		}
		index[id] = item
	}
	return index, duplicates
}
