package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/mercdex/internal/entities"
)

// Matches reports whether m satisfies every set constraint in filters.
// Comparison is exact and case-sensitive; unset keys match anything.
func Matches(m *entities.Mercenary, filters entities.FilterState) bool {
	if m == nil {
		return false
	}
	for _, key := range entities.FilterKeys {
		want := filters.Value(key)
		if want != "" && m.Attribute(key) != want {
			return false
		}
	}
	return true
}

// ApplyFilters classifies each roster member by name. Every member gets an
// entry; the roster itself is not reordered or modified.
func ApplyFilters(roster []*entities.Mercenary, filters entities.FilterState) map[string]bool {
	members := make([]*entities.Mercenary, 0, len(roster))
	for _, m := range roster {
		if m != nil {
			members = append(members, m)
		}
	}
	return Classify(members, func(m *entities.Mercenary) bool {
		return Matches(m, filters)
	})
}

// Classify records match(item) under each item's entity ID. When IDs
// repeat, the first item decides the entry.
func Classify[E core.Entity](items []E, match func(E) bool) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, item := range items {
		id := item.GetID()
		if _, seen := out[id]; seen {
			continue
		}
		out[id] = match(item)
	}
	return out
}

// MatchingNames returns the names of matching members in roster order
func MatchingNames(roster []*entities.Mercenary, filters entities.FilterState) []string {
	var names []string
	for _, m := range roster {
		if Matches(m, filters) {
			names = append(names, m.Name)
		}
	}
	return names
}
