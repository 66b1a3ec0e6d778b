// Package roster holds the loaded mercenary roster. A Store is built once
// from decoded records and is read-only afterwards, so it can be shared
// between sessions without locking.
package roster

import (
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/mercdex/internal/entities"
	"github.com/KirkDiggler/mercdex/internal/errors"
)

// Store is an immutable, name-sorted roster
type Store struct {
	sorted   []*entities.Mercenary
	byName   map[string]*entities.Mercenary
	factions []string
	groups   map[string][]*entities.Mercenary
}

// Load validates records and builds a Store. Every record needs a name and a
// faction; all missing identity fields are reported together. Records are
// kept by pointer and must not be modified by the caller afterwards.
func Load(records []*entities.Mercenary) (*Store, error) {
	vb := errors.NewValidationBuilder()
	for i, rec := range records {
		if rec == nil {
			vb.RequiredField(fmt.Sprintf("mercenaries[%d]", i))
			continue
		}
		errors.ValidateRequired(fmt.Sprintf("mercenaries[%d].name", i), rec.Name, vb)
		errors.ValidateRequired(fmt.Sprintf("mercenaries[%d].faction", i), rec.Faction, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid roster")
	}

	sorted := make([]*entities.Mercenary, len(records))
	copy(sorted, records)
	SortByName(sorted)

	byName, duplicates := IndexByID(records)
	for _, name := range duplicates {
		slog.Warn("duplicate mercenary name in roster", "name", name)
	}

	s := &Store{
		sorted: sorted,
		byName: byName,
		groups: make(map[string][]*entities.Mercenary),
	}

	for _, rec := range sorted {
		if _, ok := s.groups[rec.Faction]; !ok {
			s.factions = append(s.factions, rec.Faction)
		}
		s.groups[rec.Faction] = append(s.groups[rec.Faction], rec)
	}
	sortStrings(s.factions)

	return s, nil
}

// SortByName orders mercs by name using locale-aware collation, so "alpha"
// sorts before "Bravo". Equal names keep their relative order.
func SortByName(mercs []*entities.Mercenary) {
	c := collate.New(language.English)
	sort.SliceStable(mercs, func(i, j int) bool {
		return c.CompareString(mercs[i].Name, mercs[j].Name) < 0
	})
}

func sortStrings(values []string) {
	c := collate.New(language.English)
	sort.SliceStable(values, func(i, j int) bool {
		return c.CompareString(values[i], values[j]) < 0
	})
}

// Len returns the number of records
func (s *Store) Len() int {
	return len(s.sorted)
}

// FindByName returns the record named name. When names repeat, the first
// loaded record wins.
func (s *Store) FindByName(name string) (*entities.Mercenary, bool) {
	m, ok := s.byName[name]
	return m, ok
}

// AllSortedByName returns every record in collation order. The slice is a
// copy; the records are shared.
func (s *Store) AllSortedByName() []*entities.Mercenary {
	out := make([]*entities.Mercenary, len(s.sorted))
	copy(out, s.sorted)
	return out
}

// GroupByFaction returns records bucketed by faction, each bucket in name order
func (s *Store) GroupByFaction() map[string][]*entities.Mercenary {
	out := make(map[string][]*entities.Mercenary, len(s.groups))
	for faction, mercs := range s.groups {
		bucket := make([]*entities.Mercenary, len(mercs))
		copy(bucket, mercs)
		out[faction] = bucket
	}
	return out
}

// Factions returns the distinct factions in collation order
func (s *Store) Factions() []string {
	out := make([]string, len(s.factions))
	copy(out, s.factions)
	return out
}
