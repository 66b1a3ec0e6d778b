package entities

import (
	"github.com/KirkDiggler/mercdex/internal/errors"
)

// FilterKey names a categorical attribute the roster can be filtered on
type FilterKey string

// Recognized filter keys
const (
	FilterKeyAttackType FilterKey = "attackType"
	FilterKeyFaction    FilterKey = "faction"
	FilterKeySubclass   FilterKey = "subclass"
)

// FilterKeys lists the recognized keys in display order
var FilterKeys = []FilterKey{
	FilterKeyAttackType,
	FilterKeyFaction,
	FilterKeySubclass,
}

// ParseFilterKey validates an internal filter key
func ParseFilterKey(raw string) (FilterKey, error) {
	for _, key := range FilterKeys {
		if string(key) == raw {
			return key, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown filter key %q", raw).WithMeta("key", raw)
}

// FilterState holds the active constraints. An empty field is unset and
// matches every mercenary. The zero value is the reset state.
type FilterState struct {
	AttackType string `json:"attack_type,omitempty"`
	Faction    string `json:"faction,omitempty"`
	Subclass   string `json:"subclass,omitempty"`
}

// Value returns the constraint for key, empty when unset or unknown
func (f FilterState) Value(key FilterKey) string {
	switch key {
	case FilterKeyAttackType:
		return f.AttackType
	case FilterKeyFaction:
		return f.Faction
	case FilterKeySubclass:
		return f.Subclass
	default:
		return ""
	}
}

// With returns a copy of f with key set to value. An empty value clears the key.
func (f FilterState) With(key FilterKey, value string) (FilterState, error) {
	switch key {
	case FilterKeyAttackType:
		f.AttackType = value
	case FilterKeyFaction:
		f.Faction = value
	case FilterKeySubclass:
		f.Subclass = value
	default:
		return FilterState{}, errors.InvalidArgumentf("unknown filter key %q", key).WithMeta("key", string(key))
	}
	return f, nil
}

// IsZero reports whether no constraint is set
func (f FilterState) IsZero() bool {
	return f == FilterState{}
}

// FilterOptions lists the selectable values for each filter key
type FilterOptions map[FilterKey][]string
