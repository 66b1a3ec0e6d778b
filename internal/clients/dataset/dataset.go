// Package dataset decodes the two resources a roster is authored in: the
// roster resource (a JSON array of mercenaries) and the filter-option
// resource (a JSON object from attribute name to selectable values).
package dataset

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/KirkDiggler/mercdex/internal/entities"
	"github.com/KirkDiggler/mercdex/internal/errors"
)

// FilterResourceKeys maps the filter-option resource's attribute names to
// the filter keys they populate. Names outside this table are rejected.
var FilterResourceKeys = map[string]entities.FilterKey{
	"AttackType": entities.FilterKeyAttackType,
	"Faction":    entities.FilterKeyFaction,
	"Subclass":   entities.FilterKeySubclass,
}

// DecodeRoster reads the roster resource. Optional fields that are absent or
// null decode to their zero values. Identity fields are checked later by
// roster.Load.
func DecodeRoster(r io.Reader) ([]*entities.Mercenary, error) {
	var raws []*rawMercenary
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed roster resource")
	}

	mercs := make([]*entities.Mercenary, 0, len(raws))
	for i, raw := range raws {
		if raw == nil {
			return nil, errors.InvalidArgumentf("roster entry %d is null", i).WithMeta("index", i)
		}
		mercs = append(mercs, convertMercenary(raw))
	}

	return mercs, nil
}

// EncodeRoster writes mercs in the roster resource format
func EncodeRoster(w io.Writer, mercs []*entities.Mercenary) error {
	raws := make([]*rawMercenary, 0, len(mercs))
	for _, m := range mercs {
		if m == nil {
			continue
		}
		raws = append(raws, convertToRaw(m))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(raws); err != nil {
		return errors.Wrap(err, "failed to encode roster resource")
	}
	return nil
}

// DecodeFilterOptions reads the filter-option resource and translates its
// attribute names through FilterResourceKeys.
func DecodeFilterOptions(r io.Reader) (entities.FilterOptions, error) {
	var raw map[string][]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed filter-option resource")
	}

	var unknown []string
	opts := make(entities.FilterOptions, len(raw))
	for name, values := range raw {
		key, ok := FilterResourceKeys[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		opts[key] = values
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, errors.InvalidArgumentf("unknown filter attributes: %v", unknown).
			WithMeta("attributes", unknown)
	}

	return opts, nil
}

// EncodeFilterOptions writes opts in the filter-option resource format
func EncodeFilterOptions(w io.Writer, opts entities.FilterOptions) error {
	raw := make(map[string][]string, len(opts))
	for name, key := range FilterResourceKeys {
		if values, ok := opts[key]; ok {
			raw[name] = values
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(raw); err != nil {
		return errors.Wrap(err, "failed to encode filter-option resource")
	}
	return nil
}
