package engine

import (
	"sort"

	"github.com/KirkDiggler/mercdex/internal/entities"
)

// Stats maps a stat name to its derived value
type Stats map[string]float64

// Names returns the stat names in sorted order
func (s Stats) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CalculateStats derives every stat named in either growth table as
// levelGrowth[stat][level-1] + rebootGrowth[stat][reboot]. A table that lacks
// the stat, or an index past the populated range, contributes 0.
func CalculateStats(m *entities.Mercenary, reboot, level int) Stats {
	stats := make(Stats)
	if m == nil {
		return stats
	}

	for name := range m.LevelGrowth {
		stats[name] = 0
	}
	for name := range m.RebootGrowth {
		stats[name] = 0
	}

	for name := range stats {
		stats[name] = axisValue(m.LevelGrowth[name], m.RebootGrowth[name], reboot, level)
	}

	return stats
}

// StatNames returns the sorted union of stat names across mercs
func StatNames(mercs []*entities.Mercenary) []string {
	seen := make(map[string]struct{})
	for _, m := range mercs {
		if m == nil {
			continue
		}
		for name := range m.LevelGrowth {
			seen[name] = struct{}{}
		}
		for name := range m.RebootGrowth {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
