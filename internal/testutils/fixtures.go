package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/mercdex/internal/clients/dataset"
	"github.com/KirkDiggler/mercdex/internal/entities"
)

// Fixture mercenary names
const (
	NameAimee = "Aimee"
	NameKroll = "Kroll"
	NameVex   = "Vex"
)

// TestRoster returns three mercenaries, one per faction, in unsorted order
func TestRoster() []*entities.Mercenary {
	vex := &entities.Mercenary{
		Name:          NameVex,
		Faction:       "Freemen",
		AttackType:    "Melee",
		Subclass:      "Assassin",
		Description:   "Knife for hire.",
		Summary:       "Burst melee.",
		TipsAndTricks: "Open with Vanish.",
		LevelGrowth: entities.GrowthTable{
			"health": {10, 20, 30},
			"attack": {5, 6, 7},
		},
		RebootGrowth: entities.GrowthTable{
			"health": {0, 5},
		},
	}
	vex.Skills[0] = entities.SkillSlot{
		Text:         "Deals {skill_1_value} damage",
		Tooltip:      "Applies bleed",
		GrowthLevel:  []float64{4, 8},
		GrowthReboot: []float64{0, 2},
	}
	vex.Skills[1] = entities.SkillSlot{Text: "Vanish"}

	kroll := &entities.Mercenary{
		Name:       NameKroll,
		Faction:    "Syndicate",
		AttackType: "Melee",
		Subclass:   "Tank",
		LevelGrowth: entities.GrowthTable{
			"health": {50, 60},
		},
	}

	aimee := &entities.Mercenary{
		Name:       NameAimee,
		Faction:    "Peacekeeper",
		AttackType: "Ranged",
		Subclass:   "Support",
		RebootGrowth: entities.GrowthTable{
			"attack": {2, 4},
		},
	}
	aimee.Skills[3] = entities.SkillSlot{
		Text:        "Heals {skill_4_value}",
		GrowthLevel: []float64{12.5},
	}

	return []*entities.Mercenary{vex, kroll, aimee}
}

// TestFilterOptions returns the options matching TestRoster
func TestFilterOptions() entities.FilterOptions {
	return entities.FilterOptions{
		entities.FilterKeyAttackType: {"Melee", "Ranged"},
		entities.FilterKeyFaction:    {"Peacekeeper", "Freemen", "Syndicate"},
		entities.FilterKeySubclass:   {"Assassin", "Support", "Tank"},
	}
}

// WriteDataset writes TestRoster and TestFilterOptions as resource files
// into a temporary directory and returns it
func WriteDataset(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	roster, err := os.Create(filepath.Join(dir, "mercs.json"))
	require.NoError(t, err)
	defer func() { _ = roster.Close() }()
	require.NoError(t, dataset.EncodeRoster(roster, TestRoster()))

	filters, err := os.Create(filepath.Join(dir, "filters.json"))
	require.NoError(t, err)
	defer func() { _ = filters.Close() }()
	require.NoError(t, dataset.EncodeFilterOptions(filters, TestFilterOptions()))

	return dir
}
