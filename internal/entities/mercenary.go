// Package entities contains the mercenary roster domain types
package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// SkillSlotCount is the number of skill slots a mercenary can define
const SkillSlotCount = 4

// EntityTypeMercenary is the rpg-toolkit entity type for roster members
const EntityTypeMercenary = "mercenary"

// GrowthTable maps a stat name to its per-index contribution on one progression axis
type GrowthTable map[string][]float64

// SkillSlot is one optional skill definition. A slot with empty Text is absent.
type SkillSlot struct {
	Text         string    `json:"text,omitempty"`
	Tooltip      string    `json:"tooltip,omitempty"`
	GrowthLevel  []float64 `json:"growth_level,omitempty"`
	GrowthReboot []float64 `json:"growth_reboot,omitempty"`
}

// Defined reports whether the slot has skill text
func (s SkillSlot) Defined() bool {
	return s.Text != ""
}

// Mercenary is a roster member. Records are never modified after load.
type Mercenary struct {
	Name          string                    `json:"name"`
	Faction       string                    `json:"faction"`
	AttackType    string                    `json:"attack_type"`
	Subclass      string                    `json:"subclass"`
	Description   string                    `json:"description,omitempty"`
	Summary       string                    `json:"summary,omitempty"`
	TipsAndTricks string                    `json:"tips_and_tricks,omitempty"`
	LevelGrowth   GrowthTable               `json:"level_growth,omitempty"`
	RebootGrowth  GrowthTable               `json:"reboot_growth,omitempty"`
	Skills        [SkillSlotCount]SkillSlot `json:"skills"`
}

// GetID returns the mercenary name, which identifies it within a roster
func (m *Mercenary) GetID() string {
	return m.Name
}

// GetType returns the entity type for rpg-toolkit
func (m *Mercenary) GetType() string {
	return EntityTypeMercenary
}

// Skill returns the 1-based skill slot. ok is false for slots outside 1..4.
func (m *Mercenary) Skill(slot int) (SkillSlot, bool) {
	if m == nil || slot < 1 || slot > SkillSlotCount {
		return SkillSlot{}, false
	}
	return m.Skills[slot-1], true
}

// Attribute returns the categorical attribute a filter key constrains
func (m *Mercenary) Attribute(key FilterKey) string {
	switch key {
	case FilterKeyAttackType:
		return m.AttackType
	case FilterKeyFaction:
		return m.Faction
	case FilterKeySubclass:
		return m.Subclass
	default:
		return ""
	}
}

var _ core.Entity = (*Mercenary)(nil)
