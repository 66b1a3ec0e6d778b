package dataset

import (
	"github.com/KirkDiggler/mercdex/internal/entities"
)

func convertMercenary(raw *rawMercenary) *entities.Mercenary {
	m := &entities.Mercenary{
		Name:          raw.Name,
		Faction:       raw.Faction,
		AttackType:    raw.AttackType,
		Subclass:      raw.Subclass,
		Description:   raw.Description,
		Summary:       raw.Summary,
		TipsAndTricks: raw.TipsAndTricks,
		LevelGrowth:   entities.GrowthTable(raw.LevelGrowth),
		RebootGrowth:  entities.GrowthTable(raw.RebootGrowth),
	}

	m.Skills[0] = entities.SkillSlot{
		Text:         raw.Skill1Text,
		Tooltip:      raw.Skill1Tooltip,
		GrowthLevel:  raw.Skill1GrowthLevel,
		GrowthReboot: raw.Skill1GrowthReboot,
	}
	m.Skills[1] = entities.SkillSlot{
		Text:         raw.Skill2Text,
		Tooltip:      raw.Skill2Tooltip,
		GrowthLevel:  raw.Skill2GrowthLevel,
		GrowthReboot: raw.Skill2GrowthReboot,
	}
	m.Skills[2] = entities.SkillSlot{
		Text:         raw.Skill3Text,
		Tooltip:      raw.Skill3Tooltip,
		GrowthLevel:  raw.Skill3GrowthLevel,
		GrowthReboot: raw.Skill3GrowthReboot,
	}
	m.Skills[3] = entities.SkillSlot{
		Text:         raw.Skill4Text,
		Tooltip:      raw.Skill4Tooltip,
		GrowthLevel:  raw.Skill4GrowthLevel,
		GrowthReboot: raw.Skill4GrowthReboot,
	}

	return m
}

func convertToRaw(m *entities.Mercenary) *rawMercenary {
	return &rawMercenary{
		Name:          m.Name,
		Faction:       m.Faction,
		AttackType:    m.AttackType,
		Subclass:      m.Subclass,
		Description:   m.Description,
		Summary:       m.Summary,
		TipsAndTricks: m.TipsAndTricks,
		LevelGrowth:   m.LevelGrowth,
		RebootGrowth:  m.RebootGrowth,

		Skill1Text:         m.Skills[0].Text,
		Skill1Tooltip:      m.Skills[0].Tooltip,
		Skill1GrowthLevel:  m.Skills[0].GrowthLevel,
		Skill1GrowthReboot: m.Skills[0].GrowthReboot,

		Skill2Text:         m.Skills[1].Text,
		Skill2Tooltip:      m.Skills[1].Tooltip,
		Skill2GrowthLevel:  m.Skills[1].GrowthLevel,
		Skill2GrowthReboot: m.Skills[1].GrowthReboot,

		Skill3Text:         m.Skills[2].Text,
		Skill3Tooltip:      m.Skills[2].Tooltip,
		Skill3GrowthLevel:  m.Skills[2].GrowthLevel,
		Skill3GrowthReboot: m.Skills[2].GrowthReboot,

		Skill4Text:         m.Skills[3].Text,
		Skill4Tooltip:      m.Skills[3].Tooltip,
		Skill4GrowthLevel:  m.Skills[3].GrowthLevel,
		Skill4GrowthReboot: m.Skills[3].GrowthReboot,
	}
}
