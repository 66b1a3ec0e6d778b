package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/mercdex/internal/entities"
)

// ResolvedSkill is a skill slot with its placeholder substituted
type ResolvedSkill struct {
	Slot    int    `json:"slot"`
	Text    string `json:"text"`
	Tooltip string `json:"tooltip,omitempty"`
}

// Placeholder returns the token skill text uses for the slot's computed value.
// Each slot recognizes only its own token; the token format is fixed.
func Placeholder(slot int) string {
	return fmt.Sprintf("{skill_%d_value}", slot)
}

// ResolveSkill resolves the 1-based slot at the given progression. ok is
// false when the slot is outside 1..4 or has no text. When the text holds
// the slot's placeholder, the first occurrence is replaced with the rounded
// sum of the slot's level and reboot growth values.
func ResolveSkill(m *entities.Mercenary, slot, reboot, level int) (ResolvedSkill, bool) {
	skill, ok := m.Skill(slot)
	if !ok || !skill.Defined() {
		return ResolvedSkill{}, false
	}

	text := skill.Text
	token := Placeholder(slot)
	if strings.Contains(text, token) {
		value := axisValue(skill.GrowthLevel, skill.GrowthReboot, reboot, level)
		text = strings.Replace(text, token, FormatRounded(value), 1)
	}

	return ResolvedSkill{
		Slot:    slot,
		Text:    text,
		Tooltip: skill.Tooltip,
	}, true
}

// ResolveSkills resolves slots 1..4 in order, skipping undefined slots
func ResolveSkills(m *entities.Mercenary, reboot, level int) []ResolvedSkill {
	var skills []ResolvedSkill
	for slot := 1; slot <= entities.SkillSlotCount; slot++ {
		if skill, ok := ResolveSkill(m, slot, reboot, level); ok {
			skills = append(skills, skill)
		}
	}
	return skills
}
