package dataset

// rawMercenary mirrors one entry of the roster resource. Skill slots are
// spelled out per slot; the resource has no nested skill objects.
type rawMercenary struct {
	Name          string               `json:"name"`
	Faction       string               `json:"faction"`
	AttackType    string               `json:"attackType"`
	Subclass      string               `json:"subclass"`
	Description   string               `json:"description"`
	Summary       string               `json:"summary"`
	TipsAndTricks string               `json:"tips_and_tricks"`
	LevelGrowth   map[string][]float64 `json:"level_growth"`
	RebootGrowth  map[string][]float64 `json:"reboot_growth"`

	Skill1Text         string    `json:"skill_1_text"`
	Skill1Tooltip      string    `json:"skill_1_tooltip"`
	Skill1GrowthLevel  []float64 `json:"skill_1_growth_level"`
	Skill1GrowthReboot []float64 `json:"skill_1_growth_reboot"`

	Skill2Text         string    `json:"skill_2_text"`
	Skill2Tooltip      string    `json:"skill_2_tooltip"`
	Skill2GrowthLevel  []float64 `json:"skill_2_growth_level"`
	Skill2GrowthReboot []float64 `json:"skill_2_growth_reboot"`

	Skill3Text         string    `json:"skill_3_text"`
	Skill3Tooltip      string    `json:"skill_3_tooltip"`
	Skill3GrowthLevel  []float64 `json:"skill_3_growth_level"`
	Skill3GrowthReboot []float64 `json:"skill_3_growth_reboot"`

	Skill4Text         string    `json:"skill_4_text"`
	Skill4Tooltip      string    `json:"skill_4_tooltip"`
	Skill4GrowthLevel  []float64 `json:"skill_4_growth_level"`
	Skill4GrowthReboot []float64 `json:"skill_4_growth_reboot"`
}
