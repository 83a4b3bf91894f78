// Package character defines the character entity, its derived-stat
// calculators, and the named mutation operations. Mutations are total:
// out-of-range numeric input is clamped, never rejected, so any sequence of
// operations on a valid character yields a valid character.
package character

import (
	"strconv"

	"github.com/jkode-CMU/dndbeyond/internal/domain/rulebook"
)

// Character is the root entity, persisted as one record per instance. The
// JSON field names match the on-disk shape used by every shipped version of
// the app; Normalize applies defaults for fields older records omit.
type Character struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Race       string `json:"race"`
	Subrace    string `json:"subrace,omitempty"`
	Class      string `json:"class"`
	Background string `json:"background"`
	Alignment  string `json:"alignment"`
	Level      int    `json:"level"`

	AbilityScores AbilityScores `json:"ability_scores"`

	HitPoints    int `json:"hit_points"`
	MaxHitPoints int `json:"max_hit_points"`
	TempHP       int `json:"temp_hp"`
	ArmorClass   int `json:"armor_class"`
	Initiative   int `json:"initiative"`

	SkillProficiencies       map[string]ProficiencyLevel `json:"skill_proficiencies"`
	SavingThrowProficiencies map[string]ProficiencyLevel `json:"saving_throw_proficiencies"`
	ArmorProficiencies       []string                    `json:"armor_proficiencies"`
	WeaponProficiencies      []string                    `json:"weapon_proficiencies"`
	ToolProficiencies        []string                    `json:"tool_proficiencies"`
	Languages                []string                    `json:"languages"`

	// SpellSlots holds per-level slot counts, index 0 = spell level 1.
	// SpellSlotsUsed is keyed by the spell level as a string and padded to
	// the declared count on read.
	SpellSlots       []int             `json:"spell_slots"`
	SpellSlotsUsed   map[string][]bool `json:"spell_slots_used"`
	Spells           []string          `json:"spells"`
	UsedAbilities    []string          `json:"used_abilities"`
	HitDiceRemaining int               `json:"hit_dice_remaining"`

	DeathSaveSuccesses []bool `json:"death_saves_success"`
	DeathSaveFailures  []bool `json:"death_saves_failure"`
	HeroicInspiration  bool   `json:"heroic_inspiration"`

	Equipment []EquipmentItem `json:"equipment"`
	Currency  Currency        `json:"currency"`

	Notes string `json:"notes"`
}

const deathSaveCount = 3

// slotKey is the SpellSlotsUsed map key for a spell level
func slotKey(level int) string {
	return strconv.Itoa(level)
}

// SlotCount resolves the declared slot count for a spell level, falling
// back to the class' level-1 slots when the record declares none.
func (c *Character) SlotCount(level int) int {
	if level >= 1 && level <= len(c.SpellSlots) {
		return c.SpellSlots[level-1]
	}
	if level == 1 {
		if class, ok := rulebook.GetClass(c.Class); ok {
			return class.Level1SlotCount()
		}
	}
	return 0
}

// HitDieSize returns the class hit die, defaulting to d8 for unknown classes
func (c *Character) HitDieSize() int {
	if class, ok := rulebook.GetClass(c.Class); ok {
		return class.HitDie
	}
	return 8
}

// ConstitutionModifier is a shorthand used by the healing operations
func (c *Character) ConstitutionModifier() int {
	return c.AbilityScores.Modifier(rulebook.AbilityConstitution)
}

// SkillModifier derives the effective modifier for a skill at read time
func (c *Character) SkillModifier(skillKey string) int {
	skill, ok := rulebook.GetSkill(skillKey)
	if !ok {
		return 0
	}
	base := c.AbilityScores.Modifier(skill.Ability)
	return EffectiveModifier(base, c.SkillProficiencies[skillKey], ProficiencyBonus(c.Level))
}

// SaveModifier derives the effective saving-throw modifier for an ability
func (c *Character) SaveModifier(ability rulebook.Ability) int {
	base := c.AbilityScores.Modifier(ability)
	return EffectiveModifier(base, c.SavingThrowProficiencies[string(ability)], ProficiencyBonus(c.Level))
}

// IsUsedAbility reports set membership in the used-abilities pool
func (c *Character) IsUsedAbility(abilityID string) bool {
	for _, id := range c.UsedAbilities {
		if id == abilityID {
			return true
		}
	}
	return false
}

// Normalize applies defaults for optional stored fields and repairs any
// self-healing invariants. It runs once after every decode, so the rest of
// the codebase never sees a partially-populated character.
func (c *Character) Normalize() {
	if c.Alignment == "" {
		c.Alignment = rulebook.DefaultAlignment
	}
	if c.Level < 1 {
		c.Level = 1
	}

	if c.SkillProficiencies == nil {
		c.SkillProficiencies = make(map[string]ProficiencyLevel)
	}
	if c.SavingThrowProficiencies == nil {
		c.SavingThrowProficiencies = make(map[string]ProficiencyLevel)
	}
	if c.SpellSlotsUsed == nil {
		c.SpellSlotsUsed = make(map[string][]bool)
	}

	// Older records stored only current HP.
	if c.MaxHitPoints < 1 {
		c.MaxHitPoints = c.HitPoints
	}
	if c.MaxHitPoints < 1 {
		c.MaxHitPoints = 1
	}
	if c.TempHP < 0 {
		c.TempHP = 0
	}
	c.HitPoints = clamp(c.HitPoints, 0, c.MaxHitPoints+c.TempHP)

	c.DeathSaveSuccesses = fixedBools(c.DeathSaveSuccesses, deathSaveCount)
	c.DeathSaveFailures = fixedBools(c.DeathSaveFailures, deathSaveCount)

	// Pad every declared slot level's used-array to its slot count.
	for level := 1; level <= len(c.SpellSlots); level++ {
		key := slotKey(level)
		if count := c.SlotCount(level); len(c.SpellSlotsUsed[key]) < count {
			c.SpellSlotsUsed[key] = padBools(c.SpellSlotsUsed[key], count)
		}
	}

	if c.HitDiceRemaining < 0 {
		c.HitDiceRemaining = 0
	}
	if c.HitDiceRemaining > c.Level {
		c.HitDiceRemaining = c.Level
	}

	c.Currency = Currency{
		Platinum: max(0, c.Currency.Platinum),
		Gold:     max(0, c.Currency.Gold),
		Silver:   max(0, c.Currency.Silver),
		Copper:   max(0, c.Currency.Copper),
	}
}

// Clone returns a deep copy, so mutations on the copy never alias the
// original's maps and slices.
func (c *Character) Clone() *Character {
	clone := *c

	clone.SkillProficiencies = copyLevelMap(c.SkillProficiencies)
	clone.SavingThrowProficiencies = copyLevelMap(c.SavingThrowProficiencies)
	clone.ArmorProficiencies = append([]string(nil), c.ArmorProficiencies...)
	clone.WeaponProficiencies = append([]string(nil), c.WeaponProficiencies...)
	clone.ToolProficiencies = append([]string(nil), c.ToolProficiencies...)
	clone.Languages = append([]string(nil), c.Languages...)
	clone.SpellSlots = append([]int(nil), c.SpellSlots...)
	clone.Spells = append([]string(nil), c.Spells...)
	clone.UsedAbilities = append([]string(nil), c.UsedAbilities...)
	clone.DeathSaveSuccesses = append([]bool(nil), c.DeathSaveSuccesses...)
	clone.DeathSaveFailures = append([]bool(nil), c.DeathSaveFailures...)
	clone.Equipment = append([]EquipmentItem(nil), c.Equipment...)

	if c.SpellSlotsUsed != nil {
		clone.SpellSlotsUsed = make(map[string][]bool, len(c.SpellSlotsUsed))
		for k, v := range c.SpellSlotsUsed {
			clone.SpellSlotsUsed[k] = append([]bool(nil), v...)
		}
	}

	return &clone
}

func copyLevelMap(in map[string]ProficiencyLevel) map[string]ProficiencyLevel {
	if in == nil {
		return nil
	}
	out := make(map[string]ProficiencyLevel, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// padBools grows a slice to size with false; longer slices pass through
func padBools(in []bool, size int) []bool {
	if len(in) >= size {
		return in
	}
	out := make([]bool, size)
	copy(out, in)
	return out
}

// fixedBools forces a slice to exactly size
func fixedBools(in []bool, size int) []bool {
	out := make([]bool, size)
	copy(out, in)
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
