package character

import (
	"github.com/jkode-CMU/dndbeyond/internal/dice"
	"github.com/jkode-CMU/dndbeyond/internal/domain/rulebook"
)

// DeathSaveKind selects which death-save track a toggle targets
type DeathSaveKind string

const (
	DeathSaveSuccess DeathSaveKind = "success"
	DeathSaveFailure DeathSaveKind = "failure"
)

// SetHitPoints clamps the new current HP into [0, max]. Temp HP is its own
// pool and is not touched here.
func (c *Character) SetHitPoints(newCurrent int) {
	c.HitPoints = clamp(newCurrent, 0, c.MaxHitPoints)
}

// SetMaxHitPoints clamps the new maximum to at least 1 and pulls current HP
// down with it when the ceiling drops below the current value.
func (c *Character) SetMaxHitPoints(newMax int) {
	if newMax < 1 {
		newMax = 1
	}
	c.MaxHitPoints = newMax
	if c.HitPoints > newMax {
		c.HitPoints = newMax
	}
}

// SetTempHP clamps the temporary HP pool to zero or more
func (c *Character) SetTempHP(value int) {
	if value < 0 {
		value = 0
	}
	c.TempHP = value
}

// ApplyDamage consumes temporary HP first, then current HP, never below 0.
// Returns the damage actually dealt.
func (c *Character) ApplyDamage(amount int) int {
	if amount <= 0 {
		return 0
	}

	dealt := amount
	if c.TempHP > 0 {
		if c.TempHP >= amount {
			c.TempHP -= amount
			return dealt
		}
		amount -= c.TempHP
		c.TempHP = 0
	}

	c.HitPoints = clamp(c.HitPoints-amount, 0, c.MaxHitPoints)
	return dealt
}

// Heal restores current HP up to the maximum and returns the amount healed
func (c *Character) Heal(amount int) int {
	if amount <= 0 || c.HitPoints >= c.MaxHitPoints {
		return 0
	}
	old := c.HitPoints
	c.HitPoints = clamp(c.HitPoints+amount, 0, c.MaxHitPoints)
	return c.HitPoints - old
}

// ToggleDeathSave flips the marker at index on the given track. Indexes
// outside [0,2] are a no-op. The model deliberately allows all three
// markers on both tracks at once; death and stabilization are resolved at
// the table, not here.
func (c *Character) ToggleDeathSave(kind DeathSaveKind, index int) {
	if index < 0 || index >= deathSaveCount {
		return
	}
	switch kind {
	case DeathSaveSuccess:
		c.DeathSaveSuccesses[index] = !c.DeathSaveSuccesses[index]
	case DeathSaveFailure:
		c.DeathSaveFailures[index] = !c.DeathSaveFailures[index]
	}
}

// ToggleUsedAbility toggles membership of abilityID in the used-abilities set
func (c *Character) ToggleUsedAbility(abilityID string) {
	for i, id := range c.UsedAbilities {
		if id == abilityID {
			c.UsedAbilities = append(c.UsedAbilities[:i], c.UsedAbilities[i+1:]...)
			return
		}
	}
	c.UsedAbilities = append(c.UsedAbilities, abilityID)
}

// ToggleSpellSlot flips the used marker for one slot at the given spell
// level, padding the tracking array to the declared slot count first. A
// slot index beyond the declared count is a no-op.
func (c *Character) ToggleSpellSlot(level, slotIndex int) {
	count := c.SlotCount(level)
	if count <= 0 || slotIndex < 0 {
		return
	}

	key := slotKey(level)
	if len(c.SpellSlotsUsed[key]) < count {
		if c.SpellSlotsUsed == nil {
			c.SpellSlotsUsed = make(map[string][]bool)
		}
		c.SpellSlotsUsed[key] = padBools(c.SpellSlotsUsed[key], count)
	}

	if slotIndex >= len(c.SpellSlotsUsed[key]) {
		return
	}
	c.SpellSlotsUsed[key][slotIndex] = !c.SpellSlotsUsed[key][slotIndex]
}

// ApplyLongRest resets long-rest-scoped resources: abilities and spell
// slots recover fully, HP returns to max, and the hit dice pool regains
// half the character's level (minimum one die).
func (c *Character) ApplyLongRest() {
	c.UsedAbilities = nil
	c.SpellSlotsUsed = make(map[string][]bool)
	c.HitPoints = c.MaxHitPoints

	regained := c.Level / 2
	if regained < 1 {
		regained = 1
	}
	c.HitDiceRemaining = clamp(c.HitDiceRemaining+regained, 0, c.Level)
}

// SpendHitDie consumes one hit die, rolls the class die with the supplied
// roller, and heals max(0, roll + CON modifier). A drained pool is a no-op.
// Returns the amount healed.
func (c *Character) SpendHitDie(roller dice.Roller) (int, error) {
	if c.HitDiceRemaining <= 0 {
		return 0, nil
	}

	result, err := roller.Roll(1, c.HitDieSize(), 0)
	if err != nil {
		return 0, err
	}

	c.HitDiceRemaining--

	healAmount := result.Total + c.ConstitutionModifier()
	if healAmount < 0 {
		healAmount = 0
	}
	return c.Heal(healAmount), nil
}

// SetCurrency sets one denomination, clamped to zero or more
func (c *Character) SetCurrency(field CurrencyField, value int) {
	if value < 0 {
		value = 0
	}
	switch field {
	case CurrencyPlatinum:
		c.Currency.Platinum = value
	case CurrencyGold:
		c.Currency.Gold = value
	case CurrencySilver:
		c.Currency.Silver = value
	case CurrencyCopper:
		c.Currency.Copper = value
	}
}

// AddEquipmentItem appends an item to the inventory
func (c *Character) AddEquipmentItem(item EquipmentItem) {
	c.Equipment = append(c.Equipment, item)
}

// RemoveEquipmentItem removes the item at index; a stale or out-of-range
// index is a no-op.
func (c *Character) RemoveEquipmentItem(index int) {
	if index < 0 || index >= len(c.Equipment) {
		return
	}
	c.Equipment = append(c.Equipment[:index], c.Equipment[index+1:]...)
}

// LevelUpChoice carries the HP decision for a level-up. When Roll is nil
// the class average (die/2 + 1) applies. Rolling happens at the call site;
// this operation stays deterministic.
type LevelUpChoice struct {
	Roll *int
}

// LevelUp increments the level and grows HP by the chosen amount plus the
// constitution modifier. Level only ever increases. The new hit die joins
// the pool unspent.
func (c *Character) LevelUp(choice LevelUpChoice) {
	c.Level++

	gain := 0
	if choice.Roll != nil {
		gain = *choice.Roll
	} else if class, ok := rulebook.GetClass(c.Class); ok {
		gain = class.AverageHitDieHP()
	} else {
		gain = c.HitDieSize()/2 + 1
	}
	gain += c.ConstitutionModifier()

	c.MaxHitPoints += gain
	if c.MaxHitPoints < 1 {
		c.MaxHitPoints = 1
	}
	c.HitPoints = clamp(c.HitPoints+gain, 0, c.MaxHitPoints)
	c.HitDiceRemaining = clamp(c.HitDiceRemaining+1, 0, c.Level)
}
