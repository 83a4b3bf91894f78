package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkode-CMU/dndbeyond/internal/dice"
	"github.com/jkode-CMU/dndbeyond/internal/domain/character"
)

func newTestCharacter() *character.Character {
	c := &character.Character{
		ID:         "test-id",
		Name:       "Finnan",
		Race:       "half-elf",
		Class:      "bard",
		Background: "entertainer",
		Level:      4,
		AbilityScores: character.AbilityScores{
			Strength: 8, Dexterity: 14, Constitution: 13,
			Intelligence: 12, Wisdom: 10, Charisma: 17,
		},
		HitPoints:        20,
		MaxHitPoints:     20,
		SpellSlots:       []int{2},
		HitDiceRemaining: 4,
	}
	c.Normalize()
	return c
}

func TestSetHitPointsClamps(t *testing.T) {
	c := newTestCharacter()

	c.SetHitPoints(-5)
	assert.Equal(t, 0, c.HitPoints)

	c.SetHitPoints(999)
	assert.Equal(t, 20, c.HitPoints)

	c.SetHitPoints(7)
	assert.Equal(t, 7, c.HitPoints)
}

func TestSetMaxHitPointsPullsCurrentDown(t *testing.T) {
	c := newTestCharacter()
	c.SetHitPoints(15)

	c.SetMaxHitPoints(10)
	assert.Equal(t, 10, c.MaxHitPoints)
	assert.Equal(t, 10, c.HitPoints)

	c.SetMaxHitPoints(-3)
	assert.Equal(t, 1, c.MaxHitPoints)
	assert.Equal(t, 1, c.HitPoints)
}

func TestSetTempHPIndependentOfMax(t *testing.T) {
	c := newTestCharacter()

	c.SetTempHP(50)
	assert.Equal(t, 50, c.TempHP)
	assert.Equal(t, 20, c.HitPoints, "temp HP must not touch current")

	c.SetTempHP(-4)
	assert.Equal(t, 0, c.TempHP)
}

func TestApplyDamageConsumesTempFirst(t *testing.T) {
	c := newTestCharacter()
	c.SetTempHP(5)

	dealt := c.ApplyDamage(8)
	assert.Equal(t, 8, dealt)
	assert.Equal(t, 0, c.TempHP)
	assert.Equal(t, 17, c.HitPoints)

	c.ApplyDamage(100)
	assert.Equal(t, 0, c.HitPoints)
}

func TestToggleDeathSavePermissive(t *testing.T) {
	c := newTestCharacter()

	// All three markers may be set at once; the model never caps.
	for i := 0; i < 3; i++ {
		c.ToggleDeathSave(character.DeathSaveSuccess, i)
		c.ToggleDeathSave(character.DeathSaveFailure, i)
	}
	assert.Equal(t, []bool{true, true, true}, c.DeathSaveSuccesses)
	assert.Equal(t, []bool{true, true, true}, c.DeathSaveFailures)

	c.ToggleDeathSave(character.DeathSaveSuccess, 1)
	assert.Equal(t, []bool{true, false, true}, c.DeathSaveSuccesses)

	// Out-of-range indexes are no-ops.
	c.ToggleDeathSave(character.DeathSaveSuccess, 3)
	c.ToggleDeathSave(character.DeathSaveFailure, -1)
	assert.Equal(t, []bool{true, false, true}, c.DeathSaveSuccesses)
	assert.Equal(t, []bool{true, true, true}, c.DeathSaveFailures)
}

func TestToggleUsedAbility(t *testing.T) {
	c := newTestCharacter()

	c.ToggleUsedAbility("bardic-inspiration")
	assert.True(t, c.IsUsedAbility("bardic-inspiration"))

	c.ToggleUsedAbility("bardic-inspiration")
	assert.False(t, c.IsUsedAbility("bardic-inspiration"))
}

func TestToggleSpellSlotPadsBeforeFlipping(t *testing.T) {
	c := newTestCharacter()
	require.False(t, c.SpellSlotsUsed["1"][0])

	c.SpellSlotsUsed = map[string][]bool{}
	c.ToggleSpellSlot(1, 1)
	assert.Equal(t, []bool{false, true}, c.SpellSlotsUsed["1"])
}

func TestToggleSpellSlotFallbackFromClass(t *testing.T) {
	// No declared slots: a level-1 bard still has the class minimum of 2.
	c := newTestCharacter()
	c.SpellSlots = nil
	c.SpellSlotsUsed = map[string][]bool{}

	c.ToggleSpellSlot(1, 0)
	assert.Equal(t, []bool{true, false}, c.SpellSlotsUsed["1"])
}

func TestToggleSpellSlotOutOfRangeIsNoop(t *testing.T) {
	c := newTestCharacter()
	c.SpellSlotsUsed = map[string][]bool{}

	c.ToggleSpellSlot(1, 5)
	assert.Equal(t, []bool{false, false}, c.SpellSlotsUsed["1"], "pad but do not flip")

	c.ToggleSpellSlot(1, -1)
	assert.Equal(t, []bool{false, false}, c.SpellSlotsUsed["1"])

	c.ToggleSpellSlot(9, 0)
	assert.NotContains(t, c.SpellSlotsUsed, "9")
}

func TestApplyLongRest(t *testing.T) {
	c := newTestCharacter()
	c.UsedAbilities = []string{"x"}
	c.SpellSlotsUsed = map[string][]bool{"1": {true, true}}
	c.SetHitPoints(5)
	c.HitDiceRemaining = 0

	c.ApplyLongRest()

	assert.Empty(t, c.UsedAbilities)
	assert.Empty(t, c.SpellSlotsUsed)
	assert.Equal(t, 20, c.HitPoints)
	assert.Equal(t, 2, c.HitDiceRemaining, "level 4 restores max(1, 4/2) = 2 dice")
}

func TestApplyLongRestLevelOneRestoresAtLeastOneDie(t *testing.T) {
	c := newTestCharacter()
	c.Level = 1
	c.HitDiceRemaining = 0

	c.ApplyLongRest()
	assert.Equal(t, 1, c.HitDiceRemaining)
}

func TestSpendHitDie(t *testing.T) {
	c := newTestCharacter()
	c.SetHitPoints(5)

	roller := dice.NewMockRoller()
	roller.SetRolls([]int{6})

	healed, err := c.SpendHitDie(roller)
	require.NoError(t, err)
	assert.Equal(t, 7, healed, "roll 6 + CON modifier 1")
	assert.Equal(t, 12, c.HitPoints)
	assert.Equal(t, 3, c.HitDiceRemaining)
}

func TestSpendHitDieEmptyPoolIsNoop(t *testing.T) {
	c := newTestCharacter()
	c.HitDiceRemaining = 0
	c.SetHitPoints(5)

	roller := dice.NewMockRoller() // would error if rolled

	healed, err := c.SpendHitDie(roller)
	require.NoError(t, err)
	assert.Zero(t, healed)
	assert.Equal(t, 5, c.HitPoints)
}

func TestSpendHitDieClampsAtMax(t *testing.T) {
	c := newTestCharacter()
	c.SetHitPoints(19)

	roller := dice.NewMockRoller()
	roller.SetRolls([]int{8})

	healed, err := c.SpendHitDie(roller)
	require.NoError(t, err)
	assert.Equal(t, 1, healed)
	assert.Equal(t, 20, c.HitPoints)
}

func TestSetCurrencyClamps(t *testing.T) {
	c := newTestCharacter()

	c.SetCurrency(character.CurrencyGold, 42)
	assert.Equal(t, 42, c.Currency.Gold)

	c.SetCurrency(character.CurrencyGold, -10)
	assert.Equal(t, 0, c.Currency.Gold)

	c.SetCurrency(character.CurrencySilver, 3)
	c.SetCurrency(character.CurrencyCopper, 9)
	c.SetCurrency(character.CurrencyPlatinum, 1)
	assert.Equal(t, character.Currency{Platinum: 1, Gold: 0, Silver: 3, Copper: 9}, c.Currency)
}

func TestEquipmentAddRemove(t *testing.T) {
	c := newTestCharacter()

	c.AddEquipmentItem(character.EquipmentItem{Name: "lute"})
	c.AddEquipmentItem(character.EquipmentItem{Name: "dagger", Cost: "2 gp"})
	require.Len(t, c.Equipment, 2)

	c.RemoveEquipmentItem(0)
	require.Len(t, c.Equipment, 1)
	assert.Equal(t, "dagger", c.Equipment[0].Name)

	// Stale index after the removal above is a no-op.
	c.RemoveEquipmentItem(1)
	c.RemoveEquipmentItem(-1)
	assert.Len(t, c.Equipment, 1)
}

func TestLevelUpAverage(t *testing.T) {
	c := newTestCharacter()

	c.LevelUp(character.LevelUpChoice{})

	assert.Equal(t, 5, c.Level)
	// bard d8 average 5 + CON 1 = 6
	assert.Equal(t, 26, c.MaxHitPoints)
	assert.Equal(t, 26, c.HitPoints)
	assert.Equal(t, 5, c.HitDiceRemaining, "new hit die joins the pool")
}

func TestLevelUpRolled(t *testing.T) {
	c := newTestCharacter()
	roll := 8

	c.LevelUp(character.LevelUpChoice{Roll: &roll})

	assert.Equal(t, 5, c.Level)
	assert.Equal(t, 29, c.MaxHitPoints, "roll 8 + CON 1")
}

func TestLevelUpIsMonotonic(t *testing.T) {
	c := newTestCharacter()
	for i := 0; i < 5; i++ {
		c.LevelUp(character.LevelUpChoice{})
	}
	assert.Equal(t, 9, c.Level)
}
