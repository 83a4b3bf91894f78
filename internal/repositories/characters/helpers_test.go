package characters

import (
	"github.com/jkode-CMU/dndbeyond/internal/domain/character"
	"github.com/jkode-CMU/dndbeyond/internal/domain/rulebook"
)

func testCharacter(id, name string) *character.Character {
	char := &character.Character{
		ID:         id,
		Name:       name,
		Race:       "half-elf",
		Class:      "bard",
		Background: "entertainer",
		Alignment:  "Chaotic Good",
		Level:      3,
		AbilityScores: character.AbilityScores{
			Strength:     8,
			Dexterity:    14,
			Constitution: 13,
			Intelligence: 12,
			Wisdom:       10,
			Charisma:     16,
		},
		HitPoints:    18,
		MaxHitPoints: 18,
		ArmorClass:   13,
		Initiative:   2,
		SkillProficiencies: map[string]character.ProficiencyLevel{
			"performance": character.ProficiencyExpert,
			"persuasion":  character.ProficiencyProficient,
		},
		SavingThrowProficiencies: map[string]character.ProficiencyLevel{
			string(rulebook.AbilityDexterity): character.ProficiencyProficient,
			string(rulebook.AbilityCharisma):  character.ProficiencyProficient,
		},
		Languages: []string{"Common", "Elvish"},
		SpellSlots:               []int{2},
		HitDiceRemaining:         3,
		Equipment: []character.EquipmentItem{
			{Name: "Leather Armor"},
			{Name: "Rapier", Description: "Finesse", Cost: "25 gp"},
		},
		Currency: character.Currency{Gold: 15},
		Notes:    "Ran away from the circus.",
	}
	char.Normalize()
	return char
}
