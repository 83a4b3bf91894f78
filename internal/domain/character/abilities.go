package character

import (
	"github.com/jkode-CMU/dndbeyond/internal/domain/rulebook"
)

// ProficiencyLevel states how much of the proficiency bonus applies to a
// skill or saving throw.
type ProficiencyLevel int

const (
	ProficiencyNone       ProficiencyLevel = 0
	ProficiencyProficient ProficiencyLevel = 1
	ProficiencyHalf       ProficiencyLevel = 2
	ProficiencyExpert     ProficiencyLevel = 3
)

// AbilityScores holds the six ability scores with creation bonuses baked in
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Get returns the score for an ability key
func (a AbilityScores) Get(ability rulebook.Ability) int {
	switch ability {
	case rulebook.AbilityStrength:
		return a.Strength
	case rulebook.AbilityDexterity:
		return a.Dexterity
	case rulebook.AbilityConstitution:
		return a.Constitution
	case rulebook.AbilityIntelligence:
		return a.Intelligence
	case rulebook.AbilityWisdom:
		return a.Wisdom
	case rulebook.AbilityCharisma:
		return a.Charisma
	}
	return 0
}

// Set assigns the score for an ability key
func (a *AbilityScores) Set(ability rulebook.Ability, score int) {
	switch ability {
	case rulebook.AbilityStrength:
		a.Strength = score
	case rulebook.AbilityDexterity:
		a.Dexterity = score
	case rulebook.AbilityConstitution:
		a.Constitution = score
	case rulebook.AbilityIntelligence:
		a.Intelligence = score
	case rulebook.AbilityWisdom:
		a.Wisdom = score
	case rulebook.AbilityCharisma:
		a.Charisma = score
	}
}

// Modifier returns the derived modifier for an ability
func (a AbilityScores) Modifier(ability rulebook.Ability) int {
	return AbilityModifier(a.Get(ability))
}
