package character

// AbilityModifier derives the modifier for an ability score: floor((score-10)/2).
// Defined for any integer score.
func AbilityModifier(score int) int {
	// Go's integer division truncates toward zero; floor for negatives.
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// ProficiencyBonus derives the proficiency bonus from character level:
// floor((level-1)/4) + 2, yielding +2 at levels 1-4 up to +6 at 17-20.
func ProficiencyBonus(level int) int {
	if level < 1 {
		level = 1
	}
	return (level-1)/4 + 2
}

// EffectiveModifier combines a base ability modifier with the proficiency
// bonus scaled by the proficiency level.
func EffectiveModifier(baseModifier int, level ProficiencyLevel, proficiencyBonus int) int {
	switch level {
	case ProficiencyProficient:
		return baseModifier + proficiencyBonus
	case ProficiencyHalf:
		return baseModifier + proficiencyBonus/2
	case ProficiencyExpert:
		return baseModifier + proficiencyBonus*2
	default:
		return baseModifier
	}
}
