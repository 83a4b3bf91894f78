// Package rulebook holds the static rule tables that drive character
// creation and leveling: species, classes, backgrounds, alignments, and
// skills. Behavior differences between options live in this data, not in
// conditionals scattered through calling code.
package rulebook

// Ability identifies one of the six ability scores
type Ability string

const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Abilities lists the six abilities in display order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// IsValidAbility reports whether the key names one of the six abilities
func IsValidAbility(key Ability) bool {
	for _, a := range Abilities {
		if a == key {
			return true
		}
	}
	return false
}

// Skill is a named skill tied to an ability
type Skill struct {
	Key     string
	Name    string
	Ability Ability
}

// Skills is the standard skill list
var Skills = []Skill{
	{Key: "acrobatics", Name: "Acrobatics", Ability: AbilityDexterity},
	{Key: "animal-handling", Name: "Animal Handling", Ability: AbilityWisdom},
	{Key: "arcana", Name: "Arcana", Ability: AbilityIntelligence},
	{Key: "athletics", Name: "Athletics", Ability: AbilityStrength},
	{Key: "deception", Name: "Deception", Ability: AbilityCharisma},
	{Key: "history", Name: "History", Ability: AbilityIntelligence},
	{Key: "insight", Name: "Insight", Ability: AbilityWisdom},
	{Key: "intimidation", Name: "Intimidation", Ability: AbilityCharisma},
	{Key: "investigation", Name: "Investigation", Ability: AbilityIntelligence},
	{Key: "medicine", Name: "Medicine", Ability: AbilityWisdom},
	{Key: "nature", Name: "Nature", Ability: AbilityIntelligence},
	{Key: "perception", Name: "Perception", Ability: AbilityWisdom},
	{Key: "performance", Name: "Performance", Ability: AbilityCharisma},
	{Key: "persuasion", Name: "Persuasion", Ability: AbilityCharisma},
	{Key: "religion", Name: "Religion", Ability: AbilityIntelligence},
	{Key: "sleight-of-hand", Name: "Sleight of Hand", Ability: AbilityDexterity},
	{Key: "stealth", Name: "Stealth", Ability: AbilityDexterity},
	{Key: "survival", Name: "Survival", Ability: AbilityWisdom},
}

// GetSkill looks up a skill by key
func GetSkill(key string) (Skill, bool) {
	for _, s := range Skills {
		if s.Key == key {
			return s, true
		}
	}
	return Skill{}, false
}

// SkillKeys returns every skill key, for "choose any" skill choices
func SkillKeys() []string {
	keys := make([]string, len(Skills))
	for i, s := range Skills {
		keys[i] = s.Key
	}
	return keys
}
