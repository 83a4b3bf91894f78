package rulebook

// Subrace is a species variant with its own ability bonus
type Subrace struct {
	Key            string          `json:"key"`
	Name           string          `json:"name"`
	AbilityBonuses map[Ability]int `json:"ability_bonuses"`
}

// Race describes a species' creation-time grants. Fixed bonuses apply
// unconditionally; the choice counts describe selections the player must
// resolve before the species stage validates.
type Race struct {
	Key            string          `json:"key"`
	Name           string          `json:"name"`
	Speed          int             `json:"speed"`
	AbilityBonuses map[Ability]int `json:"ability_bonuses"`
	Languages      []string        `json:"languages"`
	Subraces       []Subrace       `json:"subraces,omitempty"`

	// Player-resolved choices. AbilityChoiceCount grants +1 each to that
	// many distinct abilities outside the fixed bonuses.
	AbilityChoiceCount  int      `json:"ability_choice_count,omitempty"`
	SkillChoiceCount    int      `json:"skill_choice_count,omitempty"`
	LanguageChoiceCount int      `json:"language_choice_count,omitempty"`
	SkillOptions        []string `json:"skill_options,omitempty"`
}

// HasSubraces reports whether the species requires a subrace selection
func (r *Race) HasSubraces() bool {
	return len(r.Subraces) > 0
}

// GetSubrace looks up a subrace by key
func (r *Race) GetSubrace(key string) (Subrace, bool) {
	for _, sr := range r.Subraces {
		if sr.Key == key {
			return sr, true
		}
	}
	return Subrace{}, false
}

var races = []*Race{
	{
		Key:            "human",
		Name:           "Human",
		Speed:          30,
		AbilityBonuses: map[Ability]int{AbilityStrength: 1, AbilityDexterity: 1, AbilityConstitution: 1, AbilityIntelligence: 1, AbilityWisdom: 1, AbilityCharisma: 1},
		Languages:      []string{"Common"},
		LanguageChoiceCount: 1,
	},
	{
		Key:            "elf",
		Name:           "Elf",
		Speed:          30,
		AbilityBonuses: map[Ability]int{AbilityDexterity: 2},
		Languages:      []string{"Common", "Elvish"},
		Subraces: []Subrace{
			{Key: "high-elf", Name: "High Elf", AbilityBonuses: map[Ability]int{AbilityIntelligence: 1}},
			{Key: "wood-elf", Name: "Wood Elf", AbilityBonuses: map[Ability]int{AbilityWisdom: 1}},
		},
	},
	{
		Key:            "dwarf",
		Name:           "Dwarf",
		Speed:          25,
		AbilityBonuses: map[Ability]int{AbilityConstitution: 2},
		Languages:      []string{"Common", "Dwarvish"},
		Subraces: []Subrace{
			{Key: "hill-dwarf", Name: "Hill Dwarf", AbilityBonuses: map[Ability]int{AbilityWisdom: 1}},
			{Key: "mountain-dwarf", Name: "Mountain Dwarf", AbilityBonuses: map[Ability]int{AbilityStrength: 2}},
		},
	},
	{
		Key:            "halfling",
		Name:           "Halfling",
		Speed:          25,
		AbilityBonuses: map[Ability]int{AbilityDexterity: 2},
		Languages:      []string{"Common", "Halfling"},
		Subraces: []Subrace{
			{Key: "lightfoot", Name: "Lightfoot", AbilityBonuses: map[Ability]int{AbilityCharisma: 1}},
			{Key: "stout", Name: "Stout", AbilityBonuses: map[Ability]int{AbilityConstitution: 1}},
		},
	},
	{
		// Half-elves pick two +1 bonuses (distinct, and not Charisma),
		// two skills, and one extra language.
		Key:                 "half-elf",
		Name:                "Half-Elf",
		Speed:               30,
		AbilityBonuses:      map[Ability]int{AbilityCharisma: 2},
		Languages:           []string{"Common", "Elvish"},
		AbilityChoiceCount:  2,
		SkillChoiceCount:    2,
		LanguageChoiceCount: 1,
	},
	{
		Key:            "half-orc",
		Name:           "Half-Orc",
		Speed:          30,
		AbilityBonuses: map[Ability]int{AbilityStrength: 2, AbilityConstitution: 1},
		Languages:      []string{"Common", "Orc"},
	},
	{
		Key:            "gnome",
		Name:           "Gnome",
		Speed:          25,
		AbilityBonuses: map[Ability]int{AbilityIntelligence: 2},
		Languages:      []string{"Common", "Gnomish"},
	},
	{
		Key:            "tiefling",
		Name:           "Tiefling",
		Speed:          30,
		AbilityBonuses: map[Ability]int{AbilityCharisma: 2, AbilityIntelligence: 1},
		Languages:      []string{"Common", "Infernal"},
	},
	{
		Key:            "dragonborn",
		Name:           "Dragonborn",
		Speed:          30,
		AbilityBonuses: map[Ability]int{AbilityStrength: 2, AbilityCharisma: 1},
		Languages:      []string{"Common", "Draconic"},
	},
}

// Races returns every supported species
func Races() []*Race {
	return races
}

// GetRace looks up a species by key
func GetRace(key string) (*Race, bool) {
	for _, r := range races {
		if r.Key == key {
			return r, true
		}
	}
	return nil, false
}

// BonusLanguages lists languages offered for species language choices
var BonusLanguages = []string{
	"Dwarvish", "Elvish", "Giant", "Gnomish", "Goblin", "Halfling",
	"Orc", "Abyssal", "Celestial", "Draconic", "Deep Speech", "Infernal",
	"Primordial", "Sylvan", "Undercommon",
}
