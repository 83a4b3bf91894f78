package rulebook

// ToolChoice is a pick-one tool selection a background may grant
type ToolChoice struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// StartingCurrency is the coin a background grants at creation
type StartingCurrency struct {
	Gold int `json:"gold"`
}

// Background describes a background's creation-time grants
type Background struct {
	Key  string `json:"key"`
	Name string `json:"name"`

	SkillProficiencies []string `json:"skill_proficiencies"`
	ToolProficiencies  []string `json:"tool_proficiencies"`

	// ToolChoice, when set, must be resolved during creation
	ToolChoice *ToolChoice `json:"tool_choice,omitempty"`

	LanguageChoiceCount int `json:"language_choice_count,omitempty"`

	Equipment []string         `json:"equipment"`
	Currency  StartingCurrency `json:"currency"`
}

var gamingSets = []string{"dice-set", "dragonchess-set", "playing-card-set", "three-dragon-ante-set"}

var backgrounds = []*Background{
	{
		Key:                "entertainer",
		Name:               "Entertainer",
		SkillProficiencies: []string{"acrobatics", "performance"},
		ToolProficiencies:  []string{"disguise-kit"},
		ToolChoice: &ToolChoice{
			Name:    "instrument",
			Options: instruments,
		},
		Equipment: []string{"costume", "favor-of-an-admirer"},
		Currency:  StartingCurrency{Gold: 15},
	},
	{
		// Criminals pick one gaming-set proficiency.
		Key:                "criminal",
		Name:               "Criminal",
		SkillProficiencies: []string{"deception", "stealth"},
		ToolProficiencies:  []string{"thieves-tools"},
		ToolChoice: &ToolChoice{
			Name:    "gaming-set",
			Options: gamingSets,
		},
		Equipment: []string{"crowbar", "dark-common-clothes"},
		Currency:  StartingCurrency{Gold: 15},
	},
	{
		Key:                 "acolyte",
		Name:                "Acolyte",
		SkillProficiencies:  []string{"insight", "religion"},
		LanguageChoiceCount: 2,
		Equipment:           []string{"holy-symbol", "prayer-book", "vestments", "common-clothes"},
		Currency:            StartingCurrency{Gold: 15},
	},
	{
		Key:                "soldier",
		Name:               "Soldier",
		SkillProficiencies: []string{"athletics", "intimidation"},
		ToolProficiencies:  []string{"land-vehicles"},
		ToolChoice: &ToolChoice{
			Name:    "gaming-set",
			Options: gamingSets,
		},
		Equipment: []string{"insignia-of-rank", "trophy", "deck-of-cards", "common-clothes"},
		Currency:  StartingCurrency{Gold: 10},
	},
	{
		Key:                 "sage",
		Name:                "Sage",
		SkillProficiencies:  []string{"arcana", "history"},
		LanguageChoiceCount: 2,
		Equipment:           []string{"bottle-of-ink", "quill", "small-knife", "letter", "common-clothes"},
		Currency:            StartingCurrency{Gold: 10},
	},
}

// Backgrounds returns every supported background
func Backgrounds() []*Background {
	return backgrounds
}

// GetBackground looks up a background by key
func GetBackground(key string) (*Background, bool) {
	for _, b := range backgrounds {
		if b.Key == key {
			return b, true
		}
	}
	return nil, false
}
