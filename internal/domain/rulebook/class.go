package rulebook

// EquipmentChoice is a pick-one-of selection of starting equipment
type EquipmentChoice struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// Spellcasting holds a class' creation-time casting constants
type Spellcasting struct {
	Ability Ability `json:"ability"`

	// Known-spell counts the player must fill exactly during creation
	CantripsKnown int `json:"cantrips_known"`
	SpellsKnown   int `json:"spells_known"`

	// Level1Slots is the slot count at character level 1. It doubles as
	// the fallback slot count when a stored record declares no slots.
	Level1Slots int `json:"level_1_slots"`
}

// Class describes a class' creation-time grants and leveling constants
type Class struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	HitDie         int      `json:"hit_die"`
	PrimaryAbility Ability  `json:"primary_ability"`
	SavingThrows   []Ability `json:"saving_throws"`

	ArmorProficiencies  []string `json:"armor_proficiencies"`
	WeaponProficiencies []string `json:"weapon_proficiencies"`

	// Skill and tool picks, filled to the exact count during creation
	SkillChoiceCount int      `json:"skill_choice_count"`
	SkillOptions     []string `json:"skill_options"`
	ToolChoiceCount  int      `json:"tool_choice_count,omitempty"`
	ToolOptions      []string `json:"tool_options,omitempty"`

	StartingEquipment []string          `json:"starting_equipment"`
	EquipmentChoices  []EquipmentChoice `json:"equipment_choices,omitempty"`

	Spellcasting *Spellcasting `json:"spellcasting,omitempty"`

	// BaseAC is the armor class granted by the starting kit before any
	// dexterity modifier (11 for classes starting in light armor).
	// DexToAC is false for classes whose starting armor ignores dexterity.
	BaseAC  int  `json:"base_ac"`
	DexToAC bool `json:"dex_to_ac"`
}

// AverageHitDieHP is the fixed per-level HP gain when not rolling
func (c *Class) AverageHitDieHP() int {
	return c.HitDie/2 + 1
}

// Level1SlotCount returns the declared level-1 spell slots, 0 for non-casters
func (c *Class) Level1SlotCount() int {
	if c.Spellcasting == nil {
		return 0
	}
	return c.Spellcasting.Level1Slots
}

var instruments = []string{
	"bagpipes", "drum", "dulcimer", "flute", "lute", "lyre", "horn",
	"pan-flute", "shawm", "viol",
}

var classes = []*Class{
	{
		Key:            "bard",
		Name:           "Bard",
		HitDie:         8,
		PrimaryAbility: AbilityCharisma,
		SavingThrows:   []Ability{AbilityDexterity, AbilityCharisma},
		ArmorProficiencies:  []string{"light-armor"},
		WeaponProficiencies: []string{"simple-weapons", "hand-crossbow", "longsword", "rapier", "shortsword"},
		SkillChoiceCount:    3,
		SkillOptions:        SkillKeys(),
		ToolChoiceCount:     3,
		ToolOptions:         instruments,
		StartingEquipment:   []string{"leather-armor", "dagger", "entertainers-pack"},
		EquipmentChoices: []EquipmentChoice{
			{Name: "weapon", Options: []string{"rapier", "longsword", "any-simple-weapon"}},
			{Name: "instrument", Options: []string{"lute", "any-other-instrument"}},
		},
		Spellcasting: &Spellcasting{
			Ability:       AbilityCharisma,
			CantripsKnown: 2,
			SpellsKnown:   4,
			Level1Slots:   2,
		},
		BaseAC:  11,
		DexToAC: true,
	},
	{
		Key:            "fighter",
		Name:           "Fighter",
		HitDie:         10,
		PrimaryAbility: AbilityStrength,
		SavingThrows:   []Ability{AbilityStrength, AbilityConstitution},
		ArmorProficiencies:  []string{"all-armor", "shields"},
		WeaponProficiencies: []string{"simple-weapons", "martial-weapons"},
		SkillChoiceCount:    2,
		SkillOptions: []string{
			"acrobatics", "animal-handling", "athletics", "history",
			"insight", "intimidation", "perception", "survival",
		},
		StartingEquipment: []string{"chain-mail", "explorers-pack"},
		EquipmentChoices: []EquipmentChoice{
			{Name: "weapon", Options: []string{"longsword-and-shield", "two-martial-weapons"}},
			{Name: "ranged", Options: []string{"light-crossbow-and-bolts", "two-handaxes"}},
		},
		BaseAC: 16,
	},
	{
		Key:            "rogue",
		Name:           "Rogue",
		HitDie:         8,
		PrimaryAbility: AbilityDexterity,
		SavingThrows:   []Ability{AbilityDexterity, AbilityIntelligence},
		ArmorProficiencies:  []string{"light-armor"},
		WeaponProficiencies: []string{"simple-weapons", "hand-crossbow", "longsword", "rapier", "shortsword"},
		SkillChoiceCount:    4,
		SkillOptions: []string{
			"acrobatics", "athletics", "deception", "insight",
			"intimidation", "investigation", "perception", "performance",
			"persuasion", "sleight-of-hand", "stealth",
		},
		ToolChoiceCount:   1,
		ToolOptions:       []string{"thieves-tools"},
		StartingEquipment: []string{"leather-armor", "two-daggers", "thieves-tools", "burglars-pack"},
		EquipmentChoices: []EquipmentChoice{
			{Name: "weapon", Options: []string{"rapier", "shortsword"}},
			{Name: "ranged", Options: []string{"shortbow-and-quiver", "shortsword"}},
		},
		BaseAC:  11,
		DexToAC: true,
	},
	{
		Key:            "wizard",
		Name:           "Wizard",
		HitDie:         6,
		PrimaryAbility: AbilityIntelligence,
		SavingThrows:   []Ability{AbilityIntelligence, AbilityWisdom},
		WeaponProficiencies: []string{"dagger", "dart", "sling", "quarterstaff", "light-crossbow"},
		SkillChoiceCount:    2,
		SkillOptions: []string{
			"arcana", "history", "insight", "investigation", "medicine", "religion",
		},
		StartingEquipment: []string{"spellbook", "scholars-pack"},
		EquipmentChoices: []EquipmentChoice{
			{Name: "weapon", Options: []string{"quarterstaff", "dagger"}},
			{Name: "focus", Options: []string{"component-pouch", "arcane-focus"}},
		},
		Spellcasting: &Spellcasting{
			Ability:       AbilityIntelligence,
			CantripsKnown: 3,
			SpellsKnown:   6,
			Level1Slots:   2,
		},
		BaseAC:  10,
		DexToAC: true,
	},
	{
		Key:            "cleric",
		Name:           "Cleric",
		HitDie:         8,
		PrimaryAbility: AbilityWisdom,
		SavingThrows:   []Ability{AbilityWisdom, AbilityCharisma},
		ArmorProficiencies:  []string{"light-armor", "medium-armor", "shields"},
		WeaponProficiencies: []string{"simple-weapons"},
		SkillChoiceCount:    2,
		SkillOptions: []string{
			"history", "insight", "medicine", "persuasion", "religion",
		},
		StartingEquipment: []string{"scale-mail", "shield", "holy-symbol", "priests-pack"},
		EquipmentChoices: []EquipmentChoice{
			{Name: "weapon", Options: []string{"mace", "warhammer"}},
			{Name: "ranged", Options: []string{"light-crossbow-and-bolts", "any-simple-weapon"}},
		},
		Spellcasting: &Spellcasting{
			Ability:       AbilityWisdom,
			CantripsKnown: 3,
			SpellsKnown:   0, // prepared caster, no fixed known count at creation
			Level1Slots:   2,
		},
		BaseAC: 14,
	},
}

// Classes returns every supported class
func Classes() []*Class {
	return classes
}

// GetClass looks up a class by key
func GetClass(key string) (*Class, bool) {
	for _, c := range classes {
		if c.Key == key {
			return c, true
		}
	}
	return nil, false
}
