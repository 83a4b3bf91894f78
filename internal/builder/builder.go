// Package builder accumulates character-creation choices across a
// fixed sequence of stages and assembles the final character record.
package builder

import (
	"strings"

	"github.com/jkode-CMU/dndbeyond/internal/dice"
	"github.com/jkode-CMU/dndbeyond/internal/domain/rulebook"
	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
	"github.com/jkode-CMU/dndbeyond/internal/uuid"
)

// Stage is one step of the creation flow
type Stage int

const (
	StageBasic Stage = iota
	StageClass
	StageBackground
	StageSpecies
	StageAbilities
	StageReview
)

// String returns the display name of the stage
func (s Stage) String() string {
	switch s {
	case StageBasic:
		return "basic"
	case StageClass:
		return "class"
	case StageBackground:
		return "background"
	case StageSpecies:
		return "species"
	case StageAbilities:
		return "abilities"
	case StageReview:
		return "review"
	}
	return "unknown"
}

// ClassInput holds the class selection and its sub-choices
type ClassInput struct {
	Key      string
	Skills   []string
	Tools    []string
	Cantrips []string
	Spells   []string
	// EquipmentPicks maps each equipment choice name to the chosen option
	EquipmentPicks map[string]string
}

// BackgroundInput holds the background selection and its sub-choices
type BackgroundInput struct {
	Key       string
	Tool      string
	Languages []string
}

// SpeciesInput holds the species selection and its sub-choices
type SpeciesInput struct {
	Race    string
	Subrace string
	// BonusAbilities are the +1 ability picks for species that grant them
	BonusAbilities []rulebook.Ability
	Skills         []string
	Languages      []string
}

// Builder walks a character through Basic -> Class -> Background ->
// Species -> Abilities -> Review. Stages validate on advance, never on
// entry, so every stage stays freely re-enterable.
type Builder struct {
	idGen  uuid.Generator
	roller dice.Roller

	stage Stage

	name      string
	alignment string

	class      *ClassInput
	background *BackgroundInput
	species    *SpeciesInput

	method AbilityMethod
	scores map[rulebook.Ability]int
	rolled []int
}

// Config holds configuration for the builder
type Config struct {
	UUIDGenerator uuid.Generator
	Roller        dice.Roller
}

// New creates a builder at the Basic stage
func New(cfg *Config) *Builder {
	b := &Builder{
		idGen:  uuid.NewGoogleUUIDGenerator(),
		roller: dice.NewRandomRoller(),
		method: MethodStandardArray,
		scores: make(map[rulebook.Ability]int),
	}
	if cfg != nil {
		if cfg.UUIDGenerator != nil {
			b.idGen = cfg.UUIDGenerator
		}
		if cfg.Roller != nil {
			b.roller = cfg.Roller
		}
	}
	return b
}

// Stage returns the current stage
func (b *Builder) Stage() Stage {
	return b.stage
}

// Next validates the current stage and advances to the following one
func (b *Builder) Next() error {
	if err := b.validateStage(b.stage); err != nil {
		return err
	}
	if b.stage < StageReview {
		b.stage++
	}
	return nil
}

// Back retreats one stage without validation
func (b *Builder) Back() {
	if b.stage > StageBasic {
		b.stage--
	}
}

// SetBasicInfo records the character's name and alignment
func (b *Builder) SetBasicInfo(name, alignment string) {
	b.name = strings.TrimSpace(name)
	b.alignment = alignment
}

// SetClass records the class selection and its sub-choices
func (b *Builder) SetClass(input *ClassInput) {
	b.class = input
}

// SetBackground records the background selection and its sub-choices
func (b *Builder) SetBackground(input *BackgroundInput) {
	b.background = input
}

// SetSpecies records the species selection and its sub-choices
func (b *Builder) SetSpecies(input *SpeciesInput) {
	b.species = input
}

func (b *Builder) validateStage(stage Stage) error {
	switch stage {
	case StageBasic:
		return b.validateBasic()
	case StageClass:
		return b.validateClass()
	case StageBackground:
		return b.validateBackground()
	case StageSpecies:
		return b.validateSpecies()
	case StageAbilities:
		return b.validateAbilities()
	case StageReview:
		return nil
	}
	return apperr.Internalf("unknown stage %d", stage)
}

func (b *Builder) validateBasic() error {
	if b.name == "" {
		return apperr.Validation("character name is required")
	}
	if !rulebook.IsValidAlignment(b.alignment) {
		return apperr.Validationf("'%s' is not a recognized alignment", b.alignment)
	}
	return nil
}

func (b *Builder) validateClass() error {
	if b.class == nil || b.class.Key == "" {
		return apperr.Validation("a class must be selected")
	}
	class, ok := rulebook.GetClass(b.class.Key)
	if !ok {
		return apperr.Validationf("'%s' is not a supported class", b.class.Key)
	}

	if err := checkChoices("skill", b.class.Skills, class.SkillChoiceCount, class.SkillOptions); err != nil {
		return err
	}
	if err := checkChoices("tool", b.class.Tools, class.ToolChoiceCount, class.ToolOptions); err != nil {
		return err
	}
	if class.Spellcasting != nil {
		if len(b.class.Cantrips) != class.Spellcasting.CantripsKnown {
			return apperr.Validationf("%s requires exactly %d cantrips, got %d",
				class.Name, class.Spellcasting.CantripsKnown, len(b.class.Cantrips))
		}
		if len(b.class.Spells) != class.Spellcasting.SpellsKnown {
			return apperr.Validationf("%s requires exactly %d known spells, got %d",
				class.Name, class.Spellcasting.SpellsKnown, len(b.class.Spells))
		}
		if hasDuplicates(b.class.Cantrips) || hasDuplicates(b.class.Spells) {
			return apperr.Validation("spell selections must be distinct")
		}
	}
	for _, choice := range class.EquipmentChoices {
		pick, ok := b.class.EquipmentPicks[choice.Name]
		if !ok || pick == "" {
			return apperr.Validationf("equipment choice '%s' is unresolved", choice.Name)
		}
		if !contains(choice.Options, pick) {
			return apperr.Validationf("'%s' is not an option for equipment choice '%s'", pick, choice.Name)
		}
	}
	return nil
}

func (b *Builder) validateBackground() error {
	if b.background == nil || b.background.Key == "" {
		return apperr.Validation("a background must be selected")
	}
	bg, ok := rulebook.GetBackground(b.background.Key)
	if !ok {
		return apperr.Validationf("'%s' is not a supported background", b.background.Key)
	}

	if bg.ToolChoice != nil {
		if b.background.Tool == "" {
			return apperr.Validationf("%s requires a tool choice", bg.Name)
		}
		if !contains(bg.ToolChoice.Options, b.background.Tool) {
			return apperr.Validationf("'%s' is not a tool option for %s", b.background.Tool, bg.Name)
		}
	}
	if len(b.background.Languages) != bg.LanguageChoiceCount {
		return apperr.Validationf("%s requires exactly %d extra languages, got %d",
			bg.Name, bg.LanguageChoiceCount, len(b.background.Languages))
	}
	if hasDuplicates(b.background.Languages) {
		return apperr.Validation("language selections must be distinct")
	}
	return nil
}

func (b *Builder) validateSpecies() error {
	if b.species == nil || b.species.Race == "" {
		return apperr.Validation("a species must be selected")
	}
	race, ok := rulebook.GetRace(b.species.Race)
	if !ok {
		return apperr.Validationf("'%s' is not a supported species", b.species.Race)
	}

	if race.HasSubraces() {
		if b.species.Subrace == "" {
			return apperr.Validationf("%s requires a subrace", race.Name)
		}
		if _, found := race.GetSubrace(b.species.Subrace); !found {
			return apperr.Validationf("'%s' is not a subrace of %s", b.species.Subrace, race.Name)
		}
	}

	if len(b.species.BonusAbilities) != race.AbilityChoiceCount {
		return apperr.Validationf("%s grants exactly %d bonus ability picks, got %d",
			race.Name, race.AbilityChoiceCount, len(b.species.BonusAbilities))
	}
	seen := make(map[rulebook.Ability]bool)
	for _, ability := range b.species.BonusAbilities {
		if !rulebook.IsValidAbility(ability) {
			return apperr.Validationf("'%s' is not an ability", ability)
		}
		if seen[ability] {
			return apperr.Validation("bonus ability picks must be distinct")
		}
		seen[ability] = true
		// picks must not stack on an ability that already has a fixed bonus
		if _, fixed := race.AbilityBonuses[ability]; fixed {
			return apperr.Validationf("bonus ability pick must differ from the fixed %s bonus", ability)
		}
	}

	if err := checkChoices("skill", b.species.Skills, race.SkillChoiceCount, race.SkillOptions); err != nil {
		return err
	}
	if len(b.species.Languages) != race.LanguageChoiceCount {
		return apperr.Validationf("%s grants exactly %d extra languages, got %d",
			race.Name, race.LanguageChoiceCount, len(b.species.Languages))
	}
	if hasDuplicates(b.species.Languages) {
		return apperr.Validation("language selections must be distinct")
	}
	for _, lang := range b.species.Languages {
		if contains(race.Languages, lang) {
			return apperr.Validationf("%s already speaks %s", race.Name, lang)
		}
	}
	return nil
}

func checkChoices(kind string, picks []string, count int, options []string) error {
	if len(picks) != count {
		return apperr.Validationf("exactly %d %s choices required, got %d", count, kind, len(picks))
	}
	if hasDuplicates(picks) {
		return apperr.Validationf("%s choices must be distinct", kind)
	}
	if len(options) > 0 {
		for _, pick := range picks {
			if !contains(options, pick) {
				return apperr.Validationf("'%s' is not a valid %s choice", pick, kind)
			}
		}
	}
	return nil
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func hasDuplicates(values []string) bool {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			return true
		}
		seen[v] = true
	}
	return false
}
