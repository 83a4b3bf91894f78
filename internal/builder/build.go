package builder

import (
	"github.com/jkode-CMU/dndbeyond/internal/domain/character"
	"github.com/jkode-CMU/dndbeyond/internal/domain/rulebook"
	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
)

// FinalAbilityScores returns the base scores with every species bonus
// applied, for the Review stage display. Safe to call before the
// Species stage validates; unassigned abilities read as zero.
func (b *Builder) FinalAbilityScores() character.AbilityScores {
	var scores character.AbilityScores
	for ability, score := range b.scores {
		scores.Set(ability, score)
	}
	if b.species == nil {
		return scores
	}
	race, ok := rulebook.GetRace(b.species.Race)
	if !ok {
		return scores
	}
	for ability, bonus := range race.AbilityBonuses {
		scores.Set(ability, scores.Get(ability)+bonus)
	}
	if subrace, found := race.GetSubrace(b.species.Subrace); found {
		for ability, bonus := range subrace.AbilityBonuses {
			scores.Set(ability, scores.Get(ability)+bonus)
		}
	}
	for _, ability := range b.species.BonusAbilities {
		scores.Set(ability, scores.Get(ability)+1)
	}
	return scores
}

// Build assembles the final character. Only callable from the Review
// stage; every prior stage is re-validated as a defensive check.
func (b *Builder) Build() (*character.Character, error) {
	if b.stage != StageReview {
		return nil, apperr.Validationf("cannot build from the %s stage", b.stage)
	}
	for stage := StageBasic; stage < StageReview; stage++ {
		if err := b.validateStage(stage); err != nil {
			return nil, err
		}
	}

	class, _ := rulebook.GetClass(b.class.Key)
	bg, _ := rulebook.GetBackground(b.background.Key)
	race, _ := rulebook.GetRace(b.species.Race)

	scores := b.FinalAbilityScores()
	conMod := character.AbilityModifier(scores.Constitution)
	dexMod := character.AbilityModifier(scores.Dexterity)

	char := &character.Character{
		ID:         b.idGen.New(),
		Name:       b.name,
		Race:       race.Key,
		Subrace:    b.species.Subrace,
		Class:      class.Key,
		Background: bg.Key,
		Alignment:  b.alignment,
		Level:      1,

		AbilityScores: scores,

		MaxHitPoints: class.HitDie + conMod,
		ArmorClass:   class.BaseAC,
		Initiative:   dexMod,

		SkillProficiencies:       b.skillProficiencies(class, bg),
		SavingThrowProficiencies: savingThrowProficiencies(class),
		ArmorProficiencies:       append([]string(nil), class.ArmorProficiencies...),
		WeaponProficiencies:      append([]string(nil), class.WeaponProficiencies...),
		ToolProficiencies:        b.toolProficiencies(bg),
		Languages:                b.languages(race),

		Spells:           b.spellList(class),
		HitDiceRemaining: 1,

		Equipment: b.startingEquipment(class, bg),
		Currency:  character.Currency{Gold: bg.Currency.Gold},
	}
	if char.MaxHitPoints < 1 {
		char.MaxHitPoints = 1
	}
	char.HitPoints = char.MaxHitPoints
	if class.DexToAC {
		char.ArmorClass += dexMod
	}
	if class.Spellcasting != nil && class.Spellcasting.Level1Slots > 0 {
		char.SpellSlots = []int{class.Spellcasting.Level1Slots}
	}

	char.Normalize()
	return char, nil
}

// skillProficiencies unions the class, background, and species skill
// grants. A grant never downgrades one already present.
func (b *Builder) skillProficiencies(class *rulebook.Class, bg *rulebook.Background) map[string]character.ProficiencyLevel {
	skills := make(map[string]character.ProficiencyLevel)
	grant := func(keys []string) {
		for _, key := range keys {
			if skills[key] == character.ProficiencyNone {
				skills[key] = character.ProficiencyProficient
			}
		}
	}
	grant(b.class.Skills)
	grant(bg.SkillProficiencies)
	grant(b.species.Skills)
	return skills
}

func savingThrowProficiencies(class *rulebook.Class) map[string]character.ProficiencyLevel {
	saves := make(map[string]character.ProficiencyLevel, len(class.SavingThrows))
	for _, ability := range class.SavingThrows {
		saves[string(ability)] = character.ProficiencyProficient
	}
	return saves
}

func (b *Builder) toolProficiencies(bg *rulebook.Background) []string {
	var tools []string
	add := func(keys ...string) {
		for _, key := range keys {
			if key != "" && !contains(tools, key) {
				tools = append(tools, key)
			}
		}
	}
	add(b.class.Tools...)
	add(bg.ToolProficiencies...)
	add(b.background.Tool)
	return tools
}

func (b *Builder) languages(race *rulebook.Race) []string {
	var langs []string
	add := func(keys ...string) {
		for _, key := range keys {
			if key != "" && !contains(langs, key) {
				langs = append(langs, key)
			}
		}
	}
	add(race.Languages...)
	add(b.species.Languages...)
	add(b.background.Languages...)
	return langs
}

func (b *Builder) spellList(class *rulebook.Class) []string {
	if class.Spellcasting == nil {
		return nil
	}
	spells := make([]string, 0, len(b.class.Cantrips)+len(b.class.Spells))
	spells = append(spells, b.class.Cantrips...)
	spells = append(spells, b.class.Spells...)
	return spells
}

func (b *Builder) startingEquipment(class *rulebook.Class, bg *rulebook.Background) []character.EquipmentItem {
	var items []character.EquipmentItem
	add := func(names ...string) {
		for _, name := range names {
			if name != "" {
				items = append(items, character.EquipmentItem{Name: name})
			}
		}
	}
	add(class.StartingEquipment...)
	for _, choice := range class.EquipmentChoices {
		add(b.class.EquipmentPicks[choice.Name])
	}
	add(bg.Equipment...)
	return items
}
