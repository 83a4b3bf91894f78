package compendium

import (
	"errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
)

// fakeAPI counts upstream calls so tests can assert cache behavior
type fakeAPI struct {
	listSpellsCalls int
	getSpellCalls   int
	spellErr        error

	listMonstersCalls int
	getEquipmentCalls int
	categoryCalls     map[string]int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{categoryCalls: map[string]int{}}
}

func (f *fakeAPI) ListSpells(input *dnd5e.ListSpellsInput) ([]*apiEntities.ReferenceItem, error) {
	f.listSpellsCalls++
	if f.spellErr != nil {
		return nil, f.spellErr
	}
	return []*apiEntities.ReferenceItem{
		{Key: "fireball", Name: "Fireball"},
		{Key: "", Name: "no key, dropped"},
		{Key: "vicious-mockery", Name: "Vicious Mockery"},
	}, nil
}

func (f *fakeAPI) GetSpell(key string) (*apiEntities.Spell, error) {
	f.getSpellCalls++
	if f.spellErr != nil {
		return nil, f.spellErr
	}
	return &apiEntities.Spell{
		Key:         key,
		Name:        "Vicious Mockery",
		SpellLevel:  0,
		CastingTime: "1 action",
		Range:       "60 feet",
		Duration:    "Instantaneous",
		SpellSchool: &apiEntities.ReferenceItem{Key: "enchantment", Name: "Enchantment"},
	}, nil
}

func (f *fakeAPI) ListMonstersWithFilter(input *dnd5e.ListMonstersInput) ([]*apiEntities.ReferenceItem, error) {
	f.listMonstersCalls++
	return []*apiEntities.ReferenceItem{{Key: "goblin", Name: "Goblin"}}, nil
}

func (f *fakeAPI) GetMonster(key string) (*apiEntities.Monster, error) {
	return &apiEntities.Monster{
		Key:             key,
		Name:            "Goblin",
		Type:            "humanoid",
		ArmorClass:      15,
		HitPoints:       7,
		HitDice:         "2d6",
		ChallengeRating: 0.25,
	}, nil
}

func (f *fakeAPI) ListEquipment() ([]*apiEntities.ReferenceItem, error) {
	return []*apiEntities.ReferenceItem{{Key: "rapier", Name: "Rapier"}}, nil
}

func (f *fakeAPI) GetEquipment(key string) (dnd5e.EquipmentInterface, error) {
	f.getEquipmentCalls++
	return &apiEntities.Weapon{
		Key:            key,
		Name:           "Rapier",
		WeaponCategory: "Martial",
		WeaponRange:    "Melee",
		Damage:         &apiEntities.Damage{DamageDice: "1d8"},
		Cost:           &apiEntities.Cost{Quantity: 25, Unit: "gp"},
		Weight:         2,
	}, nil
}

func (f *fakeAPI) GetEquipmentCategory(key string) (*apiEntities.EquipmentCategory, error) {
	f.categoryCalls[key]++
	if key != "wondrous-items" {
		return &apiEntities.EquipmentCategory{}, nil
	}
	return &apiEntities.EquipmentCategory{
		Equipment: []*apiEntities.ReferenceItem{
			{Key: "bag-of-holding", Name: "Bag of Holding"},
			{Key: "amulet-of-health", Name: "Amulet of Health"},
		},
	}, nil
}

func TestListCategoryCachesResults(t *testing.T) {
	api := newFakeAPI()
	c := newWithAPI(api)

	first, err := c.ListCategory(CategorySpells)
	require.NoError(t, err)
	require.Len(t, first, 2, "entries without keys are dropped")
	assert.Equal(t, "fireball", first[0].Key)

	second, err := c.ListCategory(CategorySpells)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, api.listSpellsCalls, "second list must come from cache")
}

func TestListCategoryErrorsAreNotCached(t *testing.T) {
	api := newFakeAPI()
	api.spellErr = errors.New("api down")
	c := newWithAPI(api)

	_, err := c.ListCategory(CategorySpells)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeUnavailable))

	api.spellErr = nil
	entries, err := c.ListCategory(CategorySpells)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 2, api.listSpellsCalls, "failed fetch must be retried")
}

func TestListCategoryUnknown(t *testing.T) {
	c := newWithAPI(newFakeAPI())

	_, err := c.ListCategory(Category("planes"))
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestGetItemSpell(t *testing.T) {
	api := newFakeAPI()
	c := newWithAPI(api)

	item, err := c.GetItem(CategorySpells, "vicious-mockery")
	require.NoError(t, err)
	assert.Equal(t, "Vicious Mockery", item.Name)
	assert.Equal(t, CategorySpells, item.Category)
	assert.Contains(t, item.Fields, Field{Label: "Casting Time", Value: "1 action"})
	assert.Contains(t, item.Fields, Field{Label: "School", Value: "Enchantment"})

	_, err = c.GetItem(CategorySpells, "vicious-mockery")
	require.NoError(t, err)
	assert.Equal(t, 1, api.getSpellCalls, "item detail must be cached by exact request key")

	_, err = c.GetItem(CategorySpells, "fireball")
	require.NoError(t, err)
	assert.Equal(t, 2, api.getSpellCalls, "different key is a different cache entry")
}

func TestGetItemMonster(t *testing.T) {
	c := newWithAPI(newFakeAPI())

	item, err := c.GetItem(CategoryMonsters, "goblin")
	require.NoError(t, err)
	assert.Contains(t, item.Fields, Field{Label: "Hit Points", Value: "7 (2d6)"})
	assert.Contains(t, item.Fields, Field{Label: "Challenge Rating", Value: "0.25"})
}

func TestGetItemWeapon(t *testing.T) {
	c := newWithAPI(newFakeAPI())

	item, err := c.GetItem(CategoryEquipment, "rapier")
	require.NoError(t, err)
	assert.Contains(t, item.Fields, Field{Label: "Damage", Value: "1d8"})
	assert.Contains(t, item.Fields, Field{Label: "Cost", Value: "25 gp"})
	assert.Contains(t, item.Fields, Field{Label: "Weight", Value: "2 lb."})
}

func TestGetItemEmptyKey(t *testing.T) {
	c := newWithAPI(newFakeAPI())

	_, err := c.GetItem(CategorySpells, "")
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestListMagicItemsAggregatesAndSorts(t *testing.T) {
	api := newFakeAPI()
	c := newWithAPI(api)

	entries, err := c.ListCategory(CategoryMagicItems)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Amulet of Health", entries[0].Name)
	assert.Equal(t, "Bag of Holding", entries[1].Name)
	assert.Equal(t, 1, api.categoryCalls["wondrous-items"])
	assert.Equal(t, 1, api.categoryCalls["wand"])
}
