package compendium

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/singleflight"

	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
)

// dndAPI is the slice of the upstream client this package calls.
// Narrowed so tests can fake it without the full upstream surface.
type dndAPI interface {
	ListSpells(input *dnd5e.ListSpellsInput) ([]*apiEntities.ReferenceItem, error)
	GetSpell(key string) (*apiEntities.Spell, error)
	ListMonstersWithFilter(input *dnd5e.ListMonstersInput) ([]*apiEntities.ReferenceItem, error)
	GetMonster(key string) (*apiEntities.Monster, error)
	ListEquipment() ([]*apiEntities.ReferenceItem, error)
	GetEquipment(key string) (dnd5e.EquipmentInterface, error)
	GetEquipmentCategory(key string) (*apiEntities.EquipmentCategory, error)
}

// magicItemCategories are the upstream equipment categories aggregated
// into the magic-items section.
var magicItemCategories = []string{
	"wondrous-items", "ring", "rod", "staff", "wand", "potion", "scroll",
}

type client struct {
	api dndAPI

	mu    sync.RWMutex
	lists map[string][]*Entry
	items map[string]*Item
	group singleflight.Group
}

// Config holds configuration for the compendium client
type Config struct {
	HttpClient *http.Client
}

// New creates a compendium client backed by the public D&D 5e API
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("cfg cannot be nil")
	}

	api, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to create dnd5e api client")
	}

	return newWithAPI(api), nil
}

func newWithAPI(api dndAPI) *client {
	return &client{
		api:   api,
		lists: make(map[string][]*Entry),
		items: make(map[string]*Item),
	}
}

func (c *client) ListCategory(category Category) ([]*Entry, error) {
	key := "list:" + string(category)

	c.mu.RLock()
	if entries, ok := c.lists[key]; ok {
		c.mu.RUnlock()
		return copyEntries(entries), nil
	}
	c.mu.RUnlock()

	result, err, _ := c.group.Do(key, func() (any, error) {
		entries, err := c.fetchList(category)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.lists[key] = entries
		c.mu.Unlock()
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return copyEntries(result.([]*Entry)), nil
}

func (c *client) GetItem(category Category, key string) (*Item, error) {
	if key == "" {
		return nil, apperr.InvalidArgument("item key is required")
	}
	cacheKey := "item:" + string(category) + ":" + key

	c.mu.RLock()
	if item, ok := c.items[cacheKey]; ok {
		c.mu.RUnlock()
		return item, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.group.Do(cacheKey, func() (any, error) {
		item, err := c.fetchItem(category, key)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.items[cacheKey] = item
		c.mu.Unlock()
		return item, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Item), nil
}

func (c *client) fetchList(category Category) ([]*Entry, error) {
	switch category {
	case CategorySpells:
		refs, err := c.api.ListSpells(&dnd5e.ListSpellsInput{})
		if err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to list spells")
		}
		return refsToEntries(refs), nil
	case CategoryMonsters:
		refs, err := c.api.ListMonstersWithFilter(&dnd5e.ListMonstersInput{})
		if err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to list monsters")
		}
		return refsToEntries(refs), nil
	case CategoryEquipment:
		refs, err := c.api.ListEquipment()
		if err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to list equipment")
		}
		return refsToEntries(refs), nil
	case CategoryMagicItems:
		return c.fetchMagicItemList()
	default:
		return nil, apperr.InvalidArgumentf("unknown compendium category '%s'", category)
	}
}

// fetchMagicItemList aggregates the magical equipment categories into
// one listing, deduplicated by key and sorted by name.
func (c *client) fetchMagicItemList() ([]*Entry, error) {
	seen := make(map[string]bool)
	var entries []*Entry
	for _, cat := range magicItemCategories {
		categoryData, err := c.api.GetEquipmentCategory(cat)
		if err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to list magic items").
				WithMeta("equipment_category", cat)
		}
		for _, ref := range categoryData.Equipment {
			if ref.Key == "" || seen[ref.Key] {
				continue
			}
			seen[ref.Key] = true
			entries = append(entries, &Entry{Key: ref.Key, Name: ref.Name})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (c *client) fetchItem(category Category, key string) (*Item, error) {
	switch category {
	case CategorySpells:
		spell, err := c.api.GetSpell(key)
		if err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to get spell").
				WithMeta("key", key)
		}
		return spellToItem(spell), nil
	case CategoryMonsters:
		monster, err := c.api.GetMonster(key)
		if err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to get monster").
				WithMeta("key", key)
		}
		return monsterToItem(monster), nil
	case CategoryEquipment, CategoryMagicItems:
		equip, err := c.api.GetEquipment(key)
		if err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to get equipment").
				WithMeta("key", key)
		}
		return equipmentToItem(category, equip), nil
	default:
		return nil, apperr.InvalidArgumentf("unknown compendium category '%s'", category)
	}
}

func refsToEntries(refs []*apiEntities.ReferenceItem) []*Entry {
	entries := make([]*Entry, 0, len(refs))
	for _, ref := range refs {
		if ref.Key == "" {
			continue
		}
		entries = append(entries, &Entry{Key: ref.Key, Name: ref.Name})
	}
	return entries
}

func copyEntries(entries []*Entry) []*Entry {
	out := make([]*Entry, len(entries))
	copy(out, entries)
	return out
}

func spellToItem(spell *apiEntities.Spell) *Item {
	item := &Item{
		Key:      spell.Key,
		Name:     spell.Name,
		Category: CategorySpells,
		Fields: []Field{
			{Label: "Level", Value: strconv.Itoa(spell.SpellLevel)},
			{Label: "Casting Time", Value: spell.CastingTime},
			{Label: "Range", Value: spell.Range},
			{Label: "Duration", Value: spell.Duration},
			{Label: "Concentration", Value: strconv.FormatBool(spell.Concentration)},
			{Label: "Ritual", Value: strconv.FormatBool(spell.Ritual)},
		},
	}
	if spell.SpellSchool != nil {
		item.Fields = append(item.Fields, Field{Label: "School", Value: spell.SpellSchool.Name})
	}
	return item
}

func monsterToItem(monster *apiEntities.Monster) *Item {
	return &Item{
		Key:      monster.Key,
		Name:     monster.Name,
		Category: CategoryMonsters,
		Fields: []Field{
			{Label: "Type", Value: monster.Type},
			{Label: "Armor Class", Value: strconv.Itoa(monster.ArmorClass)},
			{Label: "Hit Points", Value: fmt.Sprintf("%d (%s)", monster.HitPoints, monster.HitDice)},
			{Label: "Challenge Rating", Value: strconv.FormatFloat(float64(monster.ChallengeRating), 'f', -1, 32)},
		},
	}
}

func equipmentToItem(category Category, equip dnd5e.EquipmentInterface) *Item {
	switch e := equip.(type) {
	case *apiEntities.Weapon:
		item := &Item{
			Key:      e.Key,
			Name:     e.Name,
			Category: category,
			Fields: []Field{
				{Label: "Category", Value: e.WeaponCategory},
				{Label: "Range", Value: e.WeaponRange},
			},
		}
		if e.Damage != nil {
			item.Fields = append(item.Fields, Field{Label: "Damage", Value: e.Damage.DamageDice})
		}
		appendCostAndWeight(item, e.Cost, e.Weight)
		return item
	case *apiEntities.Armor:
		item := &Item{
			Key:      e.Key,
			Name:     e.Name,
			Category: category,
			Fields: []Field{
				{Label: "Category", Value: e.ArmorCategory},
			},
		}
		if e.ArmorClass != nil {
			ac := strconv.Itoa(e.ArmorClass.Base)
			if e.ArmorClass.DexBonus {
				ac += " + Dex modifier"
			}
			item.Fields = append(item.Fields, Field{Label: "Armor Class", Value: ac})
		}
		appendCostAndWeight(item, e.Cost, e.Weight)
		return item
	case *apiEntities.Equipment:
		item := &Item{
			Key:      e.Key,
			Name:     e.Name,
			Category: category,
		}
		appendCostAndWeight(item, e.Cost, e.Weight)
		return item
	default:
		return &Item{Category: category}
	}
}

func appendCostAndWeight(item *Item, cost *apiEntities.Cost, weight float32) {
	if cost != nil {
		item.Fields = append(item.Fields, Field{
			Label: "Cost",
			Value: fmt.Sprintf("%d %s", cost.Quantity, cost.Unit),
		})
	}
	if weight > 0 {
		item.Fields = append(item.Fields, Field{
			Label: "Weight",
			Value: strconv.FormatFloat(float64(weight), 'f', -1, 32) + " lb.",
		})
	}
}
