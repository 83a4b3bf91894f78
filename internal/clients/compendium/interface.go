// Package compendium wraps the D&D 5e reference API behind a cached,
// category-oriented client for the rules browser.
package compendium

//go:generate mockgen -destination=mock/mock.go -package=mockcompendium -source=interface.go

// Category identifies a browsable compendium section
type Category string

const (
	CategorySpells     Category = "spells"
	CategoryMonsters   Category = "monsters"
	CategoryEquipment  Category = "equipment"
	CategoryMagicItems Category = "magic-items"
)

// Categories lists every browsable compendium section
var Categories = []Category{
	CategorySpells,
	CategoryMonsters,
	CategoryEquipment,
	CategoryMagicItems,
}

// Entry is one row in a category listing
type Entry struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Field is one labeled value on an item detail card
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Item is the rendered detail record for one compendium entry
type Item struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Fields   []Field  `json:"fields"`
}

// Client fetches reference content. Results are cached by exact request
// key for the life of the process; failed fetches are never cached.
type Client interface {
	ListCategory(category Category) ([]*Entry, error)
	GetItem(category Category, key string) (*Item, error)
}
