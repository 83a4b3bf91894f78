package character

import (
	"encoding/json"
)

// Currency tracks coin by denomination. Values never go negative; mutations
// clamp instead of rejecting.
type Currency struct {
	Platinum int `json:"platinum"`
	Gold     int `json:"gold"`
	Silver   int `json:"silver"`
	Copper   int `json:"copper"`
}

// CurrencyField names one denomination for currency updates
type CurrencyField string

const (
	CurrencyPlatinum CurrencyField = "platinum"
	CurrencyGold     CurrencyField = "gold"
	CurrencySilver   CurrencyField = "silver"
	CurrencyCopper   CurrencyField = "copper"
)

// EquipmentItem is one inventory entry. Older records stored bare name
// strings; newer ones store structured items, so decoding accepts both.
type EquipmentItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Cost        string `json:"cost,omitempty"`
}

// UnmarshalJSON accepts either a bare string or a structured item
func (e *EquipmentItem) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		e.Name = name
		e.Description = ""
		e.Cost = ""
		return nil
	}

	type item EquipmentItem
	var structured item
	if err := json.Unmarshal(data, &structured); err != nil {
		return err
	}
	*e = EquipmentItem(structured)
	return nil
}
