// Package dice provides dice rolling behind an injectable interface so that
// operations which consume randomness stay deterministic in tests.
package dice

import "fmt"

// Roller provides an interface for rolling dice
type Roller interface {
	// Roll rolls count dice with the given number of sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult holds the outcome of a single dice roll
type RollResult struct {
	Total   int   `json:"total"`
	Rolls   []int `json:"rolls"`
	Bonus   int   `json:"bonus"`
	Highest int   `json:"highest"`
	Lowest  int   `json:"lowest"`
}

// RawTotal returns the roll total without the bonus
func (r *RollResult) RawTotal() int {
	return r.Total - r.Bonus
}

func (r *RollResult) String() string {
	if r.Bonus != 0 {
		return fmt.Sprintf("%v%+d = %d", r.Rolls, r.Bonus, r.Total)
	}
	return fmt.Sprintf("%v = %d", r.Rolls, r.Total)
}

func validate(count, sides int) error {
	if count < 1 {
		return fmt.Errorf("invalid dice count %d", count)
	}
	if sides < 1 {
		return fmt.Errorf("invalid dice size %d", sides)
	}
	return nil
}
