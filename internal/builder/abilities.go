package builder

import (
	"sort"

	"github.com/jkode-CMU/dndbeyond/internal/domain/rulebook"
	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
)

// AbilityMethod selects how base ability scores are generated
type AbilityMethod string

const (
	MethodStandardArray AbilityMethod = "standard_array"
	MethodPointBuy      AbilityMethod = "point_buy"
	MethodRolled        AbilityMethod = "rolled"
	MethodManual        AbilityMethod = "manual"
)

// StandardArray is the fixed multiset assigned bijectively to abilities
var StandardArray = []int{15, 14, 13, 12, 10, 8}

const (
	// PointBuyBudget is the total points available for point buy
	PointBuyBudget = 27

	pointBuyMin = 8
	pointBuyMax = 15

	manualMin = 1
	manualMax = 30
)

// PointBuyCost returns the cumulative point cost of raising a score
// from 8 to the given value. Steps through 13 cost 1 point, 14 and 15
// cost 2.
func PointBuyCost(score int) int {
	cost := 0
	for t := pointBuyMin + 1; t <= score; t++ {
		if t >= 14 {
			cost += 2
		} else {
			cost++
		}
	}
	return cost
}

// UseStandardArray selects the standard-array method with the given
// ability assignments.
func (b *Builder) UseStandardArray(assignments map[rulebook.Ability]int) {
	b.method = MethodStandardArray
	b.scores = copyScores(assignments)
	b.rolled = nil
}

// UsePointBuy selects the point-buy method with the given scores
func (b *Builder) UsePointBuy(scores map[rulebook.Ability]int) {
	b.method = MethodPointBuy
	b.scores = copyScores(scores)
	b.rolled = nil
}

// UseManual selects free entry of the given scores
func (b *Builder) UseManual(scores map[rulebook.Ability]int) {
	b.method = MethodManual
	b.scores = copyScores(scores)
	b.rolled = nil
}

// RollAbilities switches to the rolled method and generates six values,
// each the sum of four d6 with the lowest die dropped. The pool must
// then be assigned with AssignRolled.
func (b *Builder) RollAbilities() ([]int, error) {
	pool := make([]int, 0, len(rulebook.Abilities))
	for range rulebook.Abilities {
		result, err := b.roller.Roll(4, 6, 0)
		if err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "ability roll failed")
		}
		pool = append(pool, result.RawTotal()-result.Lowest)
	}
	b.method = MethodRolled
	b.rolled = pool
	b.scores = make(map[rulebook.Ability]int)

	out := make([]int, len(pool))
	copy(out, pool)
	return out, nil
}

// AssignRolled maps the rolled pool onto abilities. Validation checks
// that the assignment consumes the pool exactly.
func (b *Builder) AssignRolled(assignments map[rulebook.Ability]int) {
	b.scores = copyScores(assignments)
}

// Method returns the active generation method
func (b *Builder) Method() AbilityMethod {
	return b.method
}

// RolledPool returns the current rolled values, if any
func (b *Builder) RolledPool() []int {
	out := make([]int, len(b.rolled))
	copy(out, b.rolled)
	return out
}

func (b *Builder) validateAbilities() error {
	for _, ability := range rulebook.Abilities {
		if _, ok := b.scores[ability]; !ok {
			return apperr.Validationf("no score assigned to %s", ability)
		}
	}

	switch b.method {
	case MethodStandardArray:
		if !sameMultiset(scoreValues(b.scores), StandardArray) {
			return apperr.Validation("standard array must be assigned exactly once per value")
		}
	case MethodPointBuy:
		spent := 0
		for ability, score := range b.scores {
			if score < pointBuyMin || score > pointBuyMax {
				return apperr.Validationf("point-buy score for %s must be between %d and %d",
					ability, pointBuyMin, pointBuyMax)
			}
			spent += PointBuyCost(score)
		}
		if spent > PointBuyBudget {
			return apperr.Validationf("point-buy total %d exceeds the %d point budget", spent, PointBuyBudget)
		}
	case MethodRolled:
		if len(b.rolled) == 0 {
			return apperr.Validation("abilities have not been rolled yet")
		}
		if !sameMultiset(scoreValues(b.scores), b.rolled) {
			return apperr.Validation("assignment must use each rolled value exactly once")
		}
	case MethodManual:
		for ability, score := range b.scores {
			if score < manualMin || score > manualMax {
				return apperr.Validationf("score for %s must be between %d and %d", ability, manualMin, manualMax)
			}
		}
	default:
		return apperr.Validationf("unknown ability method '%s'", b.method)
	}
	return nil
}

func copyScores(scores map[rulebook.Ability]int) map[rulebook.Ability]int {
	out := make(map[rulebook.Ability]int, len(scores))
	for k, v := range scores {
		out[k] = v
	}
	return out
}

func scoreValues(scores map[rulebook.Ability]int) []int {
	out := make([]int, 0, len(scores))
	for _, v := range scores {
		out = append(out, v)
	}
	return out
}

func sameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]int(nil), a...)
	bs := append([]int(nil), b...)
	sort.Ints(as)
	sort.Ints(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
