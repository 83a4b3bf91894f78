package dice

import (
	"fmt"
	"sync"
)

// MockRoller implements Roller for testing with predetermined results.
// Queued values are consumed one die at a time, so a Roll(4, 6, 0) call
// consumes four queued values.
type MockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewMockRoller creates a new mock dice roller
func NewMockRoller() *MockRoller {
	return &MockRoller{}
}

// SetRolls queues the individual die results to return, in order
func (m *MockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Remaining returns how many queued die results are unconsumed
func (m *MockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

// Roll implements Roller.Roll using the queued results
func (m *MockRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if err := validate(count, sides); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex+count > len(m.rolls) {
		return nil, fmt.Errorf("mock roller exhausted: need %d rolls, have %d", count, len(m.rolls)-m.rollIndex)
	}

	rolls := make([]int, count)
	total := 0
	highest, lowest := 0, 0
	for i := 0; i < count; i++ {
		roll := m.rolls[m.rollIndex]
		m.rollIndex++
		rolls[i] = roll
		total += roll
		if i == 0 || roll > highest {
			highest = roll
		}
		if i == 0 || roll < lowest {
			lowest = roll
		}
	}

	return &RollResult{
		Total:   total + bonus,
		Rolls:   rolls,
		Bonus:   bonus,
		Highest: highest,
		Lowest:  lowest,
	}, nil
}
