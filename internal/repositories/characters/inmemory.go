package characters

import (
	"context"
	"sync"
	"time"

	"github.com/jkode-CMU/dndbeyond/internal/domain/character"
	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*characterRecord
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records: make(map[string]*characterRecord),
	}
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, char *character.Character) error {
	if err := validateCharacter(char); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[char.ID]; exists {
		return apperr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}
	r.records[char.ID] = newRecord(char, time.Now().UTC())
	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.records[id]
	if !exists {
		return nil, apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	return rec.toCharacter(), nil
}

// List retrieves every stored character, sorted by name
func (r *InMemoryRepository) List(ctx context.Context) ([]*character.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chars := make([]*character.Character, 0, len(r.records))
	for _, rec := range r.records {
		chars = append(chars, rec.toCharacter())
	}
	sortByName(chars)
	return chars, nil
}

// Update overwrites an existing character
func (r *InMemoryRepository) Update(ctx context.Context, char *character.Character) error {
	if err := validateCharacter(char); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.records[char.ID]
	if !exists {
		return apperr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}
	r.records[char.ID] = rec.next(char, time.Now().UTC())
	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	delete(r.records, id)
	return nil
}
