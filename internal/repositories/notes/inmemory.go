package notes

import (
	"context"
	"sync"

	"github.com/jkode-CMU/dndbeyond/internal/domain/note"
)

// InMemoryRepository is an in-memory note repository for testing and
// development.
type InMemoryRepository struct {
	mu    sync.RWMutex
	notes []*note.Note
}

// NewInMemoryRepository creates a new in-memory note repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{notes: []*note.Note{}}
}

// Load retrieves the full note collection
func (r *InMemoryRepository) Load(ctx context.Context) ([]*note.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return note.CloneAll(r.notes), nil
}

// Save rewrites the full note collection
func (r *InMemoryRepository) Save(ctx context.Context, notes []*note.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if notes == nil {
		notes = []*note.Note{}
	}
	r.notes = note.CloneAll(notes)
	return nil
}
