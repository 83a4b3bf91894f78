package notes

//go:generate mockgen -destination=mock/mock.go -package=mocknotes -source=interface.go

import (
	"context"

	"github.com/jkode-CMU/dndbeyond/internal/domain/note"
)

// Repository persists the note collection as a single document under a
// fixed storage key. Every save rewrites the whole collection.
type Repository interface {
	// Load retrieves the full note collection in stored order. A
	// missing document yields an empty collection, not an error.
	Load(ctx context.Context) ([]*note.Note, error)

	// Save rewrites the full note collection
	Save(ctx context.Context, notes []*note.Note) error
}
