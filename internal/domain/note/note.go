// Package note holds the free-form campaign note entity. Notes live
// outside the character sheet and are persisted as one collection
// document rewritten wholesale on every save.
package note

import "time"

// Note is a free-form rich-text note, optionally tied to a character.
// CharacterID is a weak reference: deleting the character leaves the
// note behind with a dangling id.
type Note struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CharacterID string    `json:"character_id,omitempty"`
	Pinned      bool      `json:"pinned"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Clone returns a copy of the note
func (n *Note) Clone() *Note {
	if n == nil {
		return nil
	}
	clone := *n
	return &clone
}

// CloneAll returns a deep copy of a note collection
func CloneAll(notes []*Note) []*Note {
	if notes == nil {
		return nil
	}
	out := make([]*Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}
