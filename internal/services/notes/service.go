// Package notes manages the free-form notes collection. The collection is
// one ordered document rewritten wholesale on every save, so the service
// keeps the authoritative copy in memory and pushes snapshots through the
// save queue.
package notes

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jkode-CMU/dndbeyond/internal/domain/note"
	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
	"github.com/jkode-CMU/dndbeyond/internal/repositories/notes"
	"github.com/jkode-CMU/dndbeyond/internal/savequeue"
	"github.com/jkode-CMU/dndbeyond/internal/uuid"
)

// saveKey is the save-queue id for the collection document
const saveKey = "notes"

// PutNoteInput carries one note's fields for create or update. An empty
// ID creates a new note; a set ID updates the existing one.
type PutNoteInput struct {
	ID          string
	Title       string
	Content     string
	CharacterID string
}

// Service defines the notes service interface
type Service interface {
	// List returns the notes in their stored order
	List(ctx context.Context) ([]*note.Note, error)

	// Get retrieves a note by ID
	Get(ctx context.Context, noteID string) (*note.Note, error)

	// Put creates or updates a note and schedules a collection save
	Put(ctx context.Context, input *PutNoteInput) (*note.Note, error)

	// Delete removes a note and schedules a collection save
	Delete(ctx context.Context, noteID string) error

	// Pin sets a note's pinned flag
	Pin(ctx context.Context, noteID string, pinned bool) (*note.Note, error)

	// Flush forces any scheduled save out immediately
	Flush(ctx context.Context) error
}

// service implements the Service interface
type service struct {
	repository notes.Repository
	idGen      uuid.Generator
	saves      *savequeue.Queue
	now        func() time.Time

	mu     sync.Mutex
	loaded bool
	notes  []*note.Note
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository notes.Repository

	// Optional. Defaults: google uuids, a queue with the default
	// debounce window, wall-clock time.
	UUIDGenerator uuid.Generator
	SaveQueue     *savequeue.Queue
	Now           func() time.Time
}

// NewService creates a new notes service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("config cannot be nil")
	}
	if cfg.Repository == nil {
		return nil, apperr.InvalidArgument("repository is required")
	}

	s := &service{
		repository: cfg.Repository,
		idGen:      cfg.UUIDGenerator,
		saves:      cfg.SaveQueue,
		now:        cfg.Now,
	}
	if s.idGen == nil {
		s.idGen = uuid.NewGoogleUUIDGenerator()
	}
	if s.saves == nil {
		s.saves = savequeue.New(nil)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s, nil
}

func (s *service) List(ctx context.Context) ([]*note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return note.CloneAll(s.notes), nil
}

func (s *service) Get(ctx context.Context, noteID string) (*note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	n := s.find(noteID)
	if n == nil {
		return nil, apperr.NotFoundf("note '%s' not found", noteID)
	}
	return n.Clone(), nil
}

func (s *service) Put(ctx context.Context, input *PutNoteInput) (*note.Note, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.Title) == "" && strings.TrimSpace(input.Content) == "" {
		return nil, apperr.Validation("a note needs a title or some content")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var n *note.Note
	if input.ID == "" {
		n = &note.Note{
			ID:          s.idGen.New(),
			Title:       input.Title,
			Content:     input.Content,
			CharacterID: input.CharacterID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		s.notes = append(s.notes, n)
	} else {
		n = s.find(input.ID)
		if n == nil {
			return nil, apperr.NotFoundf("note '%s' not found", input.ID)
		}
		n.Title = input.Title
		n.Content = input.Content
		n.CharacterID = input.CharacterID
		n.UpdatedAt = now
	}

	if err := s.scheduleSave(); err != nil {
		return nil, err
	}
	return n.Clone(), nil
}

func (s *service) Delete(ctx context.Context, noteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	for i, n := range s.notes {
		if n.ID == noteID {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return s.scheduleSave()
		}
	}
	return apperr.NotFoundf("note '%s' not found", noteID)
}

func (s *service) Pin(ctx context.Context, noteID string, pinned bool) (*note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	n := s.find(noteID)
	if n == nil {
		return nil, apperr.NotFoundf("note '%s' not found", noteID)
	}
	n.Pinned = pinned
	n.UpdatedAt = s.now().UTC()

	if err := s.scheduleSave(); err != nil {
		return nil, err
	}
	return n.Clone(), nil
}

func (s *service) Flush(ctx context.Context) error {
	return s.saves.Flush(ctx)
}

// ensureLoaded reads the stored collection once. Callers hold the lock.
func (s *service) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	stored, err := s.repository.Load(ctx)
	if err != nil {
		return err
	}
	s.notes = stored
	s.loaded = true
	return nil
}

// scheduleSave queues a snapshot of the whole collection. Callers hold
// the lock; the snapshot is taken here so later edits cannot leak into
// an already-queued save.
func (s *service) scheduleSave() error {
	snapshot := note.CloneAll(s.notes)
	return s.saves.Enqueue(saveKey, func(ctx context.Context) error {
		return s.repository.Save(ctx, snapshot)
	})
}

func (s *service) find(noteID string) *note.Note {
	for _, n := range s.notes {
		if n.ID == noteID {
			return n
		}
	}
	return nil
}
