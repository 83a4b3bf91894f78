package notes_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/jkode-CMU/dndbeyond/internal/domain/note"
	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
	mocknotes "github.com/jkode-CMU/dndbeyond/internal/repositories/notes/mock"
	"github.com/jkode-CMU/dndbeyond/internal/savequeue"
	notesService "github.com/jkode-CMU/dndbeyond/internal/services/notes"
)

type sequenceIDGenerator struct {
	next int
}

func (g *sequenceIDGenerator) New() string {
	g.next++
	return []string{"", "note-1", "note-2", "note-3"}[g.next]
}

type ServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocknotes.MockRepository
	service notesService.Service
	ctx     context.Context
	clock   time.Time
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocknotes.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
	s.clock = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	svc, err := notesService.NewService(&notesService.ServiceConfig{
		Repository:    s.repo,
		UUIDGenerator: &sequenceIDGenerator{},
		SaveQueue:     savequeue.New(&savequeue.Config{Delay: time.Hour}),
		Now:           func() time.Time { return s.clock },
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) stored() []*note.Note {
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return []*note.Note{
		{ID: "session-recap", Title: "Session 12 recap", Content: "The party met the lich.", CreatedAt: created, UpdatedAt: created},
		{ID: "loot-list", Title: "Party loot", Content: "3 healing potions", Pinned: true, CreatedAt: created, UpdatedAt: created},
	}
}

func (s *ServiceTestSuite) TestListLoadsOnceAndIsolatesCallers() {
	s.repo.EXPECT().Load(s.ctx).Return(s.stored(), nil)

	first, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(first, 2)

	first[0].Title = "scribbled over"

	second, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Equal("Session 12 recap", second[0].Title)
}

func (s *ServiceTestSuite) TestGetMissingNote() {
	s.repo.EXPECT().Load(s.ctx).Return(s.stored(), nil)

	_, err := s.service.Get(s.ctx, "nope")
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestPutCreatesWithIDAndTimestamps() {
	s.repo.EXPECT().Load(s.ctx).Return(nil, nil)

	var saved []*note.Note
	s.repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, notes []*note.Note) error {
			saved = notes
			return nil
		})

	created, err := s.service.Put(s.ctx, &notesService.PutNoteInput{
		Title:   "To-do",
		Content: "Identify the amulet",
	})
	s.Require().NoError(err)
	s.Equal("note-1", created.ID)
	s.Equal(s.clock, created.CreatedAt)
	s.Equal(s.clock, created.UpdatedAt)

	s.Require().NoError(s.service.Flush(s.ctx))
	s.Require().Len(saved, 1)
	s.Equal("To-do", saved[0].Title)
}

func (s *ServiceTestSuite) TestPutUpdatePreservesCreatedAt() {
	s.repo.EXPECT().Load(s.ctx).Return(s.stored(), nil)
	s.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	s.clock = s.clock.Add(time.Minute)
	updated, err := s.service.Put(s.ctx, &notesService.PutNoteInput{
		ID:      "session-recap",
		Title:   "Session 12 recap",
		Content: "The party met the lich. It did not go well.",
	})
	s.Require().NoError(err)
	s.Equal(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), updated.CreatedAt)
	s.Equal(s.clock, updated.UpdatedAt)

	s.Require().NoError(s.service.Flush(s.ctx))
}

func (s *ServiceTestSuite) TestPutUpdateMissingNote() {
	s.repo.EXPECT().Load(s.ctx).Return(nil, nil)

	_, err := s.service.Put(s.ctx, &notesService.PutNoteInput{ID: "ghost", Title: "x"})
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestPutRejectsEmptyNote() {
	_, err := s.service.Put(s.ctx, &notesService.PutNoteInput{Title: "  ", Content: " "})
	s.Require().Error(err)
	s.True(apperr.IsValidation(err))
}

func (s *ServiceTestSuite) TestRapidEditsCoalesceToOneSave() {
	s.repo.EXPECT().Load(s.ctx).Return(s.stored(), nil)

	var saved []*note.Note
	s.repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, notes []*note.Note) error {
			saved = notes
			return nil
		})

	for _, content := range []string{"draft one", "draft two", "final"} {
		_, err := s.service.Put(s.ctx, &notesService.PutNoteInput{
			ID:      "session-recap",
			Title:   "Session 12 recap",
			Content: content,
		})
		s.Require().NoError(err)
	}
	s.Require().NoError(s.service.Flush(s.ctx))

	s.Require().Len(saved, 2)
	s.Equal("final", saved[0].Content)
}

func (s *ServiceTestSuite) TestQueuedSnapshotIgnoresLaterEdits() {
	s.repo.EXPECT().Load(s.ctx).Return(s.stored(), nil)
	s.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	created, err := s.service.Put(s.ctx, &notesService.PutNoteInput{Title: "New", Content: "text"})
	s.Require().NoError(err)

	// Mutating the returned clone must not touch the queued snapshot
	// or the service's collection.
	created.Title = "hijacked"

	got, err := s.service.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("New", got.Title)

	s.Require().NoError(s.service.Flush(s.ctx))
}

func (s *ServiceTestSuite) TestDeleteRemovesAndSaves() {
	s.repo.EXPECT().Load(s.ctx).Return(s.stored(), nil)

	var saved []*note.Note
	s.repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, notes []*note.Note) error {
			saved = notes
			return nil
		})

	s.Require().NoError(s.service.Delete(s.ctx, "session-recap"))
	s.Require().NoError(s.service.Flush(s.ctx))

	s.Require().Len(saved, 1)
	s.Equal("loot-list", saved[0].ID)
}

func (s *ServiceTestSuite) TestDeleteMissingNote() {
	s.repo.EXPECT().Load(s.ctx).Return(s.stored(), nil)

	err := s.service.Delete(s.ctx, "ghost")
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestPinFlagRoundTrip() {
	s.repo.EXPECT().Load(s.ctx).Return(s.stored(), nil)
	s.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	pinned, err := s.service.Pin(s.ctx, "session-recap", true)
	s.Require().NoError(err)
	s.True(pinned.Pinned)
	s.Require().NoError(s.service.Flush(s.ctx))

	unpinned, err := s.service.Pin(s.ctx, "session-recap", false)
	s.Require().NoError(err)
	s.False(unpinned.Pinned)
	s.Require().NoError(s.service.Flush(s.ctx))
}

func (s *ServiceTestSuite) TestLoadFailurePropagates() {
	s.repo.EXPECT().
		Load(s.ctx).
		Return(nil, apperr.Unavailable("store offline"))

	_, err := s.service.List(s.ctx)
	s.Require().Error(err)
	s.True(apperr.Is(err, apperr.CodeUnavailable))
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
