package characters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mock redismock.ClientMock
	repo Repository
	ctx  context.Context
}

func (s *RedisRepoTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	repo, err := NewRedisRepository(&RedisRepoConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestCreate() {
	char := testCharacter("test-id", "Finnan")

	s.mock.ExpectExists("character:test-id").SetVal(0)
	s.mock.ExpectTxPipeline()
	s.mock.Regexp().ExpectSet("character:test-id", `.*"name": "Finnan".*`, 0).SetVal("OK")
	s.mock.ExpectSAdd("characters:index", "test-id").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Create(s.ctx, char))
}

func (s *RedisRepoTestSuite) TestCreateAlreadyExists() {
	s.mock.ExpectExists("character:test-id").SetVal(1)

	err := s.repo.Create(s.ctx, testCharacter("test-id", "Finnan"))
	s.Require().Error(err)
	s.True(apperr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreateDependencyError() {
	s.mock.ExpectExists("character:test-id").SetErr(errors.New("redis down"))

	err := s.repo.Create(s.ctx, testCharacter("test-id", "Finnan"))
	s.Require().Error(err)
	s.True(apperr.Is(err, apperr.CodeUnavailable))
}

func (s *RedisRepoTestSuite) TestGet() {
	char := testCharacter("test-id", "Finnan")
	data, err := encodeRecord(newRecord(char, time.Now().UTC()))
	s.Require().NoError(err)

	s.mock.ExpectGet("character:test-id").SetVal(string(data))

	got, err := s.repo.Get(s.ctx, "test-id")
	s.Require().NoError(err)
	s.Equal(char, got)
}

func (s *RedisRepoTestSuite) TestGetNotFound() {
	s.mock.ExpectGet("character:test-id").RedisNil()

	_, err := s.repo.Get(s.ctx, "test-id")
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestListSkipsOrphanedIndexEntries() {
	now := time.Now().UTC()
	astrid, err := encodeRecord(newRecord(testCharacter("id-a", "Astrid"), now))
	s.Require().NoError(err)
	borin, err := encodeRecord(newRecord(testCharacter("id-b", "Borin"), now))
	s.Require().NoError(err)

	s.mock.ExpectSMembers("characters:index").SetVal([]string{"id-b", "id-gone", "id-a"})
	s.mock.ExpectGet("character:id-b").SetVal(string(borin))
	s.mock.ExpectGet("character:id-gone").RedisNil()
	s.mock.ExpectGet("character:id-a").SetVal(string(astrid))

	chars, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(chars, 2)
	s.Equal("Astrid", chars[0].Name)
	s.Equal("Borin", chars[1].Name)
}

func (s *RedisRepoTestSuite) TestUpdate() {
	char := testCharacter("test-id", "Finnan")
	data, err := encodeRecord(newRecord(char, time.Now().UTC()))
	s.Require().NoError(err)

	s.mock.ExpectGet("character:test-id").SetVal(string(data))
	s.mock.Regexp().ExpectSet("character:test-id", `.*"revision": 2.*`, 0).SetVal("OK")

	char.Notes = "updated"
	s.NoError(s.repo.Update(s.ctx, char))
}

func (s *RedisRepoTestSuite) TestUpdateMissing() {
	s.mock.ExpectGet("character:test-id").RedisNil()

	err := s.repo.Update(s.ctx, testCharacter("test-id", "Finnan"))
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	s.mock.ExpectDel("character:test-id").SetVal(1)
	s.mock.ExpectSRem("characters:index", "test-id").SetVal(1)

	s.NoError(s.repo.Delete(s.ctx, "test-id"))
}

func (s *RedisRepoTestSuite) TestDeleteMissing() {
	s.mock.ExpectDel("character:test-id").SetVal(0)

	err := s.repo.Delete(s.ctx, "test-id")
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
}
