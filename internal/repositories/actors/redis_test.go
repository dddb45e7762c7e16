package actors

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepoTestSuite struct {
	suite.Suite
	client *redis.Client
	mock   redismock.ClientMock
	repo   Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.client, s.mock = redismock.NewClientMock()
	s.repo = NewRedis(s.client)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) actorJSON(actor *entities.Actor) string {
	data, err := json.Marshal(actor)
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	actor := &entities.Actor{ID: "a1", Name: "Kenji", ControllerIDs: []string{"u1"}}

	// Happy path
	s.mock.ExpectGet("actor:a1").SetVal(s.actorJSON(actor))

	got, err := s.repo.Get(ctx, "a1")
	s.Require().NoError(err)
	s.Equal("Kenji", got.Name)

	// Missing
	s.mock.ExpectGet("actor:a1").RedisNil()

	_, err = s.repo.Get(ctx, "a1")
	s.True(tgerr.IsNotFound(err))

	// Dependency error
	s.mock.ExpectGet("actor:a1").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(ctx, "a1")
	s.Error(err)
	s.False(tgerr.IsNotFound(err))

	// Input validation
	_, err = s.repo.Get(ctx, "")
	s.True(tgerr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestSave_New() {
	ctx := context.Background()
	actor := &entities.Actor{ID: "a1", Name: "Kenji", ControllerIDs: []string{"u1"}}

	s.mock.ExpectGet("actor:a1").RedisNil()
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("actor:a1", s.actorJSON(actor), 0).SetVal("OK")
	s.mock.ExpectSAdd("actors", "a1").SetVal(1)
	s.mock.ExpectSAdd("user:u1:actors", "a1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Save(ctx, actor))
}

func (s *RedisRepoTestSuite) TestSave_ControllerChanged() {
	ctx := context.Background()
	before := &entities.Actor{ID: "a1", ControllerIDs: []string{"u1"}}
	after := &entities.Actor{ID: "a1", ControllerIDs: []string{"u2"}}

	s.mock.ExpectGet("actor:a1").SetVal(s.actorJSON(before))
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("actor:a1", s.actorJSON(after), 0).SetVal("OK")
	s.mock.ExpectSAdd("actors", "a1").SetVal(0)
	s.mock.ExpectSRem("user:u1:actors", "a1").SetVal(1)
	s.mock.ExpectSAdd("user:u2:actors", "a1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Save(ctx, after))
}

func (s *RedisRepoTestSuite) TestSave_LookupFails() {
	ctx := context.Background()

	s.mock.ExpectGet("actor:a1").SetErr(errors.New("redis error"))

	s.Error(s.repo.Save(ctx, &entities.Actor{ID: "a1"}))
	s.True(tgerr.IsInvalidArgument(s.repo.Save(ctx, nil)))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()
	actor := &entities.Actor{ID: "a1", ControllerIDs: []string{"u1"}}

	s.mock.ExpectGet("actor:a1").SetVal(s.actorJSON(actor))
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("actor:a1").SetVal(1)
	s.mock.ExpectSRem("actors", "a1").SetVal(1)
	s.mock.ExpectSRem("user:u1:actors", "a1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Delete(ctx, "a1"))
}

func (s *RedisRepoTestSuite) TestControlledBy() {
	ctx := context.Background()
	s.mock.MatchExpectationsInOrder(false)

	s.mock.ExpectSMembers("user:u1:actors").SetVal([]string{"b", "a", "gone"})
	s.mock.ExpectGet("actor:a").SetVal(s.actorJSON(&entities.Actor{ID: "a"}))
	s.mock.ExpectGet("actor:b").SetVal(s.actorJSON(&entities.Actor{ID: "b"}))
	s.mock.ExpectGet("actor:gone").RedisNil()

	got, err := s.repo.ControlledBy(ctx, "u1")
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("a", got[0].ID)
	s.Equal("b", got[1].ID)
}

func (s *RedisRepoTestSuite) TestList_Error() {
	ctx := context.Background()

	s.mock.ExpectSMembers("actors").SetErr(errors.New("redis error"))

	_, err := s.repo.List(ctx)
	s.Error(err)
}
