package authority

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/KirkDiggler/togarashi-bot/internal/damage"
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type recordingHandler struct {
	commands []*Command
	err      error
}

func (h *recordingHandler) Execute(ctx context.Context, cmd *Command) error {
	h.commands = append(h.commands, cmd)
	return h.err
}

type RedisDispatcherTestSuite struct {
	suite.Suite
	client     *redis.Client
	mock       redismock.ClientMock
	dispatcher *RedisDispatcher
}

func (s *RedisDispatcherTestSuite) SetupTest() {
	s.client, s.mock = redismock.NewClientMock()
	s.dispatcher = NewRedisDispatcher(&RedisDispatcherConfig{Client: s.client})
}

func (s *RedisDispatcherTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisDispatcherTestSuite(t *testing.T) {
	suite.Run(t, new(RedisDispatcherTestSuite))
}

func (s *RedisDispatcherTestSuite) command() *Command {
	return &Command{
		ID:          "cmd-1",
		Kind:        KindExecuteDamageFromAttack,
		CasterID:    "a1",
		TargetID:    "a2",
		Damage:      &damage.Result{UpperDamage: 30, LowerDamage: 10, TotalDamage: 40},
		DamageTypes: damage.TypePair{"cut", "blunt"},
	}
}

func (s *RedisDispatcherTestSuite) payload(cmd *Command) string {
	data, err := json.Marshal(cmd)
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisDispatcherTestSuite) TestDispatch() {
	cmd := s.command()
	s.mock.ExpectPublish(DefaultChannel, s.payload(cmd)).SetVal(1)

	s.NoError(s.dispatcher.Dispatch(context.Background(), cmd))
}

func (s *RedisDispatcherTestSuite) TestDispatch_NobodyListening() {
	cmd := s.command()
	s.mock.ExpectPublish(DefaultChannel, s.payload(cmd)).SetVal(0)

	err := s.dispatcher.Dispatch(context.Background(), cmd)

	s.Equal(tgerr.CodeNoAuthorityAvailable, tgerr.GetCode(err))
}

func (s *RedisDispatcherTestSuite) TestDispatch_RedisDown() {
	cmd := s.command()
	s.mock.ExpectPublish(DefaultChannel, s.payload(cmd)).SetErr(errors.New("connection refused"))

	err := s.dispatcher.Dispatch(context.Background(), cmd)

	s.Equal(tgerr.CodeNoAuthorityAvailable, tgerr.GetCode(err))
}

func (s *RedisDispatcherTestSuite) TestDispatch_InvalidCommand() {
	err := s.dispatcher.Dispatch(context.Background(), &Command{Kind: KindSetAuraShield})

	s.True(tgerr.IsInvalidArgument(err))
}

func (s *RedisDispatcherTestSuite) TestSubscriberHandle() {
	handler := &recordingHandler{}
	subscriber := NewSubscriber(&SubscriberConfig{Client: s.client, Handler: handler})

	cmd := s.command()
	s.Require().NoError(subscriber.handle(context.Background(), s.payload(cmd)))
	s.Require().Len(handler.commands, 1)
	s.Equal(cmd, handler.commands[0])

	s.Error(subscriber.handle(context.Background(), "{not json"))

	handler.err = errors.New("boom")
	s.Error(subscriber.handle(context.Background(), s.payload(cmd)))
}
