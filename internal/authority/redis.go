package authority

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	tgotel "github.com/KirkDiggler/togarashi-bot/internal/platform/otel"
	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the pub/sub channel commands travel on
const DefaultChannel = "togarashi:authority"

// RedisDispatcherConfig holds configuration for the Redis dispatcher
type RedisDispatcherConfig struct {
	Client  redis.UniversalClient
	Channel string
}

// RedisDispatcher publishes commands for an authority subscribed elsewhere
type RedisDispatcher struct {
	client  redis.UniversalClient
	channel string
}

// NewRedisDispatcher creates a Redis-backed dispatcher
func NewRedisDispatcher(cfg *RedisDispatcherConfig) *RedisDispatcher {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	channel := cfg.Channel
	if channel == "" {
		channel = DefaultChannel
	}

	return &RedisDispatcher{
		client:  cfg.Client,
		channel: channel,
	}
}

// Dispatch publishes cmd. When no authority is subscribed the command is
// dropped and NoAuthorityAvailable returned.
func (d *RedisDispatcher) Dispatch(ctx context.Context, cmd *Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	envelope := *cmd
	envelope.Trace = tgotel.Inject(ctx)

	payload, err := json.Marshal(&envelope)
	if err != nil {
		return tgerr.WrapWithCode(err, tgerr.CodeInternal, "failed to serialize command")
	}

	receivers, err := d.client.Publish(ctx, d.channel, string(payload)).Result()
	if err != nil {
		return tgerr.WrapWithCode(err, tgerr.CodeNoAuthorityAvailable, "failed to reach the authority")
	}
	if receivers == 0 {
		return tgerr.NoAuthorityAvailable("no authority is listening").WithMeta("channel", d.channel)
	}

	log.Printf("Authority: Published %s %s to %d receiver(s)", cmd.Kind, cmd.ID, receivers)
	return nil
}

// SubscriberConfig holds configuration for the subscriber
type SubscriberConfig struct {
	Client  redis.UniversalClient
	Channel string
	Handler Handler
}

// Subscriber consumes published commands and hands them to a handler, one at a time
type Subscriber struct {
	client  redis.UniversalClient
	channel string
	handler Handler
}

// NewSubscriber creates a subscriber
func NewSubscriber(cfg *SubscriberConfig) *Subscriber {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}
	if cfg.Handler == nil {
		panic("handler is required")
	}

	channel := cfg.Channel
	if channel == "" {
		channel = DefaultChannel
	}

	return &Subscriber{
		client:  cfg.Client,
		channel: channel,
		handler: cfg.Handler,
	}
}

// Run consumes commands until ctx ends
func (s *Subscriber) Run(ctx context.Context) error {
	pubsub := s.client.Subscribe(ctx, s.channel)
	defer func() {
		if err := pubsub.Close(); err != nil {
			log.Printf("Authority: Failed to close subscription: %v", err)
		}
	}()

	// Wait for the subscription to be confirmed so publishers count us
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", s.channel, err)
	}
	log.Printf("Authority: Listening on %s", s.channel)

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			if err := s.handle(ctx, msg.Payload); err != nil {
				log.Printf("Authority: Dropped command: %v", err)
			}
		}
	}
}

func (s *Subscriber) handle(ctx context.Context, payload string) error {
	var cmd Command
	if err := json.Unmarshal([]byte(payload), &cmd); err != nil {
		return fmt.Errorf("failed to decode command: %w", err)
	}

	return s.handler.Execute(ctx, &cmd)
}
