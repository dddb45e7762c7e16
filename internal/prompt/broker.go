// Package prompt pairs questions the bot asks a player with the answers that
// arrive later through another interaction. Every request gets a token and is
// completed exactly once, by an answer, a cancel or its context ending.
package prompt

import (
	"context"
	"log"
	"sync"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/uuid"
)

// Kind identifies which dialog a request stands for
type Kind string

const (
	KindAttackOptions     Kind = "attack_options"
	KindAuraShieldOptions Kind = "aura_shield_options"
	KindRollOptions       Kind = "roll_options"
)

// Request is one open question to a player
type Request struct {
	Token     string
	Kind      Kind
	UserID    string
	ChannelID string
	// CasterName and TargetName label the dialog
	CasterName string
	TargetName string
}

// Response is how a request was completed
type Response struct {
	Values    map[string]string
	Cancelled bool
}

// Presenter shows an opened request to the player
type Presenter interface {
	Present(ctx context.Context, req *Request) error
}

// BrokerConfig holds the broker's dependencies
type BrokerConfig struct {
	Presenter     Presenter
	UUIDGenerator uuid.Generator
}

type pending struct {
	userID string
	done   chan Response
}

// Broker tracks open requests by token
type Broker struct {
	presenter Presenter
	uuid      uuid.Generator

	mu      sync.Mutex
	pending map[string]*pending
}

// NewBroker creates a broker. The presenter is required.
func NewBroker(cfg *BrokerConfig) *Broker {
	if cfg == nil || cfg.Presenter == nil {
		panic("presenter is required")
	}

	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}

	return &Broker{
		presenter: cfg.Presenter,
		uuid:      generator,
		pending:   make(map[string]*pending),
	}
}

// Ask opens req, presents it and blocks until it is answered or cancelled or
// ctx ends. The token is assigned here.
func (b *Broker) Ask(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, tgerr.InvalidArgument("prompt request cannot be nil")
	}
	if req.UserID == "" {
		return nil, tgerr.InvalidArgument("prompt request needs a user")
	}

	req.Token = b.uuid.New()
	p := &pending{
		userID: req.UserID,
		done:   make(chan Response, 1),
	}

	b.mu.Lock()
	b.pending[req.Token] = p
	b.mu.Unlock()
	defer b.remove(req.Token)

	if err := b.presenter.Present(ctx, req); err != nil {
		return nil, tgerr.Wrap(err, "failed to present prompt")
	}

	select {
	case resp := <-p.done:
		return &resp, nil
	case <-ctx.Done():
		log.Printf("Prompt: request %s for user %s abandoned: %v", req.Token, req.UserID, ctx.Err())
		return nil, tgerr.WrapWithCode(ctx.Err(), tgerr.CodeCancelled, "prompt abandoned")
	}
}

// Answer completes the request with values. Unknown or already completed
// tokens are NotFound; answers from another user are rejected.
func (b *Broker) Answer(token, userID string, values map[string]string) error {
	return b.complete(token, userID, Response{Values: values})
}

// Cancel completes the request as cancelled
func (b *Broker) Cancel(token, userID string) error {
	return b.complete(token, userID, Response{Cancelled: true})
}

// Owner returns the user an open request is waiting on
func (b *Broker) Owner(token string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, exists := b.pending[token]
	if !exists {
		return "", false
	}
	return p.userID, true
}

// Pending returns the number of open requests
func (b *Broker) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

func (b *Broker) complete(token, userID string, resp Response) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, exists := b.pending[token]
	if !exists {
		return tgerr.NotFound("this prompt is no longer open").WithMeta("token", token)
	}
	if p.userID != userID {
		return tgerr.InvalidArgument("this prompt belongs to another player").WithMeta("token", token)
	}

	delete(b.pending, token)
	p.done <- resp
	return nil
}

func (b *Broker) remove(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.pending, token)
}
