package prompt_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// channelPresenter hands presented requests to the test
type channelPresenter struct {
	requests chan *prompt.Request
	err      error
}

func newChannelPresenter() *channelPresenter {
	return &channelPresenter{requests: make(chan *prompt.Request, 4)}
}

func (p *channelPresenter) Present(ctx context.Context, req *prompt.Request) error {
	if p.err != nil {
		return p.err
	}
	p.requests <- req
	return nil
}

type sequenceGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *sequenceGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("token-%d", g.n)
}

func newBroker(presenter prompt.Presenter) *prompt.Broker {
	return prompt.NewBroker(&prompt.BrokerConfig{
		Presenter:     presenter,
		UUIDGenerator: &sequenceGenerator{},
	})
}

func TestBroker_Answer(t *testing.T) {
	presenter := newChannelPresenter()
	broker := newBroker(presenter)

	go func() {
		req := <-presenter.requests
		assert.Equal(t, "token-1", req.Token)
		assert.Equal(t, prompt.KindAttackOptions, req.Kind)
		assert.NoError(t, broker.Answer(req.Token, "u1", map[string]string{
			prompt.FieldDamageType: "cut",
			prompt.FieldAccuracy:   "2",
			prompt.FieldDamage:     "10",
		}))
	}()

	opts, err := broker.AttackOptions(context.Background(), &prompt.Request{UserID: "u1"})

	require.NoError(t, err)
	assert.Equal(t, &prompt.AttackOptions{
		DamageType:          "cut",
		SecondaryDamageType: "cut",
		Accuracy:            2,
		Critical:            10,
		Damage:              10,
	}, opts)
	assert.Zero(t, broker.Pending())
}

func TestBroker_AnsweredExactlyOnce(t *testing.T) {
	presenter := newChannelPresenter()
	broker := newBroker(presenter)

	done := make(chan *prompt.Response, 1)
	go func() {
		resp, err := broker.Ask(context.Background(), &prompt.Request{UserID: "u1", Kind: prompt.KindRollOptions})
		assert.NoError(t, err)
		done <- resp
	}()

	req := <-presenter.requests

	owner, ok := broker.Owner(req.Token)
	assert.True(t, ok)
	assert.Equal(t, "u1", owner)

	assert.True(t, tgerr.IsInvalidArgument(broker.Answer(req.Token, "intruder", nil)))
	require.NoError(t, broker.Cancel(req.Token, "u1"))
	assert.True(t, tgerr.IsNotFound(broker.Answer(req.Token, "u1", nil)))
	assert.True(t, tgerr.IsNotFound(broker.Cancel(req.Token, "u1")))

	resp := <-done
	assert.True(t, resp.Cancelled)

	_, ok = broker.Owner(req.Token)
	assert.False(t, ok)
}

func TestBroker_CancelledOptions(t *testing.T) {
	presenter := newChannelPresenter()
	broker := newBroker(presenter)

	go func() {
		req := <-presenter.requests
		assert.NoError(t, broker.Cancel(req.Token, "u1"))
	}()

	opts, err := broker.AuraShieldOptions(context.Background(), &prompt.Request{UserID: "u1"})

	require.NoError(t, err)
	assert.True(t, opts.Cancelled)
}

func TestBroker_ContextEnds(t *testing.T) {
	presenter := newChannelPresenter()
	broker := newBroker(presenter)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := broker.RollOptions(ctx, &prompt.Request{UserID: "u1"})

	assert.True(t, tgerr.IsCancelled(err))
	assert.Zero(t, broker.Pending())

	req := <-presenter.requests
	assert.True(t, tgerr.IsNotFound(broker.Answer(req.Token, "u1", nil)))
}

func TestBroker_PresentFails(t *testing.T) {
	presenter := newChannelPresenter()
	presenter.err = errors.New("discord down")
	broker := newBroker(presenter)

	_, err := broker.Ask(context.Background(), &prompt.Request{UserID: "u1"})

	assert.Error(t, err)
	assert.Zero(t, broker.Pending())
}

func TestBroker_InvalidRequest(t *testing.T) {
	broker := newBroker(newChannelPresenter())

	_, err := broker.Ask(context.Background(), nil)
	assert.True(t, tgerr.IsInvalidArgument(err))

	_, err = broker.Ask(context.Background(), &prompt.Request{})
	assert.True(t, tgerr.IsInvalidArgument(err))
}
