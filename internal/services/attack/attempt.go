package attack

import (
	"sync"

	"github.com/KirkDiggler/togarashi-bot/internal/damage"
	"github.com/KirkDiggler/togarashi-bot/internal/dice"
	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	"github.com/KirkDiggler/togarashi-bot/internal/prompt"
)

// State is a step of an attack attempt
type State string

const (
	StateSelectingCaster State = "selecting_caster"
	StateSelectingTarget State = "selecting_target"
	StateAwaitingOptions State = "awaiting_options"
	StateResolving       State = "resolving"
	StateDispatching     State = "dispatching"
	StateDone            State = "done"
	// StateAborted ends an attempt before anything was sent to the authority
	StateAborted State = "aborted"
	// StateFailed ends an attempt whose dispatch did not reach the authority
	StateFailed State = "failed"
)

// Terminal reports whether no further transition can happen
func (s State) Terminal() bool {
	return s == StateDone || s == StateAborted || s == StateFailed
}

// Attempt records one attack from caster selection to dispatch
type Attempt struct {
	ID        string
	UserID    string
	ChannelID string

	State   State
	History []State

	Caster  *entities.Actor
	Target  *entities.Actor
	Options *prompt.AttackOptions
	Outcome *dice.AttackOutcome
	Result  *damage.Result
	// CommandID is set once a command was handed to the authority
	CommandID string
	Err       error

	cancel     chan struct{}
	cancelOnce sync.Once
}

func newAttempt(id, userID, channelID string) *Attempt {
	return &Attempt{
		ID:        id,
		UserID:    userID,
		ChannelID: channelID,
		State:     StateSelectingCaster,
		History:   []State{StateSelectingCaster},
		cancel:    make(chan struct{}),
	}
}

// transition moves to next and records it. Aborting is only possible before
// dispatching; terminal states never change.
func (a *Attempt) transition(next State) bool {
	if a.State.Terminal() {
		return false
	}
	if next == StateAborted && a.State == StateDispatching {
		return false
	}

	a.State = next
	a.History = append(a.History, next)
	return true
}

// requestCancel unblocks a pending target wait. Safe to call more than once.
func (a *Attempt) requestCancel() {
	a.cancelOnce.Do(func() { close(a.cancel) })
}

// Cancelled is closed once the attempt was asked to stop
func (a *Attempt) Cancelled() <-chan struct{} {
	return a.cancel
}
