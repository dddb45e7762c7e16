// Package attack runs player actions from choosing who acts to handing the
// outcome to the authority: attacks, weapon block, aura shield and free rolls.
package attack

//go:generate mockgen -destination=mock/mock_service.go -package=mockattack -source=service.go

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/togarashi-bot/internal/authority"
	"github.com/KirkDiggler/togarashi-bot/internal/damage"
	"github.com/KirkDiggler/togarashi-bot/internal/dice"
	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/events"
	"github.com/KirkDiggler/togarashi-bot/internal/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultPollInterval is how often the target source is checked
const DefaultPollInterval = 100 * time.Millisecond

// Intuition checks for defensive stances
const (
	stanceDifficulty = 6
	stanceCritical   = 10
	// freeRollCritical is the critical face of a free roll
	freeRollCritical = 10
)

var tracer = otel.Tracer("github.com/KirkDiggler/togarashi-bot/internal/services/attack")

// Service defines the player action interface
type Service interface {
	// Attack runs a full attack attempt. The returned attempt is never nil and
	// records where it stopped; the error says why.
	Attack(ctx context.Context, input *ActionInput) (*Attempt, error)

	// Cancel stops an attack that is still waiting for a target
	Cancel(attemptID, userID string) error

	// UseWeaponBlock rolls intuition to raise the caster's weapon block
	UseWeaponBlock(ctx context.Context, input *ActionInput) (*ActionResult, error)

	// UseAuraShield asks for a shield shape and rolls intuition to raise it
	UseAuraShield(ctx context.Context, input *ActionInput) (*ActionResult, error)

	// FreeRoll asks for a pool and difficulty and counts successes
	FreeRoll(ctx context.Context, input *ActionInput) (*ActionResult, error)
}

// ActionInput identifies who acts and where to answer
type ActionInput struct {
	UserID    string
	ChannelID string
}

// ActionResult is the outcome of a single-roll action
type ActionResult struct {
	Caster  *entities.Actor
	Outcome *dice.GuardOutcome
	// Dispatched is true when a command reached the authority
	Dispatched bool
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Actors     ActorDirectory
	Targets    TargetSource
	Prompter   Prompter
	Notifier   Notifier
	Dispatcher authority.Dispatcher
	Formulas   FormulaStore
	Roller     dice.Roller

	// Optional
	Calculator    *damage.Calculator
	EventBus      *events.Bus
	UUIDGenerator uuid.Generator
	PollInterval  time.Duration
}

type service struct {
	actors       ActorDirectory
	targets      TargetSource
	prompter     Prompter
	notifier     Notifier
	dispatcher   authority.Dispatcher
	formulas     FormulaStore
	roller       dice.Roller
	calculator   *damage.Calculator
	eventBus     *events.Bus
	uuid         uuid.Generator
	pollInterval time.Duration

	mu       sync.Mutex
	attempts map[string]*Attempt
}

// NewService creates a new attack service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Actors == nil {
		panic("actor directory is required")
	}
	if cfg.Targets == nil {
		panic("target source is required")
	}
	if cfg.Prompter == nil {
		panic("prompter is required")
	}
	if cfg.Notifier == nil {
		panic("notifier is required")
	}
	if cfg.Dispatcher == nil {
		panic("dispatcher is required")
	}
	if cfg.Formulas == nil {
		panic("formula store is required")
	}
	if cfg.Roller == nil {
		panic("dice roller is required")
	}

	svc := &service{
		actors:       cfg.Actors,
		targets:      cfg.Targets,
		prompter:     cfg.Prompter,
		notifier:     cfg.Notifier,
		dispatcher:   cfg.Dispatcher,
		formulas:     cfg.Formulas,
		roller:       cfg.Roller,
		calculator:   cfg.Calculator,
		eventBus:     cfg.EventBus,
		uuid:         cfg.UUIDGenerator,
		pollInterval: cfg.PollInterval,
		attempts:     make(map[string]*Attempt),
	}

	if svc.calculator == nil {
		svc.calculator = damage.NewCalculator(nil)
	}
	if svc.uuid == nil {
		svc.uuid = uuid.NewGoogleUUIDGenerator()
	}
	if svc.pollInterval <= 0 {
		svc.pollInterval = DefaultPollInterval
	}

	return svc
}

// Cancel stops an attack that is still waiting for a target
func (s *service) Cancel(attemptID, userID string) error {
	s.mu.Lock()
	attempt, ok := s.attempts[attemptID]
	s.mu.Unlock()

	if !ok {
		return tgerr.NotFound("this attack is no longer waiting").WithMeta("attempt_id", attemptID)
	}
	if attempt.UserID != userID {
		return tgerr.InvalidArgument("only the attacking player can cancel this attack")
	}

	attempt.requestCancel()
	return nil
}

// selectCaster picks the actor the user acts as
func (s *service) selectCaster(ctx context.Context, userID string) (*entities.Actor, error) {
	controlled, err := s.actors.ControlledActors(ctx, userID)
	if err != nil {
		return nil, tgerr.Wrap(err, "failed to look up controlled actors")
	}

	switch len(controlled) {
	case 0:
		return nil, tgerr.New(tgerr.CodeNoActorAvailable, "user controls no actor").WithMeta("user_id", userID)
	case 1:
		return controlled[0], nil
	}

	selected, err := s.actors.SelectedActor(ctx, userID)
	if err != nil {
		return nil, tgerr.Wrap(err, "failed to look up selected actor")
	}
	for _, actor := range controlled {
		if actor.ID == selected {
			return actor, nil
		}
	}

	return nil, tgerr.New(tgerr.CodeAmbiguousActor, "user controls several actors and selected none of them").
		WithMeta("user_id", userID).
		WithMeta("controlled", len(controlled))
}

func (s *service) notify(ctx context.Context, notice *Notice) {
	if err := s.notifier.Notify(ctx, notice); err != nil {
		log.Printf("Attack: Failed to notify user %s: %v", notice.UserID, err)
	}
}

func (s *service) notifyError(ctx context.Context, input *ActionInput, err error) {
	s.notify(ctx, &Notice{
		Kind:      NoticeError,
		UserID:    input.UserID,
		ChannelID: input.ChannelID,
		Message:   tgerr.UserMessage(err),
	})
}

func (s *service) emit(event events.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Emit(event); err != nil {
		log.Printf("Attack: Failed to emit %s: %v", event.GetType(), err)
	}
}

func validateInput(input *ActionInput) error {
	if input == nil {
		return tgerr.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return tgerr.InvalidArgument("user ID is required")
	}
	return nil
}

// endSpan records err on span and ends it
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(tgerr.GetCode(err)))
	}
	span.End()
}

func stateAttr(state State) attribute.KeyValue {
	return attribute.String("attack.state", string(state))
}

func describeTypes(types damage.TypePair) string {
	if types[0] == types[1] {
		return types[0]
	}
	return fmt.Sprintf("%s/%s", types[0], types[1])
}
