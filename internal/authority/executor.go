package authority

import (
	"context"
	"log"
	"sync"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/events"
	"github.com/KirkDiggler/togarashi-bot/internal/formula"
	tgotel "github.com/KirkDiggler/togarashi-bot/internal/platform/otel"
	"github.com/KirkDiggler/togarashi-bot/internal/repositories/actors"
	"github.com/KirkDiggler/togarashi-bot/internal/repositories/formulas"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("github.com/KirkDiggler/togarashi-bot/internal/authority")

// ExecutorConfig holds the executor's dependencies
type ExecutorConfig struct {
	Actors   actors.Repository
	Formulas formulas.Repository
	EventBus *events.Bus

	// Evaluator defaults to formula.NewEngine()
	Evaluator formula.Evaluator
}

// Executor applies commands to actors. Commands touching the same actor run
// one at a time so concurrent attacks on one target never lose an update.
type Executor struct {
	actors    actors.Repository
	formulas  formulas.Repository
	evaluator formula.Evaluator
	eventBus  *events.Bus

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewExecutor creates an executor
func NewExecutor(cfg *ExecutorConfig) *Executor {
	if cfg == nil || cfg.Actors == nil {
		panic("actor repository is required")
	}
	if cfg.Formulas == nil {
		panic("formula repository is required")
	}

	evaluator := cfg.Evaluator
	if evaluator == nil {
		evaluator = formula.NewEngine()
	}

	return &Executor{
		actors:    cfg.Actors,
		formulas:  cfg.Formulas,
		evaluator: evaluator,
		eventBus:  cfg.EventBus,
		locks:     make(map[string]*sync.Mutex),
	}
}

// Execute applies cmd. Failures keep their code; errors without one are
// reported as internal so callers can tell them from an unreachable authority.
func (e *Executor) Execute(ctx context.Context, cmd *Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ctx, span := tracer.Start(tgotel.Extract(ctx, cmd.Trace), "authority.execute")
	defer span.End()
	span.SetAttributes(
		attribute.String("command.id", cmd.ID),
		attribute.String("command.kind", string(cmd.Kind)),
	)

	var err error
	switch cmd.Kind {
	case KindExecuteDamageFromAttack:
		err = e.applyDamage(ctx, cmd)
	case KindSetWeaponBlock:
		err = e.setWeaponBlock(ctx, cmd)
	case KindSetAuraShield:
		err = e.setAuraShield(ctx, cmd)
	case KindTickStatusModifiers:
		err = e.tickStatusModifiers(ctx, cmd)
	}
	if err != nil {
		if tgerr.GetCode(err) == tgerr.CodeUnknown {
			err = tgerr.WrapWithCode(err, tgerr.CodeInternal, "authority failed to apply command")
		}
		span.RecordError(err)
		log.Printf("Authority: Command %s (%s) failed: %v", cmd.ID, cmd.Kind, err)
	}
	return err
}

func (e *Executor) applyDamage(ctx context.Context, cmd *Command) error {
	unlock := e.lock(cmd.TargetID)
	defer unlock()

	target, err := e.actors.Get(ctx, cmd.TargetID)
	if err != nil {
		return tgerr.Wrap(err, "failed to load attack target")
	}

	before := target.Health.Current
	removed := target.Health.Damage(cmd.Damage.TotalDamage)
	if cmd.ApplyEffects {
		target.PendingEffects++
	}

	if err := e.actors.Save(ctx, target); err != nil {
		return tgerr.Wrap(err, "failed to save attack target")
	}

	log.Printf("Authority: %s took %d damage from %s (%d -> %d)",
		target.Name, removed, cmd.CasterID, before, target.Health.Current)

	e.emit(&events.DamageAppliedEvent{
		BaseEvent:    events.BaseEvent{Type: events.EventTypeDamageApplied},
		CommandID:    cmd.ID,
		CasterID:     cmd.CasterID,
		TargetID:     target.ID,
		TargetName:   target.Name,
		Damage:       removed,
		HealthBefore: before,
		HealthAfter:  target.Health.Current,
		ApplyEffects: cmd.ApplyEffects,
	})
	return nil
}

func (e *Executor) setWeaponBlock(ctx context.Context, cmd *Command) error {
	unlock := e.lock(cmd.CasterID)
	defer unlock()

	actor, err := e.actors.Get(ctx, cmd.CasterID)
	if err != nil {
		return tgerr.Wrap(err, "failed to load actor")
	}
	if cmd.Active && actor.Weapon == nil {
		return tgerr.InvalidArgumentf("%s has no weapon equipped", actor.Name)
	}

	actor.WeaponBlockActive = cmd.Active
	if err := e.actors.Save(ctx, actor); err != nil {
		return tgerr.Wrap(err, "failed to save actor")
	}

	log.Printf("Authority: %s weapon block set to %t", actor.Name, cmd.Active)
	e.emit(&events.StanceChangedEvent{
		BaseEvent:   events.BaseEvent{Type: events.EventTypeStanceChanged},
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		WeaponBlock: actor.WeaponBlockActive,
		AuraShield:  actor.AuraShield,
	})
	return nil
}

func (e *Executor) setAuraShield(ctx context.Context, cmd *Command) error {
	unlock := e.lock(cmd.CasterID)
	defer unlock()

	actor, err := e.actors.Get(ctx, cmd.CasterID)
	if err != nil {
		return tgerr.Wrap(err, "failed to load actor")
	}

	actor.AuraShield.Active = cmd.Active
	actor.AuraShield.FullBody = cmd.Active && cmd.FullBody
	actor.AuraShield.Orange = cmd.Active && cmd.Orange
	if err := e.actors.Save(ctx, actor); err != nil {
		return tgerr.Wrap(err, "failed to save actor")
	}

	log.Printf("Authority: %s aura shield set to %+v", actor.Name, actor.AuraShield)
	e.emit(&events.StanceChangedEvent{
		BaseEvent:   events.BaseEvent{Type: events.EventTypeStanceChanged},
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		WeaponBlock: actor.WeaponBlockActive,
		AuraShield:  actor.AuraShield,
	})
	return nil
}

func (e *Executor) tickStatusModifiers(ctx context.Context, cmd *Command) error {
	set, err := e.formulas.Get(ctx)
	if err != nil {
		return tgerr.Wrap(err, "failed to load formulas")
	}

	unlock := e.lock(cmd.CasterID)
	defer unlock()

	actor, err := e.actors.Get(ctx, cmd.CasterID)
	if err != nil {
		return tgerr.Wrap(err, "failed to load actor")
	}

	actor.TickStatusModifiers()
	if err := actor.RefreshDerivedStats(set, e.evaluator); err != nil {
		return tgerr.Wrapf(err, "failed to derive stats for %s", actor.Name)
	}
	if err := e.actors.Save(ctx, actor); err != nil {
		return tgerr.Wrap(err, "failed to save actor")
	}

	log.Printf("Authority: %s ticked status modifiers (health %d/%d)", actor.Name, actor.Health.Current, actor.Health.Max)
	e.emit(&events.StatsTickedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeStatsTicked},
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Health:    actor.Health,
		VitalAura: actor.VitalAura,
		DailyAura: actor.DailyAura,
	})
	return nil
}

// lock serializes work on one actor and returns the matching unlock
func (e *Executor) lock(actorID string) func() {
	e.mu.Lock()
	l, ok := e.locks[actorID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[actorID] = l
	}
	e.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (e *Executor) emit(event events.Event) {
	if e.eventBus == nil {
		return
	}
	if err := e.eventBus.Emit(event); err != nil {
		log.Printf("Authority: Failed to emit %s: %v", event.GetType(), err)
	}
}
