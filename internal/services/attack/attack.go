package attack

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/togarashi-bot/internal/authority"
	"github.com/KirkDiggler/togarashi-bot/internal/damage"
	"github.com/KirkDiggler/togarashi-bot/internal/dice"
	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/events"
	"github.com/KirkDiggler/togarashi-bot/internal/prompt"
	"go.opentelemetry.io/otel/attribute"
)

// Attack runs one attempt through the state machine. At most one command is
// dispatched per attempt and nothing is dispatched once it aborted.
func (s *service) Attack(ctx context.Context, input *ActionInput) (*Attempt, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	attempt := newAttempt(s.uuid.New(), input.UserID, input.ChannelID)
	s.mu.Lock()
	s.attempts[attempt.ID] = attempt
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.attempts, attempt.ID)
		s.mu.Unlock()
	}()

	ctx, span := tracer.Start(ctx, "attack.attempt")
	span.SetAttributes(
		attribute.String("attack.id", attempt.ID),
		attribute.String("attack.user_id", input.UserID),
	)

	log.Printf("Attack: Attempt %s started by user %s", attempt.ID, input.UserID)
	s.emit(&events.AttackStartedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeAttackStarted},
		AttemptID: attempt.ID,
		UserID:    input.UserID,
	})

	err := s.run(ctx, attempt)
	if err != nil {
		attempt.Err = err
		if !attempt.transition(StateAborted) {
			attempt.transition(StateFailed)
		}
		log.Printf("Attack: Attempt %s ended in %s: %v", attempt.ID, attempt.State, err)

		s.emit(&events.AttackAbortedEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypeAttackAborted},
			AttemptID: attempt.ID,
			UserID:    input.UserID,
			State:     string(attempt.History[len(attempt.History)-2]),
			Err:       err,
		})
		s.notifyError(ctx, input, err)
	}

	span.SetAttributes(stateAttr(attempt.State))
	endSpan(span, err)
	return attempt, err
}

func (s *service) run(ctx context.Context, attempt *Attempt) error {
	input := &ActionInput{UserID: attempt.UserID, ChannelID: attempt.ChannelID}

	// SelectingCaster
	caster, err := s.selectCaster(ctx, attempt.UserID)
	if err != nil {
		return err
	}
	attempt.Caster = caster

	// SelectingTarget
	attempt.transition(StateSelectingTarget)
	lowerRange, upperRange := caster.Ranges()
	s.notify(ctx, &Notice{
		Kind:      NoticeInfo,
		UserID:    input.UserID,
		ChannelID: input.ChannelID,
		AttemptID: attempt.ID,
		Message: fmt.Sprintf("%s is ready to attack (range %d / %d). Pick a target with /target.",
			caster.Name, lowerRange, upperRange),
	})

	target, err := s.awaitTarget(ctx, attempt)
	if err != nil {
		return err
	}
	if target.ID == caster.ID {
		return tgerr.New(tgerr.CodeInvalidTarget, "an actor cannot attack itself").WithMeta("actor_id", caster.ID)
	}
	attempt.Target = target

	// AwaitingOptions
	attempt.transition(StateAwaitingOptions)
	options, err := s.prompter.AttackOptions(ctx, &prompt.Request{
		UserID:     input.UserID,
		ChannelID:  input.ChannelID,
		CasterName: caster.Name,
		TargetName: target.Name,
	})
	if err != nil {
		return err
	}
	if options.Cancelled {
		return tgerr.Cancelled("attack cancelled")
	}
	attempt.Options = options

	// Resolving
	attempt.transition(StateResolving)
	if err := s.resolve(ctx, attempt); err != nil {
		return err
	}

	// Dispatching
	attempt.transition(StateDispatching)
	cmd := &authority.Command{
		ID:           s.uuid.New(),
		Kind:         authority.KindExecuteDamageFromAttack,
		IssuedBy:     input.UserID,
		CasterID:     caster.ID,
		TargetID:     target.ID,
		Outcome:      attempt.Outcome,
		Damage:       attempt.Result,
		DamageTypes:  damage.TypePair{options.DamageType, options.SecondaryDamageType},
		ApplyEffects: options.ApplyEffects,
	}
	if err := s.dispatch(ctx, cmd); err != nil {
		return err
	}
	attempt.CommandID = cmd.ID
	attempt.transition(StateDone)

	s.emit(&events.AttackDispatchedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeAttackDispatched},
		AttemptID: attempt.ID,
		CommandID: cmd.ID,
	})
	s.notify(ctx, &Notice{
		Kind:      NoticeResult,
		UserID:    input.UserID,
		ChannelID: input.ChannelID,
		Message:   describeAttack(attempt),
	})

	return nil
}

// awaitTarget clears any stale target and polls until a new one is picked,
// the context ends or the attempt is cancelled
func (s *service) awaitTarget(ctx context.Context, attempt *Attempt) (*entities.Actor, error) {
	ctx, span := tracer.Start(ctx, "attack.select_target")
	actor, err := s.pollTarget(ctx, attempt)
	endSpan(span, err)
	return actor, err
}

func (s *service) pollTarget(ctx context.Context, attempt *Attempt) (*entities.Actor, error) {
	if err := s.targets.ClearTarget(ctx, attempt.UserID); err != nil {
		return nil, tgerr.Wrap(err, "failed to reset target")
	}

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, tgerr.WrapWithCode(ctx.Err(), tgerr.CodeCancelled, "stopped waiting for a target")
		case <-attempt.Cancelled():
			return nil, tgerr.Cancelled("attack cancelled while picking a target")
		case <-ticker.C:
		}

		targetID, err := s.targets.CurrentTarget(ctx, attempt.UserID)
		if err != nil {
			return nil, tgerr.Wrap(err, "failed to read target")
		}
		if targetID == "" {
			continue
		}

		target, err := s.actors.Actor(ctx, targetID)
		if err != nil {
			return nil, tgerr.Wrap(err, "failed to load target")
		}
		return target, nil
	}
}

// resolve rolls the attack and computes its damage
func (s *service) resolve(ctx context.Context, attempt *Attempt) (err error) {
	_, span := tracer.Start(ctx, "attack.resolve")
	defer func() { endSpan(span, err) }()

	caster, target, options := attempt.Caster, attempt.Target, attempt.Options

	lowerGuard, upperGuard := target.Guards()
	outcome, err := dice.ResolveAttack(s.roller, dice.AttackRoll{
		DiceCount:  dice.ClampPool(caster.FullStat(entities.StatDexterity)),
		LowerGuard: lowerGuard,
		UpperGuard: upperGuard,
		Accuracy:   options.Accuracy,
		Critical:   options.Critical,
	})
	if err != nil {
		return err
	}
	attempt.Outcome = outcome

	set, err := s.formulas.Get(ctx)
	if err != nil {
		return tgerr.Wrap(err, "failed to load formulas")
	}

	result, err := s.calculator.Calculate(&damage.Input{
		UpperSuccesses:   outcome.Upper.Successes,
		LowerSuccesses:   outcome.Lower.Successes,
		DamageTypes:      damage.TypePair{options.DamageType, options.SecondaryDamageType},
		DamagePerSuccess: options.Damage,
		AttackResisted:   target.Resists(options.DamageType),
		Defense:          target.DefenseProfile(),
		Formulas:         set,
	})
	if err != nil {
		return err
	}
	attempt.Result = result

	span.SetAttributes(
		attribute.Int("attack.upper_successes", outcome.Upper.Successes),
		attribute.Int("attack.lower_successes", outcome.Lower.Successes),
		attribute.Int("attack.total_damage", result.TotalDamage),
	)
	s.emit(&events.AttackResolvedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeAttackResolved},
		AttemptID: attempt.ID,
		Caster:    caster,
		Target:    target,
		Outcome:   outcome,
		Result:    result,
	})

	return nil
}

// dispatch hands cmd to the authority once. Any failure means nothing was
// applied. Errors the dispatcher or the authority already classified keep
// their code; anything else is treated as a transport failure.
func (s *service) dispatch(ctx context.Context, cmd *authority.Command) (err error) {
	ctx, span := tracer.Start(ctx, "attack.dispatch")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("command.kind", string(cmd.Kind)))

	return authority.Classify(s.dispatcher.Dispatch(ctx, cmd))
}

func describeAttack(attempt *Attempt) string {
	result := attempt.Result
	return fmt.Sprintf("%s attacks %s: %d upper / %d lower successes for %d damage (%s)",
		attempt.Caster.Name,
		attempt.Target.Name,
		attempt.Outcome.Upper.Successes,
		attempt.Outcome.Lower.Successes,
		result.TotalDamage,
		describeTypes(damage.TypePair{attempt.Options.DamageType, attempt.Options.SecondaryDamageType}),
	)
}
