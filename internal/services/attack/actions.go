package attack

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/togarashi-bot/internal/authority"
	"github.com/KirkDiggler/togarashi-bot/internal/dice"
	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/events"
	"github.com/KirkDiggler/togarashi-bot/internal/prompt"
	"go.opentelemetry.io/otel/attribute"
)

// UseWeaponBlock rolls the caster's intuition; on any success the authority
// raises the weapon block stance
func (s *service) UseWeaponBlock(ctx context.Context, input *ActionInput) (result *ActionResult, err error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "attack.weapon_block")
	defer func() { endSpan(span, err) }()
	defer func() {
		if err != nil {
			s.notifyError(ctx, input, err)
		}
	}()

	caster, err := s.selectCaster(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if caster.Weapon == nil {
		return nil, tgerr.InvalidArgumentf("%s has no weapon equipped", caster.Name).WithMeta("actor_id", caster.ID)
	}

	outcome, err := s.intuitionCheck(caster)
	if err != nil {
		return nil, err
	}

	result = &ActionResult{Caster: caster, Outcome: outcome}
	if outcome.Successes <= 0 {
		s.notify(ctx, &Notice{
			Kind:      NoticeResult,
			UserID:    input.UserID,
			ChannelID: input.ChannelID,
			Message:   fmt.Sprintf("%s failed the intuition check to block.", caster.Name),
		})
		return result, nil
	}

	err = s.dispatch(ctx, &authority.Command{
		ID:       s.uuid.New(),
		Kind:     authority.KindSetWeaponBlock,
		IssuedBy: input.UserID,
		CasterID: caster.ID,
		Active:   true,
	})
	if err != nil {
		return result, err
	}
	result.Dispatched = true

	s.notify(ctx, &Notice{
		Kind:      NoticeResult,
		UserID:    input.UserID,
		ChannelID: input.ChannelID,
		Message:   fmt.Sprintf("%s raises %s to block (%d successes).", caster.Name, caster.Weapon.Name, outcome.Successes),
	})
	return result, nil
}

// UseAuraShield asks how to shape the shield, rolls intuition and on any
// success has the authority raise it
func (s *service) UseAuraShield(ctx context.Context, input *ActionInput) (result *ActionResult, err error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "attack.aura_shield")
	defer func() { endSpan(span, err) }()
	defer func() {
		if err != nil {
			s.notifyError(ctx, input, err)
		}
	}()

	caster, err := s.selectCaster(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	options, err := s.prompter.AuraShieldOptions(ctx, &prompt.Request{
		UserID:     input.UserID,
		ChannelID:  input.ChannelID,
		CasterName: caster.Name,
	})
	if err != nil {
		return nil, err
	}
	if options.Cancelled {
		return nil, tgerr.Cancelled("aura shield cancelled")
	}

	outcome, err := s.intuitionCheck(caster)
	if err != nil {
		return nil, err
	}

	result = &ActionResult{Caster: caster, Outcome: outcome}
	if outcome.Successes <= 0 {
		s.notify(ctx, &Notice{
			Kind:      NoticeResult,
			UserID:    input.UserID,
			ChannelID: input.ChannelID,
			Message:   fmt.Sprintf("%s failed the intuition check to raise an aura shield.", caster.Name),
		})
		return result, nil
	}

	err = s.dispatch(ctx, &authority.Command{
		ID:       s.uuid.New(),
		Kind:     authority.KindSetAuraShield,
		IssuedBy: input.UserID,
		CasterID: caster.ID,
		Active:   true,
		FullBody: options.FullBody(),
		Orange:   options.Orange(),
	})
	if err != nil {
		return result, err
	}
	result.Dispatched = true

	s.notify(ctx, &Notice{
		Kind:      NoticeResult,
		UserID:    input.UserID,
		ChannelID: input.ChannelID,
		Message: fmt.Sprintf("%s raises a %s %s aura shield (%d successes).",
			caster.Name, options.Aura, options.Type, outcome.Successes),
	})
	return result, nil
}

// FreeRoll rolls a player-chosen pool with a critical on 10
func (s *service) FreeRoll(ctx context.Context, input *ActionInput) (result *ActionResult, err error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "attack.free_roll")
	defer func() { endSpan(span, err) }()
	defer func() {
		if err != nil {
			s.notifyError(ctx, input, err)
		}
	}()

	caster, err := s.selectCaster(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	options, err := s.prompter.RollOptions(ctx, &prompt.Request{
		UserID:     input.UserID,
		ChannelID:  input.ChannelID,
		CasterName: caster.Name,
	})
	if err != nil {
		return nil, err
	}
	if options.Cancelled {
		return nil, tgerr.Cancelled("roll cancelled")
	}

	outcome, err := dice.RollGuard(s.roller, dice.NewBand(options.NumberDice, options.Difficulty, freeRollCritical, options.Modifier))
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("roll.successes", outcome.Successes))

	log.Printf("Attack: %s free roll %dd%d vs %d (%+d): %d successes",
		caster.Name, options.NumberDice, dice.DefaultSides, options.Difficulty, options.Modifier, outcome.Successes)
	s.emit(&events.FreeRollEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeFreeRoll},
		UserID:    input.UserID,
		ActorID:   caster.ID,
		Outcome:   outcome,
	})
	s.notify(ctx, &Notice{
		Kind:      NoticeResult,
		UserID:    input.UserID,
		ChannelID: input.ChannelID,
		Message: fmt.Sprintf("%s rolls %d dice at difficulty %d (%+d): %v = %d successes",
			caster.Name, options.NumberDice, options.Difficulty, options.Modifier, outcome.Rolls, outcome.Successes),
	})

	return &ActionResult{Caster: caster, Outcome: outcome}, nil
}

// intuitionCheck is the roll behind both defensive stances
func (s *service) intuitionCheck(caster *entities.Actor) (*dice.GuardOutcome, error) {
	pool := dice.ClampPool(caster.FullStat(entities.StatIntuition))
	return dice.RollGuard(s.roller, dice.NewBand(pool, stanceDifficulty, stanceCritical, 0))
}
