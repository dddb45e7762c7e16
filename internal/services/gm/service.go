// Package gm holds the game master's table controls: the formula settings
// and turn upkeep.
package gm

//go:generate mockgen -destination=mock/mock_service.go -package=mockgm -source=service.go

import (
	"context"
	"log"
	"slices"

	"github.com/KirkDiggler/togarashi-bot/internal/authority"
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/formula"
	"github.com/KirkDiggler/togarashi-bot/internal/repositories/actors"
	"github.com/KirkDiggler/togarashi-bot/internal/repositories/formulas"
	"github.com/KirkDiggler/togarashi-bot/internal/uuid"
)

// Service defines the game master operations
type Service interface {
	// Formulas returns the formula settings in use
	Formulas(ctx context.Context) (formula.Set, error)

	// SetFormula replaces the expression of one role and stores the settings
	SetFormula(ctx context.Context, role formula.Role, expression string) (formula.Set, error)

	// ResetFormulas restores the formulas the bot started with
	ResetFormulas(ctx context.Context) (formula.Set, error)

	// TickStatusModifiers asks the authority to fold an actor's permanent
	// modifiers into their stats
	TickStatusModifiers(ctx context.Context, input *TickInput) error
}

// TickInput names who ticks which actor
type TickInput struct {
	UserID  string
	ActorID string
}

// ServiceConfig holds the dependencies for the GM service
type ServiceConfig struct {
	Formulas   formulas.Repository
	Actors     actors.Repository
	Dispatcher authority.Dispatcher

	// Optional
	// Defaults is what ResetFormulas restores, formula.DefaultSet() when nil
	Defaults      formula.Set
	UUIDGenerator uuid.Generator
}

type service struct {
	formulas   formulas.Repository
	actors     actors.Repository
	dispatcher authority.Dispatcher
	defaults   formula.Set
	uuid       uuid.Generator
}

// NewService creates a new GM service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Formulas == nil {
		panic("formula repository is required")
	}
	if cfg.Actors == nil {
		panic("actor repository is required")
	}
	if cfg.Dispatcher == nil {
		panic("dispatcher is required")
	}

	svc := &service{
		formulas:   cfg.Formulas,
		actors:     cfg.Actors,
		dispatcher: cfg.Dispatcher,
		defaults:   cfg.Defaults,
		uuid:       cfg.UUIDGenerator,
	}
	if svc.defaults == nil {
		svc.defaults = formula.DefaultSet()
	}
	if svc.uuid == nil {
		svc.uuid = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

func (s *service) Formulas(ctx context.Context) (formula.Set, error) {
	set, err := s.formulas.Get(ctx)
	if err != nil {
		return nil, tgerr.Wrap(err, "failed to load formulas")
	}
	return set, nil
}

func (s *service) SetFormula(ctx context.Context, role formula.Role, expression string) (formula.Set, error) {
	if !slices.Contains(formula.Roles(), role) {
		return nil, tgerr.InvalidArgumentf("unknown formula %s", role).WithMeta("role", string(role))
	}

	current, err := s.Formulas(ctx)
	if err != nil {
		return nil, err
	}

	updated := current.Merge(formula.Set{role: expression})
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if err := s.formulas.Save(ctx, updated); err != nil {
		return nil, tgerr.Wrap(err, "failed to save formulas")
	}

	log.Printf("GM: Formula %s set to %q", role, expression)
	return updated, nil
}

func (s *service) ResetFormulas(ctx context.Context) (formula.Set, error) {
	defaults := s.defaults.Merge(nil)
	if err := s.formulas.Save(ctx, defaults); err != nil {
		return nil, tgerr.Wrap(err, "failed to save formulas")
	}

	log.Println("GM: Formulas reset to defaults")
	return defaults, nil
}

func (s *service) TickStatusModifiers(ctx context.Context, input *TickInput) error {
	if input == nil || input.ActorID == "" {
		return tgerr.InvalidArgument("name the actor to tick")
	}

	// unknown actors fail here rather than on the authority
	actor, err := s.actors.Get(ctx, input.ActorID)
	if err != nil {
		return err
	}

	cmd := &authority.Command{
		ID:       s.uuid.New(),
		Kind:     authority.KindTickStatusModifiers,
		IssuedBy: input.UserID,
		CasterID: actor.ID,
	}
	if err := authority.Classify(s.dispatcher.Dispatch(ctx, cmd)); err != nil {
		return err
	}

	log.Printf("GM: %s ticked status modifiers of %s", input.UserID, actor.ID)
	return nil
}
