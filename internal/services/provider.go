package services

import (
	"time"

	"github.com/KirkDiggler/togarashi-bot/internal/authority"
	"github.com/KirkDiggler/togarashi-bot/internal/dice"
	"github.com/KirkDiggler/togarashi-bot/internal/events"
	"github.com/KirkDiggler/togarashi-bot/internal/formula"
	"github.com/KirkDiggler/togarashi-bot/internal/prompt"
	"github.com/KirkDiggler/togarashi-bot/internal/repositories/actors"
	"github.com/KirkDiggler/togarashi-bot/internal/repositories/formulas"
	"github.com/KirkDiggler/togarashi-bot/internal/repositories/selections"
	"github.com/KirkDiggler/togarashi-bot/internal/services/attack"
	"github.com/KirkDiggler/togarashi-bot/internal/services/gm"
)

// Provider holds all service instances
type Provider struct {
	AttackService attack.Service
	GMService     gm.Service
	Broker        *prompt.Broker

	Actors     actors.Repository
	Selections selections.Repository
	Formulas   formulas.Repository
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	ActorRepository     actors.Repository
	SelectionRepository selections.Repository
	FormulaRepository   formulas.Repository

	Presenter  prompt.Presenter
	Notifier   attack.Notifier
	Dispatcher authority.Dispatcher

	// Optional
	Roller       dice.Roller
	EventBus     *events.Bus
	PollInterval time.Duration
	// DefaultFormulas is what the GM reset restores
	DefaultFormulas formula.Set
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	actorRepo := cfg.ActorRepository
	if actorRepo == nil {
		actorRepo = actors.NewInMemoryRepository()
	}

	selectionRepo := cfg.SelectionRepository
	if selectionRepo == nil {
		selectionRepo = selections.NewInMemoryRepository()
	}

	formulaRepo := cfg.FormulaRepository
	if formulaRepo == nil {
		formulaRepo = formulas.NewInMemoryRepository(nil)
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	broker := prompt.NewBroker(&prompt.BrokerConfig{
		Presenter: cfg.Presenter,
	})

	directory := attack.NewDirectory(actorRepo, selectionRepo)
	attackService := attack.NewService(&attack.ServiceConfig{
		Actors:       directory,
		Targets:      directory,
		Prompter:     broker,
		Notifier:     cfg.Notifier,
		Dispatcher:   cfg.Dispatcher,
		Formulas:     formulaRepo,
		Roller:       roller,
		EventBus:     cfg.EventBus,
		PollInterval: cfg.PollInterval,
	})

	gmService := gm.NewService(&gm.ServiceConfig{
		Formulas:   formulaRepo,
		Actors:     actorRepo,
		Dispatcher: cfg.Dispatcher,
		Defaults:   cfg.DefaultFormulas,
	})

	return &Provider{
		AttackService: attackService,
		GMService:     gmService,
		Broker:        broker,
		Actors:        actorRepo,
		Selections:    selectionRepo,
		Formulas:      formulaRepo,
	}
}
