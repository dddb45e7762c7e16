package discord

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/handlers/discord/helpers"
	"github.com/KirkDiggler/togarashi-bot/internal/handlers/discord/utils"
	"github.com/KirkDiggler/togarashi-bot/internal/prompt"
	"github.com/KirkDiggler/togarashi-bot/internal/services"
	"github.com/KirkDiggler/togarashi-bot/internal/services/attack"
	"github.com/bwmarrin/discordgo"
)

// DefaultActionTimeout bounds how long an action waits on a player
const DefaultActionTimeout = 5 * time.Minute

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider

	session       Session
	appID         string
	actionTimeout time.Duration
	gmRoleID      string

	// actions run past the interaction that started them
	ctx     context.Context
	stop    context.CancelFunc
	actions sync.WaitGroup
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
	Session         Session
	AppID           string

	// Optional
	ActionTimeout time.Duration
	// GMRoleID grants /formulas and /tick besides the administrator permission
	GMRoleID string
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.ServiceProvider == nil {
		panic("service provider is required")
	}
	if cfg.Session == nil {
		panic("discord session is required")
	}

	ctx, stop := context.WithCancel(context.Background())
	h := &Handler{
		ServiceProvider: cfg.ServiceProvider,
		session:         cfg.Session,
		appID:           cfg.AppID,
		actionTimeout:   cfg.ActionTimeout,
		gmRoleID:        cfg.GMRoleID,
		ctx:             ctx,
		stop:            stop,
	}
	if h.actionTimeout <= 0 {
		h.actionTimeout = DefaultActionTimeout
	}

	return h
}

// Close stops running actions and waits for them to finish
func (h *Handler) Close() {
	h.stop()
	h.actions.Wait()
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(i)
	case discordgo.InteractionModalSubmit:
		h.handleModalSubmit(i)
	}
}

// handleCommand handles slash command interactions
func (h *Handler) handleCommand(i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	svc := h.ServiceProvider.AttackService

	switch data.Name {
	case commandAttack:
		h.startAction(i, commandAttack, "⚔️ Preparing your attack...", func(ctx context.Context, input *attack.ActionInput) error {
			_, err := svc.Attack(ctx, input)
			return err
		})
	case commandBlock:
		h.startAction(i, commandBlock, "🗡️ Rolling to block...", func(ctx context.Context, input *attack.ActionInput) error {
			_, err := svc.UseWeaponBlock(ctx, input)
			return err
		})
	case commandAuraShield:
		h.startAction(i, commandAuraShield, "✨ Gathering your aura...", func(ctx context.Context, input *attack.ActionInput) error {
			_, err := svc.UseAuraShield(ctx, input)
			return err
		})
	case commandRoll:
		h.startAction(i, commandRoll, "🎲 Preparing the roll...", func(ctx context.Context, input *attack.ActionInput) error {
			_, err := svc.FreeRoll(ctx, input)
			return err
		})
	case commandTarget:
		h.handleTarget(i)
	case commandSelect:
		h.handleSelect(i)
	case commandSheet:
		h.handleSheet(i)
	case commandFormulas:
		h.handleFormulas(i)
	case commandTick:
		h.handleTick(i)
	}
}

// startAction acknowledges the command and runs the action in the
// background; the service reports results and errors through the notifier
func (h *Handler) startAction(i *discordgo.InteractionCreate, name, ack string, run func(context.Context, *attack.ActionInput) error) {
	input := &attack.ActionInput{
		UserID:    utils.UserID(i),
		ChannelID: i.ChannelID,
	}

	if err := h.respondEphemeral(i, ack); err != nil {
		log.Printf("Error acknowledging %s: %v", name, err)
		return
	}

	h.actions.Add(1)
	go func() {
		defer h.actions.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in %s action for user %s: %v\nStack trace:\n%s", name, input.UserID, r, debug.Stack())
			}
		}()

		ctx, cancel := context.WithTimeout(h.ctx, h.actionTimeout)
		defer cancel()

		if err := run(ctx, input); err != nil {
			log.Printf("Error handling %s for user %s: %v", name, input.UserID, err)
		}
	}()
}

func (h *Handler) handleTarget(i *discordgo.InteractionCreate) {
	ctx := h.ctx
	userID := utils.UserID(i)

	target, err := h.findActor(ctx, utils.GetStringOption(i, optionActor))
	if err != nil {
		h.respondError(i, err)
		return
	}

	if err := h.ServiceProvider.Selections.SetTarget(ctx, userID, target.ID); err != nil {
		h.respondError(i, err)
		return
	}

	log.Printf("User %s targets %s", userID, target.ID)
	h.respond(i, fmt.Sprintf("🎯 Targeting **%s**.", target.Name))
}

func (h *Handler) handleSelect(i *discordgo.InteractionCreate) {
	ctx := h.ctx
	userID := utils.UserID(i)
	query := utils.GetStringOption(i, optionActor)

	controlled, err := h.ServiceProvider.Actors.ControlledBy(ctx, userID)
	if err != nil {
		h.respondError(i, err)
		return
	}

	actor := matchActor(controlled, query)
	if actor == nil {
		h.respondError(i, tgerr.NotFoundf("you don't control %s", query))
		return
	}

	if err := h.ServiceProvider.Selections.SetSelectedActor(ctx, userID, actor.ID); err != nil {
		h.respondError(i, err)
		return
	}

	h.respond(i, fmt.Sprintf("You now act as **%s**.", actor.Name))
}

func (h *Handler) handleSheet(i *discordgo.InteractionCreate) {
	ctx := h.ctx
	userID := utils.UserID(i)

	var actor *entities.Actor
	var err error
	if query := utils.GetStringOption(i, optionActor); query != "" {
		actor, err = h.findActor(ctx, query)
	} else {
		actor, err = h.ownActor(ctx, userID)
	}
	if err != nil {
		h.respondError(i, err)
		return
	}

	err = h.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{helpers.BuildActorSheetEmbed(actor)},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error showing sheet of %s: %v", actor.ID, err)
	}
}

// findActor looks an actor up by ID, then by name ignoring case
func (h *Handler) findActor(ctx context.Context, query string) (*entities.Actor, error) {
	if query == "" {
		return nil, tgerr.InvalidArgument("name an actor")
	}

	actor, err := h.ServiceProvider.Actors.Get(ctx, query)
	if err == nil {
		return actor, nil
	}
	if !tgerr.IsNotFound(err) {
		return nil, err
	}

	all, err := h.ServiceProvider.Actors.List(ctx)
	if err != nil {
		return nil, err
	}
	if actor := matchActor(all, query); actor != nil {
		return actor, nil
	}

	return nil, tgerr.NotFoundf("no actor named %s", query)
}

// ownActor is the actor the user acts as: the only one controlled or the selected one
func (h *Handler) ownActor(ctx context.Context, userID string) (*entities.Actor, error) {
	controlled, err := h.ServiceProvider.Actors.ControlledBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch len(controlled) {
	case 0:
		return nil, tgerr.New(tgerr.CodeNoActorAvailable, "user controls no actor")
	case 1:
		return controlled[0], nil
	}

	selected, err := h.ServiceProvider.Selections.SelectedActor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if actor := matchActor(controlled, selected); actor != nil {
		return actor, nil
	}

	return nil, tgerr.New(tgerr.CodeAmbiguousActor, "user controls several actors")
}

func matchActor(candidates []*entities.Actor, query string) *entities.Actor {
	if query == "" {
		return nil
	}
	for _, actor := range candidates {
		if actor.ID == query {
			return actor
		}
	}
	for _, actor := range candidates {
		if strings.EqualFold(actor.Name, query) {
			return actor
		}
	}
	return nil
}

// handleComponent handles button clicks
func (h *Handler) handleComponent(i *discordgo.InteractionCreate) {
	id, ok := parseCustomID(i.MessageComponentData().CustomID)
	if !ok {
		return
	}
	userID := utils.UserID(i)

	switch id.Context {
	case contextPrompt:
		kind, token := prompt.Kind(id.arg(0)), id.arg(1)

		switch id.Action {
		case actionOpen, actionOpenEffects:
			h.openPrompt(i, kind, token, id.Action == actionOpenEffects)
		case actionCancel:
			if err := h.ServiceProvider.Broker.Cancel(token, userID); err != nil {
				h.respondError(i, err)
				return
			}
			h.respond(i, "Cancelled.")
		}
	case contextAttack:
		if id.Action != actionCancel {
			return
		}
		if err := h.ServiceProvider.AttackService.Cancel(id.arg(0), userID); err != nil {
			h.respondError(i, err)
			return
		}
		h.respond(i, "Stopping your attack.")
	}
}

// openPrompt shows the modal of an open prompt to the player it belongs to
func (h *Handler) openPrompt(i *discordgo.InteractionCreate, kind prompt.Kind, token string, effects bool) {
	owner, ok := h.ServiceProvider.Broker.Owner(token)
	if !ok {
		h.respondError(i, tgerr.NotFound("this prompt is no longer open"))
		return
	}
	if owner != utils.UserID(i) {
		h.respondError(i, tgerr.InvalidArgument("this prompt belongs to another player"))
		return
	}

	modal, err := buildModal(kind, token, effects)
	if err != nil {
		h.respondError(i, err)
		return
	}

	err = h.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: modal,
	})
	if err != nil {
		log.Printf("Error opening %s modal: %v", kind, err)
	}
}

// handleModalSubmit handles modal form submissions
func (h *Handler) handleModalSubmit(i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()

	id, ok := parseCustomID(data.CustomID)
	if !ok || id.Context != contextPrompt {
		return
	}
	if id.Action != actionSubmit && id.Action != actionSubmitEffects {
		return
	}

	values := utils.ModalValues(data)
	if id.Action == actionSubmitEffects {
		values[prompt.FieldApplyEffects] = "true"
	}

	if err := h.ServiceProvider.Broker.Answer(id.arg(1), utils.UserID(i), values); err != nil {
		h.respondError(i, err)
		return
	}
	h.respond(i, "✅ Got it.")
}

func (h *Handler) respond(i *discordgo.InteractionCreate, content string) {
	if err := h.respondEphemeral(i, content); err != nil {
		log.Printf("Error responding to interaction: %v", err)
	}
}

func (h *Handler) respondError(i *discordgo.InteractionCreate, err error) {
	h.respond(i, "❌ "+tgerr.UserMessage(err))
}

func (h *Handler) respondEphemeral(i *discordgo.InteractionCreate, content string) error {
	return h.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
