package discord

import (
	"fmt"
	"log"
	"slices"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/formula"
	"github.com/KirkDiggler/togarashi-bot/internal/handlers/discord/helpers"
	"github.com/KirkDiggler/togarashi-bot/internal/handlers/discord/utils"
	"github.com/KirkDiggler/togarashi-bot/internal/services/gm"
	"github.com/bwmarrin/discordgo"
)

// isGM reports whether the member may use the GM commands: server
// administrators and holders of the configured GM role
func (h *Handler) isGM(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	if i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	return h.gmRoleID != "" && slices.Contains(i.Member.Roles, h.gmRoleID)
}

func (h *Handler) handleFormulas(i *discordgo.InteractionCreate) {
	if !h.isGM(i) {
		h.respondError(i, tgerr.InvalidArgument("only the GM can change the formulas"))
		return
	}

	ctx := h.ctx
	svc := h.ServiceProvider.GMService

	var subcommand string
	if options := i.ApplicationCommandData().Options; len(options) > 0 {
		subcommand = options[0].Name
	}

	var set formula.Set
	var err error
	switch subcommand {
	case subcommandShow:
		set, err = svc.Formulas(ctx)
	case subcommandSet:
		role := formula.Role(utils.GetStringOption(i, optionRole))
		set, err = svc.SetFormula(ctx, role, utils.GetStringOption(i, optionExpression))
		if err == nil {
			log.Printf("User %s changed formula %s", utils.UserID(i), role)
		}
	case subcommandReset:
		set, err = svc.ResetFormulas(ctx)
		if err == nil {
			log.Printf("User %s reset the formulas", utils.UserID(i))
		}
	default:
		return
	}
	if err != nil {
		if tgerr.IsFormulaError(err) {
			h.respond(i, fmt.Sprintf("❌ Formula rejected: %v", err))
			return
		}
		h.respondError(i, err)
		return
	}

	err = h.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{helpers.BuildFormulasEmbed(set)},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error showing formulas: %v", err)
	}
}

func (h *Handler) handleTick(i *discordgo.InteractionCreate) {
	if !h.isGM(i) {
		h.respondError(i, tgerr.InvalidArgument("only the GM can advance status modifiers"))
		return
	}

	ctx := h.ctx
	actor, err := h.findActor(ctx, utils.GetStringOption(i, optionActor))
	if err != nil {
		h.respondError(i, err)
		return
	}

	err = h.ServiceProvider.GMService.TickStatusModifiers(ctx, &gm.TickInput{
		UserID:  utils.UserID(i),
		ActorID: actor.ID,
	})
	if err != nil {
		if tgerr.Is(err, tgerr.CodeNoAuthorityAvailable) {
			h.respond(i, "❌ No authority is running to apply the turn. Try again later.")
			return
		}
		h.respondError(i, err)
		return
	}

	h.respond(i, fmt.Sprintf("⏳ Applied the status modifiers of **%s**.", actor.Name))
}
