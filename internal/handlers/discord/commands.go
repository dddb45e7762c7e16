package discord

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/togarashi-bot/internal/formula"
	"github.com/bwmarrin/discordgo"
)

// Slash command names
const (
	commandAttack     = "attack"
	commandBlock      = "block"
	commandAuraShield = "aura-shield"
	commandRoll       = "roll"
	commandTarget     = "target"
	commandSelect     = "select"
	commandSheet      = "sheet"

	// GM only
	commandFormulas = "formulas"
	commandTick     = "tick"

	subcommandShow  = "show"
	subcommandSet   = "set"
	subcommandReset = "reset"

	optionActor      = "actor"
	optionRole       = "role"
	optionExpression = "expression"
)

// Commands returns every slash command the bot serves
func Commands() []*discordgo.ApplicationCommand {
	actorOption := func(description string, required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        optionActor,
			Description: description,
			Required:    required,
		}
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        commandAttack,
			Description: "Attack with your character, then pick a target with /target",
		},
		{
			Name:        commandBlock,
			Description: "Raise your weapon to block (intuition check)",
		},
		{
			Name:        commandAuraShield,
			Description: "Raise an aura shield (intuition check)",
		},
		{
			Name:        commandRoll,
			Description: "Roll a free pool of d10s against a difficulty",
		},
		{
			Name:        commandTarget,
			Description: "Target a character or creature",
			Options: []*discordgo.ApplicationCommandOption{
				actorOption("Name or ID of the target", true),
			},
		},
		{
			Name:        commandSelect,
			Description: "Choose which of your characters acts",
			Options: []*discordgo.ApplicationCommandOption{
				actorOption("Name or ID of your character", true),
			},
		},
		{
			Name:        commandSheet,
			Description: "Show a character sheet",
			Options: []*discordgo.ApplicationCommandOption{
				actorOption("Name or ID (defaults to your character)", false),
			},
		},
		{
			Name:        commandFormulas,
			Description: "GM: view or change the damage and pool formulas",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandShow,
					Description: "Show the formulas in use",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandSet,
					Description: "Replace one formula",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionRole,
							Description: "Formula to replace",
							Required:    true,
							Choices:     roleChoices(),
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionExpression,
							Description: "New expression, e.g. floor(@{dano-suc} * @{suc-baixo} * 0.5)",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandReset,
					Description: "Restore the formulas the bot started with",
				},
			},
		},
		{
			Name:        commandTick,
			Description: "GM: apply an actor's permanent status modifiers for the turn",
			Options: []*discordgo.ApplicationCommandOption{
				actorOption("Name or ID of the actor", true),
			},
		},
	}
}

func roleChoices() []*discordgo.ApplicationCommandOptionChoice {
	roles := formula.Roles()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(roles))
	for _, role := range roles {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(role),
			Value: string(role),
		})
	}
	return choices
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(guildID string) error {
	commands := Commands()

	// Use empty string for global commands, or set a specific guild ID for testing
	registered, err := h.session.ApplicationCommandBulkOverwrite(h.appID, guildID, commands)
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	for _, cmd := range registered {
		log.Printf("Registered command: %s", cmd.Name)
	}
	return nil
}
