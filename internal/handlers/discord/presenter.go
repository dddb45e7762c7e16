package discord

import (
	"context"
	"fmt"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/prompt"
	"github.com/bwmarrin/discordgo"
)

// Presenter posts a prompt as a channel message whose buttons open the
// matching modal
type Presenter struct {
	session Session
}

// NewPresenter creates a presenter
func NewPresenter(session Session) *Presenter {
	if session == nil {
		panic("discord session is required")
	}
	return &Presenter{session: session}
}

// Present implements prompt.Presenter
func (p *Presenter) Present(ctx context.Context, req *prompt.Request) error {
	if req.ChannelID == "" {
		return tgerr.InvalidArgument("prompt needs a channel")
	}

	var buttons []discordgo.MessageComponent
	switch req.Kind {
	case prompt.KindAttackOptions:
		buttons = append(buttons,
			discordgo.Button{
				Label:    "Attack",
				Style:    discordgo.PrimaryButton,
				CustomID: promptID(actionOpen, req.Kind, req.Token),
				Emoji:    &discordgo.ComponentEmoji{Name: "⚔️"},
			},
			discordgo.Button{
				Label:    "Attack with effects",
				Style:    discordgo.SecondaryButton,
				CustomID: promptID(actionOpenEffects, req.Kind, req.Token),
			},
		)
	case prompt.KindAuraShieldOptions, prompt.KindRollOptions:
		buttons = append(buttons, discordgo.Button{
			Label:    "Choose",
			Style:    discordgo.PrimaryButton,
			CustomID: promptID(actionOpen, req.Kind, req.Token),
		})
	default:
		return tgerr.InvalidArgumentf("unknown prompt kind %q", req.Kind)
	}
	buttons = append(buttons, discordgo.Button{
		Label:    "Cancel",
		Style:    discordgo.DangerButton,
		CustomID: promptID(actionCancel, req.Kind, req.Token),
	})

	_, err := p.session.ChannelMessageSendComplex(req.ChannelID, &discordgo.MessageSend{
		Content:    fmt.Sprintf("<@%s> %s", req.UserID, promptTitle(req)),
		Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}},
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Users: []string{req.UserID},
		},
	})
	if err != nil {
		return tgerr.Wrap(err, "failed to send prompt")
	}

	return nil
}

func promptTitle(req *prompt.Request) string {
	switch req.Kind {
	case prompt.KindAttackOptions:
		return fmt.Sprintf("**%s** attacks **%s**: choose the attack options.", req.CasterName, req.TargetName)
	case prompt.KindAuraShieldOptions:
		return fmt.Sprintf("**%s** raises an aura shield: choose its shape.", req.CasterName)
	default:
		return fmt.Sprintf("**%s** rolls: choose the dice.", req.CasterName)
	}
}

// buildModal returns the dialog for a prompt kind. effects marks an attack
// that applies its effects on hit.
func buildModal(kind prompt.Kind, token string, effects bool) (*discordgo.InteractionResponseData, error) {
	submit := actionSubmit
	if effects {
		submit = actionSubmitEffects
	}

	data := &discordgo.InteractionResponseData{CustomID: promptID(submit, kind, token)}

	switch kind {
	case prompt.KindAttackOptions:
		data.Title = "Attack options"
		data.Components = textInputs(
			textInput(prompt.FieldDamageType, "Damage type", "cut", "", true),
			textInput(prompt.FieldSecondaryDamageType, "Lower guard damage type", "same as damage type", "", false),
			textInput(prompt.FieldAccuracy, "Accuracy", "0", "0", false),
			textInput(prompt.FieldCritical, "Critical", "10", fmt.Sprint(prompt.DefaultCritical), false),
			textInput(prompt.FieldDamage, "Damage per success", "10", "", true),
		)
	case prompt.KindAuraShieldOptions:
		data.Title = "Aura shield"
		data.Components = textInputs(
			textInput(prompt.FieldAura, "Aura (normal or orange)", prompt.AuraNormal, prompt.AuraNormal, false),
			textInput(prompt.FieldType, "Shape (localized or fullBody)", prompt.ShieldLocalized, prompt.ShieldLocalized, false),
		)
	case prompt.KindRollOptions:
		data.Title = "Free roll"
		data.Components = textInputs(
			textInput(prompt.FieldNumberDice, "Number of dice", "5", "", true),
			textInput(prompt.FieldDifficulty, "Difficulty", "6", "6", true),
			textInput(prompt.FieldModifier, "Modifier", "0", "0", false),
		)
	default:
		return nil, tgerr.InvalidArgumentf("unknown prompt kind %q", kind)
	}

	return data, nil
}

func textInput(id, label, placeholder, value string, required bool) discordgo.TextInput {
	return discordgo.TextInput{
		CustomID:    id,
		Label:       label,
		Style:       discordgo.TextInputShort,
		Placeholder: placeholder,
		Value:       value,
		Required:    required,
		MaxLength:   32,
	}
}

// textInputs puts each input on its own row
func textInputs(inputs ...discordgo.TextInput) []discordgo.MessageComponent {
	rows := make([]discordgo.MessageComponent, 0, len(inputs))
	for _, input := range inputs {
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{input}})
	}
	return rows
}
