package discord

import (
	"context"
	"fmt"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/services/attack"
	"github.com/bwmarrin/discordgo"
)

const (
	colorResult = 0xC0392B
	colorInfo   = 0x2E86C1
)

// Notifier posts attack notices to the channel the action came from
type Notifier struct {
	session Session
}

// NewNotifier creates a notifier
func NewNotifier(session Session) *Notifier {
	if session == nil {
		panic("discord session is required")
	}
	return &Notifier{session: session}
}

// Notify implements attack.Notifier
func (n *Notifier) Notify(ctx context.Context, notice *attack.Notice) error {
	if notice == nil {
		return tgerr.InvalidArgument("notice cannot be nil")
	}
	if notice.ChannelID == "" {
		return tgerr.InvalidArgument("notice needs a channel").WithMeta("user_id", notice.UserID)
	}

	msg := &discordgo.MessageSend{
		AllowedMentions: &discordgo.MessageAllowedMentions{Users: []string{notice.UserID}},
	}

	switch notice.Kind {
	case attack.NoticeInfo:
		msg.Content = fmt.Sprintf("<@%s> %s", notice.UserID, notice.Message)
		if notice.AttemptID != "" {
			msg.Components = []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Cancel attack",
							Style:    discordgo.DangerButton,
							CustomID: cancelAttackID(notice.AttemptID),
						},
					},
				},
			}
		}
	case attack.NoticeError:
		msg.Content = fmt.Sprintf("<@%s> ❌ %s", notice.UserID, notice.Message)
	default:
		msg.Embeds = []*discordgo.MessageEmbed{
			{
				Description: notice.Message,
				Color:       colorResult,
			},
		}
	}

	if _, err := n.session.ChannelMessageSendComplex(notice.ChannelID, msg); err != nil {
		return tgerr.Wrap(err, "failed to send notice")
	}
	return nil
}
