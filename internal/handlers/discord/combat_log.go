package discord

import (
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/togarashi-bot/internal/events"
	"github.com/bwmarrin/discordgo"
)

const (
	combatLogDamage = "combat_log_damage"
	combatLogStance = "combat_log_stance"
	combatLogStats  = "combat_log_stats"
)

// CombatLog posts what the authority applied to a public channel
type CombatLog struct {
	session   Session
	channelID string
}

// NewCombatLog creates a combat log. An empty channel disables it.
func NewCombatLog(session Session, channelID string) *CombatLog {
	return &CombatLog{
		session:   session,
		channelID: channelID,
	}
}

// Subscribe registers the log on bus
func (c *CombatLog) Subscribe(bus *events.Bus) {
	if c.channelID == "" || c.session == nil {
		log.Println("CombatLog: No channel configured, announcements disabled")
		return
	}

	bus.Subscribe(events.EventTypeDamageApplied, &events.ListenerFunc{
		Name:     combatLogDamage,
		Order:    events.PriorityNotify,
		Callback: c.onDamageApplied,
	})
	bus.Subscribe(events.EventTypeStanceChanged, &events.ListenerFunc{
		Name:     combatLogStance,
		Order:    events.PriorityNotify,
		Callback: c.onStanceChanged,
	})
	bus.Subscribe(events.EventTypeStatsTicked, &events.ListenerFunc{
		Name:     combatLogStats,
		Order:    events.PriorityNotify,
		Callback: c.onStatsTicked,
	})
}

// Unsubscribe stops posting. The bot calls it on shutdown before the Discord
// session closes.
func (c *CombatLog) Unsubscribe(bus *events.Bus) {
	bus.Unsubscribe(events.EventTypeDamageApplied, combatLogDamage)
	bus.Unsubscribe(events.EventTypeStanceChanged, combatLogStance)
	bus.Unsubscribe(events.EventTypeStatsTicked, combatLogStats)
}

func (c *CombatLog) onDamageApplied(event events.Event) error {
	e, ok := event.(*events.DamageAppliedEvent)
	if !ok {
		return nil
	}

	description := fmt.Sprintf("**%s** takes %d damage (%d → %d)", e.TargetName, e.Damage, e.HealthBefore, e.HealthAfter)
	if e.HealthAfter == 0 {
		description += "\n💀 Down!"
	}
	if e.ApplyEffects {
		description += "\n⚠️ Effects pending GM review"
	}

	c.post(&discordgo.MessageEmbed{
		Title:       "⚔️ Damage",
		Description: description,
		Color:       colorResult,
	})
	return nil
}

func (c *CombatLog) onStanceChanged(event events.Event) error {
	e, ok := event.(*events.StanceChangedEvent)
	if !ok {
		return nil
	}

	var stances []string
	if e.WeaponBlock {
		stances = append(stances, "weapon block")
	}
	if e.AuraShield.Active {
		shape := "localized"
		if e.AuraShield.FullBody {
			shape = "full body"
		}
		aura := "aura"
		if e.AuraShield.Orange {
			aura = "orange aura"
		}
		stances = append(stances, fmt.Sprintf("%s %s shield", shape, aura))
	}
	if len(stances) == 0 {
		stances = append(stances, "no defensive stance")
	}

	c.post(&discordgo.MessageEmbed{
		Title:       "🛡️ Stance",
		Description: fmt.Sprintf("**%s**: %s", e.ActorName, strings.Join(stances, ", ")),
		Color:       colorInfo,
	})
	return nil
}

func (c *CombatLog) onStatsTicked(event events.Event) error {
	e, ok := event.(*events.StatsTickedEvent)
	if !ok {
		return nil
	}

	c.post(&discordgo.MessageEmbed{
		Title: "⏳ Turn",
		Description: fmt.Sprintf("**%s**: status modifiers applied\nHealth %d/%d · Vital aura %d/%d · Daily aura %d/%d",
			e.ActorName,
			e.Health.Current, e.Health.Max,
			e.VitalAura.Current, e.VitalAura.Max,
			e.DailyAura.Current, e.DailyAura.Max,
		),
		Color: colorInfo,
	})
	return nil
}

// post never fails the emit; a lost announcement is only logged
func (c *CombatLog) post(embed *discordgo.MessageEmbed) {
	_, err := c.session.ChannelMessageSendComplex(c.channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		log.Printf("CombatLog: Failed to post to channel %s: %v", c.channelID, err)
	}
}
