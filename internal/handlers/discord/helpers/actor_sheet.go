package helpers

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	"github.com/bwmarrin/discordgo"
)

var sheetStats = []struct {
	name  entities.StatName
	label string
}{
	{entities.StatForce, "FOR"},
	{entities.StatResistance, "RES"},
	{entities.StatDexterity, "DEX"},
	{entities.StatIntuition, "INT"},
	{entities.StatNaturalEnergy, "NAT"},
	{entities.StatControl, "CTL"},
	{entities.StatBlock, "BLK"},
}

// BuildActorSheetEmbed shows an actor's pools, stats and defenses
func BuildActorSheetEmbed(actor *entities.Actor) *discordgo.MessageEmbed {
	lowerGuard, upperGuard := actor.Guards()
	lowerRange, upperRange := actor.Ranges()

	stats := make([]string, 0, len(sheetStats))
	for _, s := range sheetStats {
		stats = append(stats, fmt.Sprintf("%s %d", s.label, actor.FullStat(s.name)))
	}

	embed := &discordgo.MessageEmbed{
		Title: actor.Name,
		Color: 0x8E44AD,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "❤️ Health", Value: poolValue(actor.Health), Inline: true},
			{Name: "✨ Vital aura", Value: poolValue(actor.VitalAura), Inline: true},
			{Name: "🌙 Daily aura", Value: poolValue(actor.DailyAura), Inline: true},
			{Name: "Stats", Value: strings.Join(stats, " · ")},
			{Name: "🛡️ Guards", Value: fmt.Sprintf("%d / %d", lowerGuard, upperGuard), Inline: true},
			{Name: "🏹 Ranges", Value: fmt.Sprintf("%d / %d", lowerRange, upperRange), Inline: true},
		},
	}

	equipment := "Unarmed"
	if actor.Weapon != nil {
		equipment = fmt.Sprintf("%s (block %d)", actor.Weapon.Name, actor.Weapon.Block)
	}
	if actor.Armor != nil {
		equipment += fmt.Sprintf(", %s (block %d)", actor.Armor.Name, actor.Armor.Block)
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Equipment", Value: equipment})

	var stances []string
	if actor.WeaponBlockActive {
		stances = append(stances, "weapon block")
	}
	if block := actor.AuraShieldBlock(); block > 0 {
		stances = append(stances, fmt.Sprintf("aura shield %d", block))
	}
	if len(stances) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Stance", Value: strings.Join(stances, ", ")})
	}

	if actor.PendingEffects > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d effects waiting for GM review", actor.PendingEffects)}
	}

	return embed
}

func poolValue(pool entities.Pool) string {
	return fmt.Sprintf("%d / %d", pool.Current, pool.Max)
}
