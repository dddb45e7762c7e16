package helpers

import (
	"fmt"

	"github.com/KirkDiggler/togarashi-bot/internal/formula"
	"github.com/bwmarrin/discordgo"
)

// BuildFormulasEmbed lists the formula settings in role order. Roles missing
// from the set are flagged so the GM can restore them.
func BuildFormulasEmbed(set formula.Set) *discordgo.MessageEmbed {
	roles := formula.Roles()
	fields := make([]*discordgo.MessageEmbedField, 0, len(roles))
	for _, role := range roles {
		value := "⚠️ not configured"
		if expr, ok := set[role]; ok {
			value = fmt.Sprintf("`%s`", expr)
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: string(role), Value: value})
	}

	return &discordgo.MessageEmbed{
		Title:  "📐 Formulas",
		Color:  0x3498DB,
		Fields: fields,
	}
}
