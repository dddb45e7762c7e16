package helpers_test

import (
	"testing"

	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	"github.com/KirkDiggler/togarashi-bot/internal/handlers/discord/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildActorSheetEmbed(t *testing.T) {
	actor := &entities.Actor{
		ID:   "kenji",
		Name: "Kenji",
		Stats: map[entities.StatName]entities.Stat{
			entities.StatResistance: {Base: 3},
			entities.StatDexterity:  {Base: 4},
			entities.StatControl:    {Base: 6},
		},
		Health:            entities.Pool{Current: 90, Max: 120},
		Weapon:            &entities.Weapon{Name: "Katana", Block: 4},
		WeaponBlockActive: true,
		AuraShield:        entities.AuraShield{Active: true},
		PendingEffects:    2,
	}

	embed := helpers.BuildActorSheetEmbed(actor)

	assert.Equal(t, "Kenji", embed.Title)
	fields := make(map[string]string)
	for _, f := range embed.Fields {
		fields[f.Name] = f.Value
	}
	assert.Equal(t, "90 / 120", fields["❤️ Health"])
	assert.Equal(t, "3 / 7", fields["🛡️ Guards"])
	assert.Equal(t, "Katana (block 4)", fields["Equipment"])
	assert.Equal(t, "weapon block, aura shield 6", fields["Stance"])
	require.NotNil(t, embed.Footer)
	assert.Contains(t, embed.Footer.Text, "2 effects")
}

func TestBuildActorSheetEmbed_Unarmed(t *testing.T) {
	embed := helpers.BuildActorSheetEmbed(&entities.Actor{Name: "Oni"})

	for _, f := range embed.Fields {
		assert.NotEqual(t, "Stance", f.Name)
		if f.Name == "Equipment" {
			assert.Equal(t, "Unarmed", f.Value)
		}
	}
	assert.Nil(t, embed.Footer)
}
