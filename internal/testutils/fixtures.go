package testutils

import (
	"github.com/KirkDiggler/togarashi-bot/internal/entities"
)

// CreateTestActor creates an actor with even stats and full pools
func CreateTestActor(id, name string, controllers ...string) *entities.Actor {
	return &entities.Actor{
		ID:            id,
		Name:          name,
		ControllerIDs: controllers,
		Experience:    1,
		Stats: map[entities.StatName]entities.Stat{
			entities.StatForce:         {Base: 3},
			entities.StatResistance:    {Base: 3},
			entities.StatDexterity:     {Base: 3},
			entities.StatIntuition:     {Base: 3},
			entities.StatNaturalEnergy: {Base: 3},
			entities.StatControl:       {Base: 3},
		},
		Health:    entities.Pool{Current: 120, Max: 120},
		VitalAura: entities.Pool{Current: 60, Max: 60},
		DailyAura: entities.Pool{Current: 60, Max: 60},
	}
}

// CreateTestSwordsman creates an armed and armored actor
func CreateTestSwordsman(id, name string, controllers ...string) *entities.Actor {
	actor := CreateTestActor(id, name, controllers...)
	actor.Weapon = &entities.Weapon{
		ID:         "katana",
		Name:       "Katana",
		Type:       "sword",
		Block:      3,
		LowerRange: 1,
		UpperRange: 2,
	}
	actor.Armor = &entities.Armor{ID: "do", Name: "Do", Block: 2}
	actor.Masteries = []entities.Mastery{
		{WeaponType: "sword", Stat: entities.StatDexterity, Modifier: 1},
	}
	return actor
}
