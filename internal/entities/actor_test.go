package entities_test

import (
	"testing"

	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	"github.com/KirkDiggler/togarashi-bot/internal/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSwordsman() *entities.Actor {
	return &entities.Actor{
		ID:            "actor-1",
		Name:          "Kenji",
		ControllerIDs: []string{"user-1"},
		Experience:    2,
		Stats: map[entities.StatName]entities.Stat{
			entities.StatForce:         {Base: 4, Modifier: 1},
			entities.StatResistance:    {Base: 3},
			entities.StatDexterity:     {Base: 5, Modifier: -1},
			entities.StatControl:       {Base: 6},
			entities.StatNaturalEnergy: {Base: 2},
			entities.StatBlock:         {Base: 1},
			entities.StatLowerRange:    {Base: 1},
			entities.StatUpperRange:    {Base: 2},
		},
		Weapon: &entities.Weapon{ID: "katana", Type: "sword", Block: 4, LowerRange: 1, UpperRange: 3},
		Armor:  &entities.Armor{ID: "do", Block: 2},
		Masteries: []entities.Mastery{
			{WeaponType: "sword", Stat: entities.StatDexterity, Modifier: 2},
			{WeaponType: "bow", Stat: entities.StatDexterity, Modifier: 5},
		},
		Modifiers: []entities.StatusModifier{
			{Stat: entities.StatForce, Modifier: 1, Type: entities.ModifierWhileActive},
			{Stat: entities.StatForce, Modifier: 2, Type: entities.ModifierPermanent},
		},
	}
}

func TestActor_FullStat(t *testing.T) {
	actor := newSwordsman()

	// 5 - 1 + sword mastery 2
	assert.Equal(t, 6, actor.FullStat(entities.StatDexterity))
	// 4 + 1 + while-active 1, permanent ignored until ticked
	assert.Equal(t, 6, actor.FullStat(entities.StatForce))
	assert.Equal(t, 0, actor.FullStat(entities.StatIntuition))

	actor.Weapon = nil
	assert.Equal(t, 4, actor.FullStat(entities.StatDexterity))
}

func TestActor_TickStatusModifiers(t *testing.T) {
	actor := newSwordsman()

	actor.TickStatusModifiers()

	assert.Equal(t, 6, actor.Stat(entities.StatForce).Base)
	assert.Equal(t, 8, actor.FullStat(entities.StatForce))
}

func TestActor_GuardsAndRanges(t *testing.T) {
	actor := newSwordsman()

	lower, upper := actor.Guards()
	assert.Equal(t, 5, lower)
	assert.Equal(t, 9, upper)

	lowerRange, upperRange := actor.Ranges()
	assert.Equal(t, 2, lowerRange)
	assert.Equal(t, 5, upperRange)
}

func TestActor_DefenseProfile(t *testing.T) {
	actor := newSwordsman()

	profile := actor.DefenseProfile()
	assert.Equal(t, entities.DefenseProfile{
		Force:      6,
		ArmorBlock: 2,
		OtherBlock: 1,
	}, profile)

	actor.WeaponBlockActive = true
	actor.AuraShield = entities.AuraShield{Active: true}
	profile = actor.DefenseProfile()
	assert.Equal(t, 4, profile.WeaponBlock)
	assert.Equal(t, 6, profile.AuraShieldBlock)
}

func TestActor_AuraShieldBlock(t *testing.T) {
	tests := []struct {
		name   string
		shield entities.AuraShield
		want   int
	}{
		{name: "inactive", shield: entities.AuraShield{}, want: 0},
		{name: "localized", shield: entities.AuraShield{Active: true}, want: 6},
		{name: "full body", shield: entities.AuraShield{Active: true, FullBody: true}, want: 3},
		{name: "orange localized", shield: entities.AuraShield{Active: true, Orange: true}, want: 12},
		{name: "orange full body", shield: entities.AuraShield{Active: true, FullBody: true, Orange: true}, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := newSwordsman()
			actor.AuraShield = tt.shield
			assert.Equal(t, tt.want, actor.AuraShieldBlock())
		})
	}
}

func TestActor_DerivedStats(t *testing.T) {
	actor := newSwordsman()
	actor.Health = entities.Pool{Current: 500, Max: 500}

	stats, err := actor.CalculateDerivedStats(formula.DefaultSet(), formula.NewEngine())
	require.NoError(t, err)

	// (3 + 6) * 20 and (2 + 6) * 20
	assert.Equal(t, 180, stats.FullHealth)
	assert.Equal(t, 160, stats.VitalAura)
	assert.Equal(t, 160, stats.DailyAura)

	actor.ApplyDerivedStats(stats)
	assert.Equal(t, entities.Pool{Current: 180, Max: 180}, actor.Health)
	// pools without a maximum start full
	assert.Equal(t, entities.Pool{Current: 160, Max: 160}, actor.VitalAura)
}

func TestActor_RefreshDerivedStatsKeepsDamage(t *testing.T) {
	actor := newSwordsman()
	actor.Health = entities.Pool{Current: 100, Max: 180}
	actor.Modifiers = append(actor.Modifiers, entities.StatusModifier{
		Stat: entities.StatResistance, Modifier: 1, Type: entities.ModifierWhileActive,
	})

	require.NoError(t, actor.RefreshDerivedStats(formula.DefaultSet(), formula.NewEngine()))

	// (4 + 6) * 20, current health is not topped up
	assert.Equal(t, entities.Pool{Current: 100, Max: 200}, actor.Health)
}

func TestActor_DerivedStatsBrokenFormula(t *testing.T) {
	set := formula.DefaultSet().Merge(formula.Set{formula.RoleVitalAura: "@{controle} / 0"})

	_, err := newSwordsman().CalculateDerivedStats(set, formula.NewEngine())

	assert.Error(t, err)
}

func TestPool_Damage(t *testing.T) {
	pool := entities.Pool{Current: 10, Max: 20}

	assert.Equal(t, 0, pool.Damage(-3))
	assert.Equal(t, 4, pool.Damage(4))
	assert.Equal(t, 6, pool.Damage(50))
	assert.Equal(t, 0, pool.Current)
	assert.Equal(t, 20, pool.Heal(25))
	assert.Equal(t, 20, pool.Current)
	assert.Equal(t, 0, pool.Heal(5))
}

func TestActor_IsControlledBy(t *testing.T) {
	actor := newSwordsman()

	assert.True(t, actor.IsControlledBy("user-1"))
	assert.False(t, actor.IsControlledBy("user-2"))
}
