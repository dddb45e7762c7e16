package dice_test

import (
	"testing"

	"github.com/KirkDiggler/togarashi-bot/internal/dice"
	mockdice "github.com/KirkDiggler/togarashi-bot/internal/dice/mock"
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollGuard(t *testing.T) {
	tests := []struct {
		name          string
		rolls         []int
		band          dice.Band
		wantSuccesses int
		wantCrits     int
	}{
		{
			name:          "hits and misses",
			rolls:         []int{2, 6, 7, 9},
			band:          dice.NewBand(4, 6, 10, 0),
			wantSuccesses: 3,
		},
		{
			name:          "critical counts twice",
			rolls:         []int{10, 3},
			band:          dice.NewBand(2, 6, 10, 0),
			wantSuccesses: 2,
			wantCrits:     1,
		},
		{
			name:          "modifier added once",
			rolls:         []int{8, 8},
			band:          dice.NewBand(2, 6, 10, 3),
			wantSuccesses: 5,
		},
		{
			name:          "negative modifier is not floored",
			rolls:         []int{1, 2},
			band:          dice.NewBand(2, 6, 10, -2),
			wantSuccesses: -2,
		},
		{
			name:          "no dice",
			rolls:         nil,
			band:          dice.NewBand(0, 6, 10, 1),
			wantSuccesses: 1,
		},
		{
			name:  "bonus per critical",
			rolls: []int{9, 10},
			band: dice.Band{
				DiceCount:        2,
				Difficulty:       5,
				Critical:         9,
				Sides:            10,
				BonusPerCritical: 2,
			},
			wantSuccesses: 6,
			wantCrits:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.rolls)

			out, err := dice.RollGuard(roller, tt.band)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSuccesses, out.Successes)
			assert.Equal(t, tt.wantCrits, out.Criticals)
			assert.Len(t, out.Rolls, len(tt.rolls))
		})
	}
}

func TestRollGuard_Invalid(t *testing.T) {
	roller := mockdice.NewManualMockRoller()

	_, err := dice.RollGuard(roller, dice.NewBand(-1, 6, 10, 0))
	assert.True(t, tgerr.IsInvalidArgument(err))

	_, err = dice.RollGuard(roller, dice.NewBand(2, 0, 10, 0))
	assert.True(t, tgerr.IsInvalidArgument(err))

	_, err = dice.RollGuard(roller, dice.NewBand(dice.MaxDice+1, 6, 10, 0))
	assert.True(t, tgerr.IsInvalidArgument(err))

	assert.Zero(t, roller.Calls())
}

func TestRollGuard_HugePoolIsRejected(t *testing.T) {
	roller := dice.NewSeededRoller(1)

	assert.NotPanics(t, func() {
		_, err := dice.RollGuard(roller, dice.NewBand(4000000000000000000, 6, 10, 0))
		assert.True(t, tgerr.IsInvalidArgument(err))
	})

	_, err := dice.ResolveAttack(roller, dice.AttackRoll{DiceCount: 1 << 40, LowerGuard: 3, UpperGuard: 6})
	assert.True(t, tgerr.IsInvalidArgument(err))

	out, err := dice.RollGuard(roller, dice.NewBand(dice.MaxDice, 6, 10, 0))
	require.NoError(t, err)
	assert.Len(t, out.Rolls, dice.MaxDice)
}

func TestClampPool(t *testing.T) {
	assert.Equal(t, 0, dice.ClampPool(-3))
	assert.Equal(t, 7, dice.ClampPool(7))
	assert.Equal(t, dice.MaxDice, dice.ClampPool(dice.MaxDice))
	assert.Equal(t, dice.MaxDice, dice.ClampPool(1<<40))
}

func TestRollGuard_SuccessRange(t *testing.T) {
	roller := dice.NewSeededRoller(7)

	for count := 0; count <= 12; count++ {
		for difficulty := 1; difficulty <= 10; difficulty++ {
			for critical := 1; critical <= 10; critical++ {
				out, err := dice.RollGuard(roller, dice.NewBand(count, difficulty, critical, 0))
				require.NoError(t, err)
				assert.GreaterOrEqual(t, out.Successes, 0)
				assert.LessOrEqual(t, out.Successes, 2*count)
			}
		}
	}
}

func TestResolveAttack_SharesOnePool(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{3, 5, 7, 10})

	out, err := dice.ResolveAttack(roller, dice.AttackRoll{
		DiceCount:  4,
		LowerGuard: 5,
		UpperGuard: 9,
		Accuracy:   1,
		Critical:   10,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, roller.Calls())

	// lower difficulty 4: 5, 7, 10 hit, 10 crits
	assert.Equal(t, 4, out.Lower.Band.Difficulty)
	assert.Equal(t, 4, out.Lower.Successes)
	// upper difficulty 8: only 10 hits, and crits
	assert.Equal(t, 8, out.Upper.Band.Difficulty)
	assert.Equal(t, 2, out.Upper.Successes)
	assert.Equal(t, out.Lower.Rolls, out.Upper.Rolls)
}

func TestAttackRoll_BandsClampThresholds(t *testing.T) {
	lower, upper := dice.AttackRoll{
		DiceCount:  3,
		LowerGuard: 2,
		UpperGuard: 4,
		Accuracy:   6,
	}.Bands()

	assert.Equal(t, 1, lower.Difficulty)
	assert.Equal(t, 1, upper.Difficulty)
	assert.Equal(t, dice.DefaultSides, lower.Sides)
	assert.Equal(t, dice.DefaultSides, upper.Critical)
	assert.Equal(t, 1, upper.BonusPerCritical)
}
