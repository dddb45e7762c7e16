package dice

import (
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
)

// Band describes one success-counting roll: how many dice, what a success
// needs, what a critical needs and what is added at the end.
type Band struct {
	DiceCount        int `json:"dice_count"`
	Difficulty       int `json:"difficulty"`
	Critical         int `json:"critical"`
	Sides            int `json:"sides"`
	BonusPerCritical int `json:"bonus_per_critical"`
	Modifier         int `json:"modifier"`
}

// NewBand builds a band with the default die size and one bonus success per critical
func NewBand(diceCount, difficulty, critical, modifier int) Band {
	return Band{
		DiceCount:        diceCount,
		Difficulty:       difficulty,
		Critical:         critical,
		Sides:            DefaultSides,
		BonusPerCritical: 1,
		Modifier:         modifier,
	}
}

// Validate checks the band can be rolled
func (b Band) Validate() error {
	if b.DiceCount < 0 {
		return tgerr.InvalidArgumentf("dice count cannot be negative: %d", b.DiceCount)
	}
	if b.DiceCount > MaxDice {
		return tgerr.InvalidArgumentf("dice count cannot exceed %d: %d", MaxDice, b.DiceCount)
	}
	if b.Sides < 1 {
		return tgerr.InvalidArgumentf("dice must have at least one side: %d", b.Sides)
	}
	if b.Difficulty < 1 {
		return tgerr.InvalidArgumentf("difficulty must be positive: %d", b.Difficulty)
	}
	if b.Critical < 1 {
		return tgerr.InvalidArgumentf("critical threshold must be positive: %d", b.Critical)
	}
	return nil
}

// GuardOutcome is the graded result of one band
type GuardOutcome struct {
	// Successes is hits plus critical bonuses plus the modifier. It can be
	// negative when the modifier is.
	Successes int   `json:"successes"`
	Hits      int   `json:"hits"`
	Criticals int   `json:"criticals"`
	Rolls     []int `json:"rolls"`
	Band      Band  `json:"band"`
}

// Tally grades already rolled dice against a band.
//
// A die at or above Difficulty is one success, a die at or above Critical
// adds BonusPerCritical more. Dice below Difficulty count zero. The
// modifier is added once and the total is not floored.
func Tally(rolls []int, band Band) GuardOutcome {
	out := GuardOutcome{
		Rolls: append([]int(nil), rolls...),
		Band:  band,
	}

	for _, roll := range rolls {
		if roll >= band.Difficulty {
			out.Hits++
		}
		if roll >= band.Critical {
			out.Criticals++
		}
	}

	out.Successes = out.Hits + out.Criticals*band.BonusPerCritical + band.Modifier
	return out
}

// RollGuard rolls band.DiceCount dice and tallies them
func RollGuard(roller Roller, band Band) (*GuardOutcome, error) {
	if err := band.Validate(); err != nil {
		return nil, err
	}

	var rolls []int
	if band.DiceCount > 0 {
		result, err := roller.Roll(band.DiceCount, band.Sides, 0)
		if err != nil {
			return nil, tgerr.Wrap(err, "failed to roll guard dice")
		}
		rolls = result.Rolls
	}

	out := Tally(rolls, band)
	return &out, nil
}

// AttackRoll is everything needed to grade one attack against both guards
type AttackRoll struct {
	DiceCount  int
	LowerGuard int
	UpperGuard int
	// Accuracy lowers both guard thresholds
	Accuracy         int
	Critical         int
	Sides            int
	BonusPerCritical int
	Modifier         int
}

// AttackOutcome holds the graded lower and upper guards of one attack
type AttackOutcome struct {
	Lower *GuardOutcome `json:"lower"`
	Upper *GuardOutcome `json:"upper"`
}

// Bands derives the lower and upper bands of an attack. Thresholds never drop
// below one.
func (a AttackRoll) Bands() (lower, upper Band) {
	sides := a.Sides
	if sides < 1 {
		sides = DefaultSides
	}
	critical := a.Critical
	if critical < 1 {
		critical = sides
	}
	bonus := a.BonusPerCritical
	if bonus == 0 {
		bonus = 1
	}

	band := func(guard int) Band {
		return Band{
			DiceCount:        a.DiceCount,
			Difficulty:       max(1, guard-a.Accuracy),
			Critical:         critical,
			Sides:            sides,
			BonusPerCritical: bonus,
			Modifier:         a.Modifier,
		}
	}
	return band(a.LowerGuard), band(a.UpperGuard)
}

// ResolveAttack rolls the attacker's pool once and grades the same dice
// against both guards, so the two bands are correlated.
func ResolveAttack(roller Roller, attack AttackRoll) (*AttackOutcome, error) {
	lower, upper := attack.Bands()
	if err := lower.Validate(); err != nil {
		return nil, err
	}
	if err := upper.Validate(); err != nil {
		return nil, err
	}

	var rolls []int
	if attack.DiceCount > 0 {
		result, err := roller.Roll(attack.DiceCount, lower.Sides, 0)
		if err != nil {
			return nil, tgerr.Wrap(err, "failed to roll attack dice")
		}
		rolls = result.Rolls
	}

	lowerOut := Tally(rolls, lower)
	upperOut := Tally(rolls, upper)
	return &AttackOutcome{
		Lower: &lowerOut,
		Upper: &upperOut,
	}, nil
}
