// Package damage turns guard successes into damage using the configured
// formulas and the defender's reductions.
package damage

import (
	"math"

	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/formula"
)

// TypePair holds the damage type of the upper band (index 0) and of the lower
// band (index 1). Both may be the same tag.
type TypePair [2]string

// Reduction sources, in the order they are applied
const (
	SourceWeaponBlock = "weapon_block"
	SourceArmorBlock  = "armor_block"
	SourceAuraShield  = "aura_shield"
	SourceOtherBlock  = "other_block"
)

// Input bundles everything one damage calculation needs
type Input struct {
	UpperSuccesses   int
	LowerSuccesses   int
	DamageTypes      TypePair
	DamagePerSuccess int
	// AttackResisted runs the damage per success through
	// attackWeaponResistDamageCalc before anything else
	AttackResisted bool
	Defense        entities.DefenseProfile
	Formulas       formula.Set
}

// Reduction records one reduction step
type Reduction struct {
	Source string `json:"source"`
	// Amount is what the step asked to remove
	Amount int `json:"amount"`
	// Applied is what was actually removed after flooring
	Applied int `json:"applied"`
}

// Result is the damage of one attack, immutable once returned
type Result struct {
	UpperDamage int            `json:"upper_damage"`
	LowerDamage int            `json:"lower_damage"`
	TotalDamage int            `json:"total_damage"`
	PerType     map[string]int `json:"per_type"`
	Reductions  []Reduction    `json:"reductions,omitempty"`
}

// Calculator runs the damage pipeline
type Calculator struct {
	evaluator formula.Evaluator
}

// NewCalculator creates a calculator. A nil evaluator uses the default engine.
func NewCalculator(evaluator formula.Evaluator) *Calculator {
	if evaluator == nil {
		evaluator = formula.NewEngine()
	}
	return &Calculator{evaluator: evaluator}
}

// Calculate computes the damage of an attack. Formula steps run in a fixed
// order: upper band, lower band, weapon block, armor block, then total. Aura
// shield and other block are flat reductions applied after armor.
//
// Each reduction eats into the upper band first and spills into the lower
// band; neither band drops below zero. Formula errors are returned as is.
func (c *Calculator) Calculate(input *Input) (*Result, error) {
	if input == nil {
		return nil, tgerr.InvalidArgument("damage input cannot be nil")
	}
	if input.Formulas == nil {
		return nil, tgerr.InvalidArgument("formula set is required")
	}

	upperSuccesses := float64(max(0, input.UpperSuccesses))
	lowerSuccesses := float64(max(0, input.LowerSuccesses))

	damagePerSuccess := input.DamagePerSuccess
	if input.AttackResisted {
		resisted, err := c.AttackWeaponResist(input.Formulas, damagePerSuccess)
		if err != nil {
			return nil, err
		}
		damagePerSuccess = resisted
	}

	upperRaw, err := c.eval(input.Formulas, formula.RoleUpperGuardDamage, map[string]float64{
		formula.VarDamagePerSuccess: float64(damagePerSuccess),
		formula.VarUpperSuccesses:   upperSuccesses,
	})
	if err != nil {
		return nil, err
	}

	lowerRaw, err := c.eval(input.Formulas, formula.RoleLowerGuardDamage, map[string]float64{
		formula.VarDamagePerSuccess: float64(damagePerSuccess),
		formula.VarLowerSuccesses:   lowerSuccesses,
	})
	if err != nil {
		return nil, err
	}

	b := &bands{upper: max(0, upperRaw), lower: max(0, lowerRaw)}
	var reductions []Reduction

	if input.Defense.WeaponBlock > 0 {
		amount, err := c.eval(input.Formulas, formula.RoleDefenseWeaponResist, map[string]float64{
			formula.VarWeaponBlocked:  float64(input.Defense.WeaponBlock),
			formula.VarUpperSuccesses: upperSuccesses,
			formula.VarLowerSuccesses: lowerSuccesses,
		})
		if err != nil {
			return nil, err
		}
		reductions = append(reductions, b.reduce(SourceWeaponBlock, amount))
	}

	if input.Defense.ArmorBlock > 0 {
		amount, err := c.eval(input.Formulas, formula.RoleDefenseArmorResist, map[string]float64{
			formula.VarArmorBlocked:   float64(input.Defense.ArmorBlock),
			formula.VarUpperSuccesses: upperSuccesses,
			formula.VarLowerSuccesses: lowerSuccesses,
		})
		if err != nil {
			return nil, err
		}
		reductions = append(reductions, b.reduce(SourceArmorBlock, amount))
	}

	if input.Defense.AuraShieldBlock > 0 {
		reductions = append(reductions, b.reduce(SourceAuraShield, input.Defense.AuraShieldBlock))
	}
	if input.Defense.OtherBlock > 0 {
		reductions = append(reductions, b.reduce(SourceOtherBlock, input.Defense.OtherBlock))
	}

	total, err := c.eval(input.Formulas, formula.RoleTotalDamage, map[string]float64{
		formula.VarUpperDamage: float64(b.upper),
		formula.VarLowerDamage: float64(b.lower),
	})
	if err != nil {
		return nil, err
	}

	perType := make(map[string]int, 2)
	perType[input.DamageTypes[0]] = b.upper
	perType[input.DamageTypes[1]] = addSaturated(perType[input.DamageTypes[1]], b.lower)

	return &Result{
		UpperDamage: b.upper,
		LowerDamage: b.lower,
		TotalDamage: max(0, total),
		PerType:     perType,
		Reductions:  reductions,
	}, nil
}

// AttackWeaponResist evaluates attackWeaponResistDamageCalc for a damage per
// success, floored at zero
func (c *Calculator) AttackWeaponResist(set formula.Set, damagePerSuccess int) (int, error) {
	value, err := c.eval(set, formula.RoleAttackWeaponResist, map[string]float64{
		formula.VarOrigDamagePerSucc: float64(damagePerSuccess),
	})
	if err != nil {
		return 0, err
	}
	return max(0, value), nil
}

func (c *Calculator) eval(set formula.Set, role formula.Role, bindings map[string]float64) (int, error) {
	value, err := set.Eval(c.evaluator, role, bindings)
	if err != nil {
		return 0, err
	}
	return formula.ToInt(value), nil
}

// addSaturated adds two non-negative amounts without wrapping
func addSaturated(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

type bands struct {
	upper int
	lower int
}

// reduce removes amount from the upper band, then the lower band
func (b *bands) reduce(source string, amount int) Reduction {
	r := Reduction{Source: source, Amount: amount}
	if amount <= 0 {
		return r
	}

	fromUpper := min(amount, b.upper)
	b.upper -= fromUpper
	fromLower := min(amount-fromUpper, b.lower)
	b.lower -= fromLower

	r.Applied = fromUpper + fromLower
	return r
}
