package damage_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/KirkDiggler/togarashi-bot/internal/damage"
	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput() *damage.Input {
	return &damage.Input{
		UpperSuccesses:   3,
		LowerSuccesses:   2,
		DamageTypes:      damage.TypePair{"cut", "blunt"},
		DamagePerSuccess: 10,
		Formulas:         formula.DefaultSet(),
	}
}

func TestCalculate_NoBlocks(t *testing.T) {
	calc := damage.NewCalculator(nil)

	result, err := calc.Calculate(baseInput())

	require.NoError(t, err)
	assert.Equal(t, 30, result.UpperDamage)
	assert.Equal(t, 10, result.LowerDamage)
	assert.Equal(t, 40, result.TotalDamage)
	assert.Equal(t, map[string]int{"cut": 30, "blunt": 10}, result.PerType)
	assert.Empty(t, result.Reductions)
}

func TestCalculate_ArmorBlock(t *testing.T) {
	calc := damage.NewCalculator(nil)
	input := baseInput()
	input.Defense.ArmorBlock = 5

	result, err := calc.Calculate(input)

	require.NoError(t, err)
	// floor(5*3 + 5*2*0.5) = 20 taken from the upper band
	assert.Equal(t, []damage.Reduction{{Source: damage.SourceArmorBlock, Amount: 20, Applied: 20}}, result.Reductions)
	assert.Equal(t, 10, result.UpperDamage)
	assert.Equal(t, 10, result.LowerDamage)
	assert.Equal(t, 20, result.TotalDamage)
}

func TestCalculate_ReductionSpillsIntoLowerBand(t *testing.T) {
	calc := damage.NewCalculator(nil)
	input := baseInput()
	input.Defense.WeaponBlock = 2 // floor(2*3 + 2*2*0.5) = 8
	input.Defense.ArmorBlock = 5  // 20
	input.Defense.AuraShieldBlock = 7
	input.Defense.OtherBlock = 100

	result, err := calc.Calculate(input)

	require.NoError(t, err)
	assert.Equal(t, []damage.Reduction{
		{Source: damage.SourceWeaponBlock, Amount: 8, Applied: 8},
		{Source: damage.SourceArmorBlock, Amount: 20, Applied: 20},
		{Source: damage.SourceAuraShield, Amount: 7, Applied: 7},
		{Source: damage.SourceOtherBlock, Amount: 100, Applied: 5},
	}, result.Reductions)
	assert.Equal(t, 0, result.UpperDamage)
	assert.Equal(t, 0, result.LowerDamage)
	assert.Equal(t, 0, result.TotalDamage)
}

func TestCalculate_SameTypeSums(t *testing.T) {
	calc := damage.NewCalculator(nil)
	input := baseInput()
	input.DamageTypes = damage.TypePair{"fire", "fire"}

	result, err := calc.Calculate(input)

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"fire": 40}, result.PerType)
}

func TestCalculate_NegativeSuccessesClamped(t *testing.T) {
	calc := damage.NewCalculator(nil)
	input := baseInput()
	input.UpperSuccesses = -4
	input.LowerSuccesses = -1
	input.Defense.ArmorBlock = 3

	result, err := calc.Calculate(input)

	require.NoError(t, err)
	assert.Zero(t, result.UpperDamage)
	assert.Zero(t, result.LowerDamage)
	assert.Zero(t, result.TotalDamage)
}

func TestCalculate_AttackResisted(t *testing.T) {
	calc := damage.NewCalculator(nil)
	input := baseInput()
	input.AttackResisted = true

	result, err := calc.Calculate(input)

	require.NoError(t, err)
	// damage per success floor(10 * 0.5) = 5
	assert.Equal(t, 15, result.UpperDamage)
	assert.Equal(t, 5, result.LowerDamage)
	assert.Equal(t, 20, result.TotalDamage)
}

func TestCalculate_FormulaErrorsSurface(t *testing.T) {
	tests := []struct {
		name     string
		role     formula.Role
		expr     string
		defense  entities.DefenseProfile
		wantCode tgerr.Code
	}{
		{
			name:     "undefined variable in upper",
			role:     formula.RoleUpperGuardDamage,
			expr:     "@{dano-suc} * @{suc-baixo}",
			wantCode: tgerr.CodeUndefinedVariable,
		},
		{
			name:     "malformed total",
			role:     formula.RoleTotalDamage,
			expr:     "@{dano-cima} + ",
			wantCode: tgerr.CodeMalformedExpression,
		},
		{
			name:     "division by zero in armor",
			role:     formula.RoleDefenseArmorResist,
			expr:     "@{dano-bloqueado-armadura} / 0",
			defense:  entities.DefenseProfile{ArmorBlock: 1},
			wantCode: tgerr.CodeDivisionByZero,
		},
		{
			name:     "missing role",
			role:     formula.RoleLowerGuardDamage,
			wantCode: tgerr.CodeMalformedExpression,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := baseInput()
			input.Defense = tt.defense
			if tt.expr == "" {
				delete(input.Formulas, tt.role)
			} else {
				input.Formulas[tt.role] = tt.expr
			}

			result, err := damage.NewCalculator(nil).Calculate(input)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.wantCode, tgerr.GetCode(err))
		})
	}
}

func TestCalculate_SkipsUnusedReductionFormulas(t *testing.T) {
	input := baseInput()
	input.Formulas[formula.RoleDefenseWeaponResist] = "broken("
	input.Formulas[formula.RoleDefenseArmorResist] = "broken("

	result, err := damage.NewCalculator(nil).Calculate(input)

	require.NoError(t, err)
	assert.Equal(t, 40, result.TotalDamage)
}

func TestCalculate_Monotonic(t *testing.T) {
	calc := damage.NewCalculator(nil)

	blocks := []func(*entities.DefenseProfile, int){
		func(d *entities.DefenseProfile, v int) { d.WeaponBlock = v },
		func(d *entities.DefenseProfile, v int) { d.ArmorBlock = v },
		func(d *entities.DefenseProfile, v int) { d.AuraShieldBlock = v },
		func(d *entities.DefenseProfile, v int) { d.OtherBlock = v },
	}

	for i, setBlock := range blocks {
		values := make([]int, 0, 36)
		for value := 0; value <= 30; value++ {
			values = append(values, value)
		}
		// reductions past the int range saturate instead of wrapping
		values = append(values, 1000, 1<<40, 1<<62, math.MaxInt/2, math.MaxInt)

		var previous *damage.Result
		for _, value := range values {
			input := baseInput()
			input.Defense = entities.DefenseProfile{WeaponBlock: 1, ArmorBlock: 1, AuraShieldBlock: 1, OtherBlock: 1}
			setBlock(&input.Defense, value)

			result, err := calc.Calculate(input)
			require.NoError(t, err)

			if previous != nil {
				assert.LessOrEqual(t, result.UpperDamage, previous.UpperDamage, "block %d value %d", i, value)
				assert.LessOrEqual(t, result.LowerDamage, previous.LowerDamage, "block %d value %d", i, value)
				assert.LessOrEqual(t, result.TotalDamage, previous.TotalDamage, "block %d value %d", i, value)
			}
			previous = result
		}
	}
}

func TestCalculate_HugeArmorBlocksEverything(t *testing.T) {
	calc := damage.NewCalculator(nil)

	small := baseInput()
	small.Defense = entities.DefenseProfile{ArmorBlock: 1000}
	smallResult, err := calc.Calculate(small)
	require.NoError(t, err)

	huge := baseInput()
	huge.Defense = entities.DefenseProfile{ArmorBlock: 1 << 62}
	hugeResult, err := calc.Calculate(huge)
	require.NoError(t, err)

	assert.Zero(t, smallResult.TotalDamage)
	assert.Zero(t, hugeResult.TotalDamage)
	require.Len(t, hugeResult.Reductions, 1)
	assert.Equal(t, math.MaxInt, hugeResult.Reductions[0].Amount)
}

func TestCalculate_SameTypeDoesNotWrap(t *testing.T) {
	input := baseInput()
	input.DamageTypes = damage.TypePair{"cut", "cut"}
	input.DamagePerSuccess = math.MaxInt

	result, err := damage.NewCalculator(nil).Calculate(input)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, result.PerType["cut"])
	assert.Equal(t, math.MaxInt, result.TotalDamage)
}

func TestCalculate_NeverNegative(t *testing.T) {
	calc := damage.NewCalculator(nil)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 500; i++ {
		input := &damage.Input{
			UpperSuccesses:   rng.Intn(21) - 10,
			LowerSuccesses:   rng.Intn(21) - 10,
			DamageTypes:      damage.TypePair{"a", "b"},
			DamagePerSuccess: rng.Intn(41) - 20,
			Defense: entities.DefenseProfile{
				WeaponBlock:     rng.Intn(10),
				ArmorBlock:      rng.Intn(10),
				AuraShieldBlock: rng.Intn(30) - 10,
				OtherBlock:      rng.Intn(30) - 10,
			},
			Formulas: formula.DefaultSet(),
		}

		result, err := calc.Calculate(input)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.UpperDamage, 0)
		assert.GreaterOrEqual(t, result.LowerDamage, 0)
		assert.GreaterOrEqual(t, result.TotalDamage, 0)
		assert.Equal(t, result.UpperDamage+result.LowerDamage, result.TotalDamage)
	}
}

func TestCalculate_DoesNotMutateDefense(t *testing.T) {
	input := baseInput()
	input.Defense = entities.DefenseProfile{WeaponBlock: 3, ArmorBlock: 2, AuraShieldBlock: 1, OtherBlock: 4}
	snapshot := input.Defense

	_, err := damage.NewCalculator(nil).Calculate(input)

	require.NoError(t, err)
	assert.Equal(t, snapshot, input.Defense)
}
