package formula_test

import (
	"testing"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		bindings   map[string]float64
		want       float64
	}{
		{
			name:       "sum of placeholders",
			expression: "@{a} + @{b}",
			bindings:   map[string]float64{"a": 2, "b": 3},
			want:       5,
		},
		{
			name:       "floor of division",
			expression: "floor(@{a} / @{b})",
			bindings:   map[string]float64{"a": 7, "b": 2},
			want:       3,
		},
		{
			name:       "precedence",
			expression: "1 + 2 * 3 - 4 / 2",
			want:       5,
		},
		{
			name:       "parentheses",
			expression: "(1 + 2) * 3",
			want:       9,
		},
		{
			name:       "unary minus",
			expression: "-@{a} * -2",
			bindings:   map[string]float64{"a": 4},
			want:       8,
		},
		{
			name:       "negative binding subtracted",
			expression: "10 - @{a}",
			bindings:   map[string]float64{"a": -5},
			want:       15,
		},
		{
			name:       "hyphenated names",
			expression: "@{dano-suc} * @{suc-cima}",
			bindings:   map[string]float64{"dano-suc": 10, "suc-cima": 3},
			want:       30,
		},
		{
			name:       "lower guard default",
			expression: "floor(@{dano-suc} * @{suc-baixo} * 0.5)",
			bindings:   map[string]float64{"dano-suc": 10, "suc-baixo": 3},
			want:       15,
		},
		{
			name:       "floor rounds toward negative infinity",
			expression: "floor(-2.5)",
			want:       -3,
		},
		{
			name:       "min and max",
			expression: "max(0, min(@{a}, 4, 9))",
			bindings:   map[string]float64{"a": 6},
			want:       4,
		},
		{
			name:       "extra bindings are ignored",
			expression: "@{a}",
			bindings:   map[string]float64{"a": 1, "unused": 99},
			want:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formula.Evaluate(tt.expression, tt.bindings)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		bindings   map[string]float64
		wantCode   tgerr.Code
	}{
		{
			name:       "missing binding",
			expression: "@{x}",
			bindings:   map[string]float64{},
			wantCode:   tgerr.CodeUndefinedVariable,
		},
		{
			name:       "division by zero",
			expression: "@{a} / @{b}",
			bindings:   map[string]float64{"a": 1, "b": 0},
			wantCode:   tgerr.CodeDivisionByZero,
		},
		{
			name:       "division by computed zero",
			expression: "1 / (2 - 2)",
			wantCode:   tgerr.CodeDivisionByZero,
		},
		{
			name:       "unbalanced open paren",
			expression: "(1 + 2",
			wantCode:   tgerr.CodeMalformedExpression,
		},
		{
			name:       "unbalanced close paren",
			expression: "1 + 2)",
			wantCode:   tgerr.CodeMalformedExpression,
		},
		{
			name:       "unknown function",
			expression: "sqrt(4)",
			wantCode:   tgerr.CodeMalformedExpression,
		},
		{
			name:       "unknown token",
			expression: "2 ^ 3",
			wantCode:   tgerr.CodeMalformedExpression,
		},
		{
			name:       "unterminated placeholder",
			expression: "@{a + 1",
			wantCode:   tgerr.CodeMalformedExpression,
		},
		{
			name:       "empty expression",
			expression: "   ",
			wantCode:   tgerr.CodeMalformedExpression,
		},
		{
			name:       "dangling operator",
			expression: "1 +",
			wantCode:   tgerr.CodeMalformedExpression,
		},
		{
			name:       "wrong arity",
			expression: "floor(1, 2)",
			wantCode:   tgerr.CodeMalformedExpression,
		},
		{
			name:       "bad number",
			expression: "1.2.3",
			wantCode:   tgerr.CodeMalformedExpression,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := formula.Evaluate(tt.expression, tt.bindings)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, tgerr.GetCode(err))
		})
	}
}

func TestEvaluate_UnboundPlaceholderReportedFirst(t *testing.T) {
	tests := []struct {
		name       string
		expression string
	}{
		{name: "after a division by zero", expression: "1/0 + @{x}"},
		{name: "before a dangling operator", expression: "@{x} +"},
		{name: "inside a function call", expression: "floor(1/0, @{x})"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := formula.Evaluate(tt.expression, nil)

			require.Error(t, err)
			assert.Equal(t, tgerr.CodeUndefinedVariable, tgerr.GetCode(err))
			assert.Equal(t, "x", tgerr.GetMeta(err)["variable"])
		})
	}
}

func TestEvaluate_BoundExpressionStillChecked(t *testing.T) {
	_, err := formula.Evaluate("1/0 + @{x}", map[string]float64{"x": 1})
	assert.Equal(t, tgerr.CodeDivisionByZero, tgerr.GetCode(err))

	_, err = formula.Evaluate("@{x} +", map[string]float64{"x": 1})
	assert.Equal(t, tgerr.CodeMalformedExpression, tgerr.GetCode(err))
}

func TestEvaluate_UndefinedVariableNamesKey(t *testing.T) {
	_, err := formula.Evaluate("@{a} + @{missing}", map[string]float64{"a": 1})

	require.Error(t, err)
	assert.Equal(t, "missing", tgerr.GetMeta(err)["variable"])
	assert.Contains(t, err.Error(), "missing")
}

func TestEvaluate_Deterministic(t *testing.T) {
	bindings := map[string]float64{"dano-suc": 7, "suc-baixo": 5}
	expr := "floor(@{dano-suc} * @{suc-baixo} * 0.5)"

	first, err := formula.Evaluate(expr, bindings)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := formula.Evaluate(expr, bindings)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestVariables(t *testing.T) {
	names, err := formula.Variables("floor(@{b} * @{a} + @{b})")

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}
