// Package formula evaluates the arithmetic expressions that drive togarashi
// damage and derived stats.
//
// Expressions reference named values with @{name} placeholders:
//
//	floor(@{dano-suc} * @{suc-baixo} * 0.5)
//
// Supported syntax is + - * / with the usual precedence, unary minus,
// parentheses and the functions floor, ceil, round, abs, min and max.
// Evaluation is pure: the same expression and bindings always yield the
// same value or the same error.
package formula

import (
	"math"
	"sort"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
)

// Evaluator evaluates an expression against a set of bindings
type Evaluator interface {
	Evaluate(expression string, bindings map[string]float64) (float64, error)
}

// Engine is the default Evaluator
type Engine struct{}

// NewEngine creates a formula engine
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate implements Evaluator
func (e *Engine) Evaluate(expression string, bindings map[string]float64) (float64, error) {
	return Evaluate(expression, bindings)
}

// Evaluate parses expression and computes it with bindings.
//
// Errors carry one of the codes undefined_variable, malformed_expression or
// division_by_zero. Unbound placeholders are reported before the expression
// is parsed or computed, so the error does not depend on evaluation order.
func Evaluate(expression string, bindings map[string]float64) (float64, error) {
	// every placeholder must be bound before anything is computed
	names, err := Variables(expression)
	if err != nil {
		return 0, err
	}
	for _, name := range names {
		if _, ok := bindings[name]; !ok {
			return 0, tgerr.UndefinedVariable(name)
		}
	}

	root, err := parse(expression)
	if err != nil {
		return 0, err
	}

	value, err := root.eval(bindings)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, tgerr.MalformedExpressionf("expression produced a non-finite value")
	}
	return value, nil
}

// Validate reports whether expression parses, without evaluating it
func Validate(expression string) error {
	_, err := parse(expression)
	return err
}

// Variables returns the distinct placeholder names used by expression, sorted
func Variables(expression string) ([]string, error) {
	tokens, err := lex(expression)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	for _, tok := range tokens {
		if tok.kind == tokenVariable && !seen[tok.text] {
			seen[tok.text] = true
			names = append(names, tok.text)
		}
	}
	sort.Strings(names)
	return names, nil
}
