package formula

import (
	"math"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
)

// node is a parsed expression tree element
type node interface {
	eval(bindings map[string]float64) (float64, error)
}

type numberNode struct {
	value float64
}

func (n numberNode) eval(map[string]float64) (float64, error) {
	return n.value, nil
}

type variableNode struct {
	name string
}

func (n variableNode) eval(bindings map[string]float64) (float64, error) {
	value, ok := bindings[n.name]
	if !ok {
		return 0, tgerr.UndefinedVariable(n.name)
	}
	return value, nil
}

type negateNode struct {
	operand node
}

func (n negateNode) eval(bindings map[string]float64) (float64, error) {
	v, err := n.operand.eval(bindings)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

type binaryNode struct {
	op          tokenKind
	left, right node
}

func (n binaryNode) eval(bindings map[string]float64) (float64, error) {
	left, err := n.left.eval(bindings)
	if err != nil {
		return 0, err
	}
	right, err := n.right.eval(bindings)
	if err != nil {
		return 0, err
	}

	switch n.op {
	case tokenPlus:
		return left + right, nil
	case tokenMinus:
		return left - right, nil
	case tokenStar:
		return left * right, nil
	case tokenSlash:
		if right == 0 {
			return 0, tgerr.DivisionByZero()
		}
		return left / right, nil
	default:
		return 0, tgerr.Internalf("unknown operator %d", n.op)
	}
}

type callNode struct {
	fn   function
	args []node
}

func (n callNode) eval(bindings map[string]float64) (float64, error) {
	values := make([]float64, len(n.args))
	for i, arg := range n.args {
		v, err := arg.eval(bindings)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}
	return n.fn.apply(values), nil
}

type function struct {
	arity int // -1 means one or more
	apply func(args []float64) float64
}

var functions = map[string]function{
	"floor": {arity: 1, apply: func(a []float64) float64 { return math.Floor(a[0]) }},
	"ceil":  {arity: 1, apply: func(a []float64) float64 { return math.Ceil(a[0]) }},
	"round": {arity: 1, apply: func(a []float64) float64 { return math.Round(a[0]) }},
	"abs":   {arity: 1, apply: func(a []float64) float64 { return math.Abs(a[0]) }},
	"min": {arity: -1, apply: func(a []float64) float64 {
		out := a[0]
		for _, v := range a[1:] {
			out = math.Min(out, v)
		}
		return out
	}},
	"max": {arity: -1, apply: func(a []float64) float64 {
		out := a[0]
		for _, v := range a[1:] {
			out = math.Max(out, v)
		}
		return out
	}},
}

// parser is a recursive descent parser over the token stream.
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := ('-' | '+') unary | primary
//	primary := number | variable | ident '(' expr (',' expr)* ')' | '(' expr ')'
type parser struct {
	tokens []token
	pos    int
}

func parse(expression string) (node, error) {
	tokens, err := lex(expression)
	if err != nil {
		return nil, err
	}
	if tokens[0].kind == tokenEOF {
		return nil, tgerr.MalformedExpressionf("empty expression")
	}

	p := &parser{tokens: tokens}
	root, err := p.expr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, tgerr.MalformedExpressionf("unexpected %q at position %d", tok.text, tok.pos)
	}
	return root, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expr() (node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokenPlus && op != tokenMinus {
			return left, nil
		}
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

func (p *parser) term() (node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokenStar && op != tokenSlash {
			return left, nil
		}
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

func (p *parser) unary() (node, error) {
	switch p.peek().kind {
	case tokenMinus:
		p.next()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return negateNode{operand: operand}, nil
	case tokenPlus:
		p.next()
		return p.unary()
	}
	return p.primary()
}

func (p *parser) primary() (node, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNumber:
		return numberNode{value: tok.value}, nil
	case tokenVariable:
		return variableNode{name: tok.text}, nil
	case tokenLParen:
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokenRParen {
			return nil, tgerr.MalformedExpressionf("missing ')' at position %d", closing.pos)
		}
		return inner, nil
	case tokenIdent:
		return p.call(tok)
	case tokenEOF:
		return nil, tgerr.MalformedExpressionf("unexpected end of expression")
	default:
		return nil, tgerr.MalformedExpressionf("unexpected %q at position %d", tok.text, tok.pos)
	}
}

func (p *parser) call(name token) (node, error) {
	fn, ok := functions[name.text]
	if !ok {
		return nil, tgerr.MalformedExpressionf("unknown function %q at position %d", name.text, name.pos)
	}
	if open := p.next(); open.kind != tokenLParen {
		return nil, tgerr.MalformedExpressionf("expected '(' after %s at position %d", name.text, open.pos)
	}

	var args []node
	for {
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok := p.next()
		if tok.kind == tokenRParen {
			break
		}
		if tok.kind != tokenComma {
			return nil, tgerr.MalformedExpressionf("missing ')' after arguments to %s at position %d", name.text, tok.pos)
		}
	}

	if fn.arity >= 0 && len(args) != fn.arity {
		return nil, tgerr.MalformedExpressionf("%s takes %d argument(s), got %d", name.text, fn.arity, len(args))
	}
	return callNode{fn: fn, args: args}, nil
}
