package formula

import (
	"strconv"
	"strings"
	"unicode"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenVariable
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenLParen
	tokenRParen
	tokenComma
)

type token struct {
	kind  tokenKind
	text  string
	value float64
	pos   int
}

// lex splits an expression into tokens. Placeholders become variable tokens
// so bound values never go through a text round trip.
func lex(expression string) ([]token, error) {
	var tokens []token
	src := []rune(expression)

	for i := 0; i < len(src); {
		r := src[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '@':
			if i+1 >= len(src) || src[i+1] != '{' {
				return nil, tgerr.MalformedExpressionf("expected '{' after '@' at position %d", i)
			}
			end := i + 2
			for end < len(src) && src[end] != '}' {
				end++
			}
			if end >= len(src) {
				return nil, tgerr.MalformedExpressionf("unterminated placeholder at position %d", i)
			}
			name := strings.TrimSpace(string(src[i+2 : end]))
			if name == "" || !validName(name) {
				return nil, tgerr.MalformedExpressionf("invalid placeholder name %q at position %d", name, i)
			}
			tokens = append(tokens, token{kind: tokenVariable, text: name, pos: i})
			i = end + 1
		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(src) && (unicode.IsDigit(src[i]) || src[i] == '.') {
				i++
			}
			text := string(src[start:i])
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, tgerr.MalformedExpressionf("invalid number %q at position %d", text, start)
			}
			tokens = append(tokens, token{kind: tokenNumber, text: text, value: value, pos: start})
		case unicode.IsLetter(r):
			start := i
			for i < len(src) && (unicode.IsLetter(src[i]) || unicode.IsDigit(src[i]) || src[i] == '_') {
				i++
			}
			tokens = append(tokens, token{kind: tokenIdent, text: string(src[start:i]), pos: start})
		default:
			kind, ok := punctuation[r]
			if !ok {
				return nil, tgerr.MalformedExpressionf("unexpected character %q at position %d", r, i)
			}
			tokens = append(tokens, token{kind: kind, text: string(r), pos: i})
			i++
		}
	}

	tokens = append(tokens, token{kind: tokenEOF, pos: len(src)})
	return tokens, nil
}

var punctuation = map[rune]tokenKind{
	'+': tokenPlus,
	'-': tokenMinus,
	'*': tokenStar,
	'/': tokenSlash,
	'(': tokenLParen,
	')': tokenRParen,
	',': tokenComma,
}

func validName(name string) bool {
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}
