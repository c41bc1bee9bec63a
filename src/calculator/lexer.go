// backend/src/calculator/lexer.go
package calculator

import (
	"fmt"
	"strconv"
)

// TokenType represents the kind of token in the arithmetic grammar.
type TokenType int

const (
	EOF TokenType = iota
	NUMBER
	PLUS
	MINUS
	MULT
	DIV
	LPAREN
	RPAREN
)

// Token is a lexical token with its source position.
type Token struct {
	Type   TokenType
	Lexeme string
	Value  float64 // parsed value for NUMBER tokens
	Pos    int
}

type lexer struct {
	src string
	pos int
}

// scan tokenizes an expression body over the closed character set the
// evaluator accepts. The caller has already filtered the input, so any
// stray character here is a hard error, not a recoverable one.
func (l *lexer) scan() ([]Token, error) {
	var tokens []Token
	for l.pos < len(l.src) {
		start := l.pos
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t':
			l.pos++
		case c == '+':
			l.pos++
			tokens = append(tokens, Token{Type: PLUS, Lexeme: "+", Pos: start})
		case c == '-':
			l.pos++
			tokens = append(tokens, Token{Type: MINUS, Lexeme: "-", Pos: start})
		case c == '*':
			l.pos++
			tokens = append(tokens, Token{Type: MULT, Lexeme: "*", Pos: start})
		case c == '/':
			l.pos++
			tokens = append(tokens, Token{Type: DIV, Lexeme: "/", Pos: start})
		case c == '(':
			l.pos++
			tokens = append(tokens, Token{Type: LPAREN, Lexeme: "(", Pos: start})
		case c == ')':
			l.pos++
			tokens = append(tokens, Token{Type: RPAREN, Lexeme: ")", Pos: start})
		case (c >= '0' && c <= '9') || c == '.':
			for l.pos < len(l.src) && ((l.src[l.pos] >= '0' && l.src[l.pos] <= '9') || l.src[l.pos] == '.') {
				l.pos++
			}
			lexeme := l.src[start:l.pos]
			v, err := strconv.ParseFloat(lexeme, 64)
			if err != nil {
				return nil, fmt.Errorf("malformed number %q at position %d", lexeme, start)
			}
			tokens = append(tokens, Token{Type: NUMBER, Lexeme: lexeme, Value: v, Pos: start})
		default:
			return nil, fmt.Errorf("unexpected character %q at position %d", c, start)
		}
	}
	tokens = append(tokens, Token{Type: EOF, Pos: len(l.src)})
	return tokens, nil
}
