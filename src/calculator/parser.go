// backend/src/calculator/parser.go
package calculator

import (
	"errors"
	"fmt"
)

// The grammar, with standard precedence and left-to-right associativity:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := NUMBER | '(' expr ')' | '-' factor
//
// There are no identifiers, calls or assignments in the token set, so
// the dangerous-input problem a sandboxed host evaluator would have is
// gone by construction.

// node is the evaluated AST. Division by zero yields an infinity here
// and is rejected by the finiteness check after evaluation.
type node interface {
	eval() float64
}

type numberNode struct {
	value float64
}

func (n numberNode) eval() float64 { return n.value }

type binaryNode struct {
	op          TokenType
	left, right node
}

func (n binaryNode) eval() float64 {
	l, r := n.left.eval(), n.right.eval()
	switch n.op {
	case PLUS:
		return l + r
	case MINUS:
		return l - r
	case MULT:
		return l * r
	default:
		return l / r
	}
}

type negateNode struct {
	operand node
}

func (n negateNode) eval() float64 { return -n.operand.eval() }

var errTooDeep = errors.New("expression nesting is too deep")

type parser struct {
	tokens []Token
	pos    int
	depth  int
}

func parse(tokens []Token) (node, error) {
	p := &parser{tokens: tokens}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != EOF {
		return nil, fmt.Errorf("unexpected %q at position %d", p.peek().Lexeme, p.peek().Pos)
	}
	return n, nil
}

func (p *parser) peek() Token { return p.tokens[p.pos] }

func (p *parser) next() Token {
	t := p.tokens[p.pos]
	if t.Type != EOF {
		p.pos++
	}
	return t
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == PLUS || p.peek().Type == MINUS {
		op := p.next().Type
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == MULT || p.peek().Type == DIV {
		op := p.next().Type
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseFactor() (node, error) {
	switch t := p.peek(); t.Type {
	case NUMBER:
		p.next()
		return numberNode{value: t.Value}, nil
	case MINUS:
		p.next()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return negateNode{operand: operand}, nil
	case LPAREN:
		p.next()
		p.depth++
		if p.depth > MaxParenDepth {
			return nil, errTooDeep
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().Type != RPAREN {
			return nil, fmt.Errorf("expected ')' at position %d", p.peek().Pos)
		}
		p.next()
		p.depth--
		return inner, nil
	default:
		return nil, fmt.Errorf("unexpected %q at position %d", t.Lexeme, t.Pos)
	}
}
