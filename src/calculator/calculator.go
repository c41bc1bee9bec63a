// backend/src/calculator/calculator.go
//
// Safe evaluation of the "=..." spreadsheet-style expressions users type
// into amount cells. The input is filtered to a closed character set and
// run through a small recursive-descent parser; there is no host
// evaluator anywhere in this path.
package calculator

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
)

const (
	// MaxExpressionLength bounds the raw input; nothing a form cell
	// legitimately holds comes close.
	MaxExpressionLength = 512
	// MaxParenDepth bounds parser recursion.
	MaxParenDepth = 32
)

var (
	ErrNotExpression     = errors.New("invalid expression format: calculator input must start with '='")
	ErrEmptyExpression   = errors.New("invalid expression format: nothing after '='")
	ErrInvalidCharacters = errors.New("invalid characters in expression: only digits, + - * / . ( ) % and spaces are allowed")
	ErrTooLong           = fmt.Errorf("expression exceeds the maximum length of %d characters", MaxExpressionLength)
	ErrNotFinite         = errors.New("expression does not evaluate to a finite number")
)

var (
	// percentPattern rewrites percentage sugar: "20%" -> "(20/100)".
	percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	// allowedPattern is the closed character set after the percentage
	// rewrite has consumed every '%'.
	allowedPattern = regexp.MustCompile(`^[0-9+\-*/.() ]+$`)
)

// IsCalculatorExpression reports whether a raw field value is calculator
// input, i.e. its trimmed form starts with '='.
func IsCalculatorExpression(value string) bool {
	return strings.HasPrefix(strings.TrimSpace(value), "=")
}

// Evaluate parses and evaluates an "=..." expression. Amounts are
// currency, so the result is rounded to two decimal places.
func Evaluate(expr string) (float64, error) {
	trimmed := strings.TrimSpace(expr)
	if !strings.HasPrefix(trimmed, "=") {
		return 0, ErrNotExpression
	}
	if len(trimmed) > MaxExpressionLength {
		return 0, ErrTooLong
	}
	body := strings.TrimSpace(trimmed[1:])
	if body == "" {
		return 0, ErrEmptyExpression
	}

	body = percentPattern.ReplaceAllString(body, "($1/100)")
	if !allowedPattern.MatchString(body) {
		return 0, ErrInvalidCharacters
	}

	tokens, err := (&lexer{src: body}).scan()
	if err != nil {
		return 0, err
	}
	ast, err := parse(tokens)
	if err != nil {
		return 0, err
	}

	v := ast.eval()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return math.Round(v*100) / 100, nil
}

// Precheck is the structural pre-validation result shown while the user
// is still typing.
type Precheck struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
}

// ValidateCalculatorExpression performs the cheap structural checks that
// run per keystroke: the '=' prefix, a non-empty body, the common '**'
// and '//' typos, and parenthesis balance.
func ValidateCalculatorExpression(expr string) Precheck {
	trimmed := strings.TrimSpace(expr)
	if !strings.HasPrefix(trimmed, "=") {
		return Precheck{Message: "expression must start with '='"}
	}
	body := strings.TrimSpace(trimmed[1:])
	if body == "" {
		return Precheck{Message: "expression is empty after '='"}
	}
	if strings.Contains(body, "**") {
		return Precheck{Message: "use '*' for multiplication, not '**'"}
	}
	if strings.Contains(body, "//") {
		return Precheck{Message: "use '/' for division, not '//'"}
	}

	depth := 0
	for _, c := range body {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return Precheck{Message: "unmatched closing parenthesis"}
			}
		}
	}
	if depth != 0 {
		return Precheck{Message: "unmatched opening parenthesis"}
	}
	return Precheck{IsValid: true}
}
