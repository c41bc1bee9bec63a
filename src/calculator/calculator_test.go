// backend/src/calculator/calculator_test.go
package calculator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want float64
	}{
		{"precedence", "=2+3*4", 14},
		{"percentage sugar", "=10%", 0.1},
		{"percentage in arithmetic", "=50%*200", 100},
		{"parentheses override precedence", "=(2+3)*4", 20},
		{"left associative division", "=100/5/2", 10},
		{"left associative subtraction", "=10-3-2", 5},
		{"unary minus", "=-5+10", 5},
		{"decimal literals", "=1.5*2", 3},
		{"rounds to two decimals", "=10/3", 3.33},
		{"whitespace tolerated", "=  1 + 2 ", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluateRejects(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"no equals prefix", "2+3"},
		{"empty after equals", "="},
		{"identifier", "=__proto__"},
		{"letters", "=abc+1"},
		{"semicolon", "=1;2"},
		{"brackets", "=[1]"},
		{"braces", "={}"},
		{"division by zero", "=1/0"},
		{"dangling operator", "=1+"},
		{"unbalanced paren", "=(1+2"},
		{"double dot number", "=1..2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.expr)
			assert.Error(t, err)
		})
	}
}

func TestEvaluateBounds(t *testing.T) {
	_, err := Evaluate("=" + strings.Repeat("1+", 300) + "1")
	assert.ErrorIs(t, err, ErrTooLong)

	deep := "=" + strings.Repeat("(", 40) + "1" + strings.Repeat(")", 40)
	_, err = Evaluate(deep)
	assert.ErrorIs(t, err, errTooDeep)
}

func TestIsCalculatorExpression(t *testing.T) {
	assert.True(t, IsCalculatorExpression("=1+2"))
	assert.True(t, IsCalculatorExpression("  =1"))
	assert.False(t, IsCalculatorExpression("1+2"))
	assert.False(t, IsCalculatorExpression(""))
}

func TestValidateCalculatorExpression(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		valid   bool
		message string
	}{
		{"balanced", "=(1+2)", true, ""},
		{"unmatched opening", "=(1+2", false, "unmatched opening parenthesis"},
		{"unmatched closing", "=1+2)", false, "unmatched closing parenthesis"},
		{"no prefix", "1+2", false, "expression must start with '='"},
		{"empty body", "=  ", false, "expression is empty after '='"},
		{"double star", "=2**3", false, "use '*' for multiplication, not '**'"},
		{"double slash", "=4//2", false, "use '/' for division, not '//'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pre := ValidateCalculatorExpression(tt.expr)
			assert.Equal(t, tt.valid, pre.IsValid)
			assert.Equal(t, tt.message, pre.Message)
		})
	}
}

func TestCachedEvaluator(t *testing.T) {
	e := NewCachedEvaluator()

	v1, err := e.Evaluate("=2+3*4")
	require.NoError(t, err)
	v2, err := e.Evaluate("=2+3*4")
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.InDelta(t, 14.0, v1, 1e-9)

	// Errors are memoized too.
	_, err = e.Evaluate("=__proto__")
	assert.Error(t, err)
	_, err = e.Evaluate("=__proto__")
	assert.Error(t, err)
}
