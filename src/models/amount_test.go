// backend/src/models/amount_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want FlexAmount
	}{
		{"number", `12500.75`, 12500.75},
		{"decimal string", `"12500.75"`, 12500.75},
		{"integer string", `"50000"`, 50000},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
		{"garbage string", `"12,500"`, 0},
		{"negative", `-250`, -250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a FlexAmount
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &a))
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestFlexAmountMarshal(t *testing.T) {
	out, err := json.Marshal(FlexAmount(12500.75))
	require.NoError(t, err)
	assert.Equal(t, `12500.75`, string(out))

	out, err = json.Marshal(FlexAmount(50000))
	require.NoError(t, err)
	assert.Equal(t, `50000`, string(out))
}

func TestDeclarationDecodeWithStringAmounts(t *testing.T) {
	raw := []byte(`{
		"employee_id": "E100",
		"emp_age": 35,
		"deductions": {
			"section_80c": {"epf": "75000", "ppf": 25000}
		}
	}`)
	var decl Declaration
	require.NoError(t, json.Unmarshal(raw, &decl))

	require.NotNil(t, decl.EmpAge)
	assert.Equal(t, 35, *decl.EmpAge)
	require.NotNil(t, decl.Deductions.Section80C)
	assert.Equal(t, FlexAmount(75000), *decl.Deductions.Section80C.EPF)
	assert.Equal(t, FlexAmount(25000), *decl.Deductions.Section80C.PPF)
	assert.Nil(t, decl.Deductions.Section80C.NSC)
	assert.Nil(t, decl.SalaryIncome)
}
