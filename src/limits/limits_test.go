// backend/src/limits/limits_test.go
package limits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStatutoryConstants(t *testing.T) {
	table, err := Load("2025-26")
	require.NoError(t, err)
	assert.Equal(t, "2025-26", table.Year())

	tests := []struct {
		key  string
		want float64
	}{
		{Section80CLimit, 150000},
		{Section80DSelfLimit, 25000},
		{Section80DSelfSeniorLimit, 50000},
		{Section80DParentsLimit, 25000},
		{Section80DParentsSeniorLimit, 50000},
		{Section80DCombinedLimit, 100000},
		{Section80DDNormalLimit, 75000},
		{Section80DDSevereLimit, 125000},
		{Section80DDBNormalLimit, 40000},
		{Section80DDBSeniorLimit, 100000},
		{Section80EEBLimit, 150000},
		{Section80UNormalLimit, 75000},
		{Section80USevereLimit, 125000},
		{NPS80CCD1SalaryPct, 10},
		{NPS80CCD1BLimit, 50000},
		{NPS80CCD2EmployerPct, 14},
		{HRAMetroRate, 50},
		{HRANonMetroRate, 40},
		{HRARentExcessPct, 10},
		{MedicalReimbursementLimit, 15000},
		{LTABlockYears, 4},
		{LTAMaxJourneys, 2},
		{ChildEducationPerMonth, 100},
		{ChildHostelPerMonth, 300},
		{ChildMaxCount, 2},
		{GiftVoucherLimit, 5000},
		{LTCGExemptionLimit, 125000},
		{STCG111ARate, 20},
		{LTCG112ARate, 12.5},
		{InterestFreeLoanLimit, 20000},
		{GratuityExemptionLimit, 2000000},
		{LeaveEncashmentLimit, 300000},
		{VRSExemptionLimit, 500000},
		{StandardDeductionNewRegime, 75000},
		{SeniorCitizenAge, 60},
		{SuperSeniorCitizenAge, 80},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := table.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadUnknownYear(t *testing.T) {
	_, err := Load("1999-00")
	assert.Error(t, err)
}

func TestUnknownKey(t *testing.T) {
	table := MustLoad("2025-26")
	v, ok := table.Get("NO_SUCH_LIMIT")
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Zero(t, table.Value("NO_SUCH_LIMIT"))
}

func TestRateAndIntHelpers(t *testing.T) {
	table := MustLoad("2025-26")
	assert.InDelta(t, 0.5, table.Rate(HRAMetroRate), 1e-9)
	assert.InDelta(t, 0.125, table.Rate(LTCG112ARate), 1e-9)
	assert.Equal(t, 60, table.IntValue(SeniorCitizenAge))
}

func TestSupportedYears(t *testing.T) {
	years := SupportedYears()
	assert.Contains(t, years, "2025-26")
	assert.Contains(t, years, DefaultYear)
}

func TestKeysSortedAndComplete(t *testing.T) {
	table := MustLoad("2025-26")
	keys := table.Keys()
	require.NotEmpty(t, keys)
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
	for _, k := range requiredKeys {
		assert.Contains(t, keys, k)
	}
}
