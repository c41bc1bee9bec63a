// backend/src/validation/form_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/taxsarthi/backend/src/models"
)

func TestCityCategoryFor(t *testing.T) {
	assert.Equal(t, models.CityMetro, CityCategoryFor("Mumbai"))
	assert.Equal(t, models.CityMetro, CityCategoryFor("  delhi "))
	assert.Equal(t, models.CityNonMetro, CityCategoryFor("Pune"))
	assert.Equal(t, models.CityNonMetro, CityCategoryFor(""))
}

func TestValidateTaxationFormClean(t *testing.T) {
	table := testTable(t)

	rec := models.FlatFormRecord{EmployeeID: "E042", EmpAge: 32}
	rec.Salary.Basic = 50000
	rec.Deductions.EPF = 50000

	result := ValidateTaxationForm(rec, table)
	assert.True(t, result.IsValid)
	assert.False(t, result.HasWarnings)
	assert.True(t, result.Warnings.IsEmpty())
}

func TestValidateTaxationFormWarnings(t *testing.T) {
	table := testTable(t)

	rec := models.FlatFormRecord{EmployeeID: "E042", EmpAge: 9999}
	rec.Salary.Basic = 50000
	rec.Salary.HRA = 20000
	rec.Salary.RentPaid = 15000
	rec.Salary.City = "Mumbai"
	rec.Salary.Bonus = -100
	rec.Salary.LTAJourneys = 3
	rec.Salary.ChildrenCount = 3
	rec.Salary.AllowanceMonths = 14
	rec.Deductions.LifeInsurance = 60000
	rec.Deductions.EPF = 60000
	rec.Deductions.PPF = 60000
	rec.Deductions.SelfFamilyPremium = 30000

	result := ValidateTaxationForm(rec, table)
	require.True(t, result.IsValid)
	assert.True(t, result.HasWarnings)

	assert.NotEmpty(t, result.Warnings.EmpAge)
	assert.NotEmpty(t, result.Warnings.Salary["bonus"])
	assert.NotEmpty(t, result.Warnings.Salary["lta_journeys"])
	assert.NotEmpty(t, result.Warnings.Salary["children_allowance"])

	// Metro HRA working: exemption min(20000, 25000, 10000) = 10000.
	assert.Equal(t, "HRA exemption ₹10000.00, taxable ₹5000.00", result.Warnings.Salary["hra_info"])

	// 180000 across the 80C instruments exceeds the 150000 cap.
	assert.NotEmpty(t, result.Warnings.Deductions["section_80c"])

	// Age 9999 lands in the senior tier, so 30000 stays under 50000.
	assert.Empty(t, result.Warnings.Deductions["section_80d"])
}

func TestValidateTaxationForm80DTiering(t *testing.T) {
	table := testTable(t)

	rec := models.FlatFormRecord{EmployeeID: "E042", EmpAge: 45}
	rec.Deductions.SelfFamilyPremium = 30000
	rec.Deductions.ParentsPremium = 60000
	rec.Deductions.ParentsAge = 70

	result := ValidateTaxationForm(rec, table)
	assert.NotEmpty(t, result.Warnings.Deductions["section_80d"])
	assert.NotEmpty(t, result.Warnings.Deductions["section_80d_parents"])
}

// The aggregate validator never blocks, no matter how bad the input.
func TestValidateTaxationFormNeverBlocks(t *testing.T) {
	table := testTable(t)

	rec := models.FlatFormRecord{EmpAge: -1}
	rec.Salary.Basic = -1e12
	rec.Deductions.LifeInsurance = 1e12

	result := ValidateTaxationForm(rec, table)
	assert.True(t, result.IsValid)
	assert.True(t, result.HasWarnings)
}
