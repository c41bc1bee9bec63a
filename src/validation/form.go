// backend/src/validation/form.go
package validation

import (
	"fmt"
	"strings"

	"github.com/username/taxsarthi/backend/src/limits"
	"github.com/username/taxsarthi/backend/src/models"
)

// metroCities is the fixed classification list for the HRA city rate.
var metroCities = map[string]bool{
	"delhi":   true,
	"mumbai":  true,
	"kolkata": true,
	"chennai": true,
}

// CityCategoryFor classifies a city name for the HRA rate. Anything not
// on the metro list, including an empty city, is non-metro.
func CityCategoryFor(city string) models.CityCategory {
	if metroCities[strings.ToLower(strings.TrimSpace(city))] {
		return models.CityMetro
	}
	return models.CityNonMetro
}

// ValidateTaxationForm walks a flattened declaration and collects every
// advisory warning, keyed by the same section/field paths as the input.
// IsValid is unconditionally true: this function never blocks a
// submission.
func ValidateTaxationForm(rec models.FlatFormRecord, t *limits.Table) models.FormValidationResult {
	warnings := models.AggregateWarnings{
		Salary:     make(map[string]string),
		Deductions: make(map[string]string),
	}

	if out := ValidateAge(rec.EmpAge); out.Warning != "" {
		warnings.EmpAge = out.Warning
	}

	salaryLeaves := []struct {
		field string
		value float64
	}{
		{"basic", rec.Salary.Basic},
		{"da", rec.Salary.DA},
		{"hra", rec.Salary.HRA},
		{"rent_paid", rec.Salary.RentPaid},
		{"conveyance", rec.Salary.Conveyance},
		{"special_allowance", rec.Salary.SpecialAllowance},
		{"medical_allowance", rec.Salary.MedicalAllowance},
		{"lta", rec.Salary.LTA},
		{"children_education_allowance", rec.Salary.ChildrenEducation},
		{"hostel_allowance", rec.Salary.HostelAllowance},
		{"bonus", rec.Salary.Bonus},
		{"employer_nps", rec.Salary.EmployerNPS},
	}
	for _, leaf := range salaryLeaves {
		if out := ValidateAmount(leaf.value, 0); out.Warning != "" {
			warnings.Salary[leaf.field] = out.Warning
		}
	}

	if rec.Salary.HRA > 0 && rec.Salary.Basic > 0 {
		hra := ValidateHRA(rec.Salary.HRA, rec.Salary.Basic, rec.Salary.DA, rec.Salary.RentPaid, CityCategoryFor(rec.Salary.City), t)
		warnings.Salary["hra_info"] = fmt.Sprintf("HRA exemption ₹%.2f, taxable ₹%.2f", hra.Exemption, hra.Taxable)
	}

	if out := ValidateLTA(rec.Salary.LTAJourneys, rec.Salary.LTA, t); out.Warning != "" {
		warnings.Salary["lta_journeys"] = out.Warning
	}
	if out := ValidateChildrenAllowances(rec.Salary.ChildrenCount, rec.Salary.AllowanceMonths, t); out.Warning != "" {
		warnings.Salary["children_allowance"] = out.Warning
	}

	total80C := rec.Deductions.LifeInsurance +
		rec.Deductions.EPF +
		rec.Deductions.PPF +
		rec.Deductions.NSC +
		rec.Deductions.ULIP +
		rec.Deductions.Others
	if out := ValidateSection80C(total80C, t); out.Warning != "" {
		warnings.Deductions["section_80c"] = out.Warning
	}

	if out := ValidateSection80D(rec.Deductions.SelfFamilyPremium, rec.EmpAge, models.CoverageSelfFamily, t); out.Warning != "" {
		warnings.Deductions["section_80d"] = out.Warning
	}
	if rec.Deductions.ParentsPremium > 0 {
		if out := ValidateSection80D(rec.Deductions.ParentsPremium, rec.Deductions.ParentsAge, models.CoverageParents, t); out.Warning != "" {
			warnings.Deductions["section_80d_parents"] = out.Warning
		}
	}

	// Drop empty maps so a clean section is absent, not an empty node.
	if len(warnings.Salary) == 0 {
		warnings.Salary = nil
	}
	if len(warnings.Deductions) == 0 {
		warnings.Deductions = nil
	}

	return models.FormValidationResult{
		IsValid:     true,
		Warnings:    warnings,
		HasWarnings: !warnings.IsEmpty(),
	}
}
