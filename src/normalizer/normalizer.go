// backend/src/normalizer/normalizer.go
//
// Bidirectional transform between the nested backend declaration and the
// flat, fully-defaulted record the form layer and the validators use.
// The forward direction never throws: a malformed record degrades to a
// fresh default record for the employee rather than crashing the form.
package normalizer

import (
	"github.com/google/uuid"
	"github.com/username/taxsarthi/backend/src/limits"
	"github.com/username/taxsarthi/backend/src/logger"
	"github.com/username/taxsarthi/backend/src/models"
	"github.com/username/taxsarthi/backend/src/validation"
)

// Sentinel defaults for the enum-valued fields.
const (
	DefaultTaxRegime    = "new"
	DefaultFilingStatus = "draft"
	DefaultPropertyType = "self_occupied"
)

// DefaultFormRecord is the authoritative default shape: every leaf of
// every section present, amounts zero, strings empty or at their
// sentinel enum value.
func DefaultFormRecord(employeeID string) models.FlatFormRecord {
	return models.FlatFormRecord{
		RecordID:      uuid.NewString(),
		EmployeeID:    employeeID,
		FinancialYear: limits.DefaultYear,
		TaxRegime:     DefaultTaxRegime,
		FilingStatus:  DefaultFilingStatus,
		HouseProperty: models.HousePropertyForm{PropertyType: DefaultPropertyType},
	}
}

// ToFormData flattens a backend declaration onto the default record.
// Sections missing from the source keep their defaults; any internal
// failure falls back to the full default record.
func ToFormData(decl *models.Declaration, employeeID string) (rec models.FlatFormRecord) {
	defer func() {
		if r := recover(); r != nil {
			logger.L.Error("declaration normalization failed, using default record",
				"employeeID", employeeID, "panic", r)
			rec = DefaultFormRecord(employeeID)
		}
	}()

	rec = DefaultFormRecord(employeeID)
	if decl == nil {
		return rec
	}

	if decl.ID != "" {
		rec.RecordID = decl.ID
	}
	if decl.EmployeeID != "" {
		rec.EmployeeID = decl.EmployeeID
	}
	if decl.FinancialYear != "" {
		rec.FinancialYear = validation.CleanText(decl.FinancialYear)
	}
	if decl.TaxRegime != "" {
		rec.TaxRegime = decl.TaxRegime
	}
	if decl.FilingStatus != "" {
		rec.FilingStatus = decl.FilingStatus
	}
	if decl.EmpAge != nil {
		rec.EmpAge = *decl.EmpAge
	}

	overlay(&rec.Salary, decl.SalaryIncome)
	overlayDeductions(&rec.Deductions, decl.Deductions)
	overlay(&rec.HouseProperty, decl.HousePropertyIncome)
	overlay(&rec.CapitalGains, decl.CapitalGainsIncome)
	overlay(&rec.OtherIncome, decl.OtherIncome)
	overlayRetirement(&rec.Retirement, decl.RetirementBenefits)
	overlayPerquisites(&rec.Perquisites, decl.Perquisites)

	return rec
}

// overlayDeductions maps the nested per-section deduction tree onto the
// flat form. The 80C and 80D groups share field names with the flat
// shape and go through the generic overlay; the remaining sections carry
// severity/age flags and are mapped explicitly.
func overlayDeductions(dst *models.DeductionsForm, src *models.DeductionsSection) {
	if src == nil {
		return
	}
	overlay(dst, src.Section80C)
	overlay(dst, src.Section80D)

	if src.Section80DD != nil {
		dst.Disability80DD = src.Section80DD.Amount.Float()
		dst.Severe80DD = src.Section80DD.Severe
	}
	if src.Section80DDB != nil {
		dst.MedicalTreatment80DDB = src.Section80DDB.Amount.Float()
		dst.SeniorPatient80DDB = src.Section80DDB.SeniorPatient
	}
	if src.Section80U != nil {
		dst.SelfDisability80U = src.Section80U.Amount.Float()
		dst.Severe80U = src.Section80U.Severe
	}
	if src.Section80E != nil {
		dst.EducationLoanInterest = src.Section80E.Float()
	}
	if src.Section80EEB != nil {
		dst.EVLoanInterest = src.Section80EEB.Float()
	}
	if src.Section80G != nil {
		dst.Donations80G = src.Section80G.Float()
	}
	if src.Section80GGC != nil {
		dst.PartyDonations80GGC = src.Section80GGC.Float()
	}
	if src.NPS80CCD1B != nil {
		dst.NPS80CCD1B = src.NPS80CCD1B.Float()
	}
}

// overlayRetirement passes the retirement benefits through structurally;
// an absent section keeps the explicit all-zero shape.
func overlayRetirement(dst *models.RetirementForm, src *models.RetirementBenefits) {
	if src == nil {
		return
	}
	if src.Gratuity != nil {
		dst.Gratuity = *src.Gratuity
	}
	if src.LeaveEncashment != nil {
		dst.LeaveEncashment = *src.LeaveEncashment
	}
	if src.VRS != nil {
		dst.VRS = *src.VRS
	}
	if src.PensionCommuted != nil {
		dst.PensionCommuted = src.PensionCommuted.Float()
	}
}

// overlayPerquisites passes the perquisites through structurally.
func overlayPerquisites(dst *models.PerquisitesForm, src *models.Perquisites) {
	if src == nil {
		return
	}
	if src.CompanyCar != nil {
		dst.CompanyCar = *src.CompanyCar
	}
	if src.RentFreeAccommodation != nil {
		dst.RentFreeAccommodation = *src.RentFreeAccommodation
	}
	if src.InterestFreeLoan != nil {
		dst.InterestFreeLoan = *src.InterestFreeLoan
		dst.InterestFreeLoan.Purpose = validation.CleanText(dst.InterestFreeLoan.Purpose)
	}
	if src.GiftVouchers != nil {
		dst.GiftVouchers = *src.GiftVouchers
	}
	if src.ESOP != nil {
		dst.ESOP = *src.ESOP
	}
}

// ToBackendRecord collapses a flat form record back into the nested
// shape the remote API expects. Every flat field maps to exactly the
// nested path it came from. The full shape is always emitted — the wire
// contract treats an absent leaf and a zero leaf as equivalent, and
// explicit zeros keep the round trip checkable.
func ToBackendRecord(rec models.FlatFormRecord) models.Declaration {
	return models.Declaration{
		ID:            rec.RecordID,
		EmployeeID:    rec.EmployeeID,
		FinancialYear: rec.FinancialYear,
		TaxRegime:     rec.TaxRegime,
		FilingStatus:  rec.FilingStatus,
		EmpAge:        iptr(rec.EmpAge),
		SalaryIncome: &models.SalarySection{
			Basic:             amt(rec.Salary.Basic),
			DA:                amt(rec.Salary.DA),
			HRA:               amt(rec.Salary.HRA),
			RentPaid:          amt(rec.Salary.RentPaid),
			City:              sptr(rec.Salary.City),
			Conveyance:        amt(rec.Salary.Conveyance),
			SpecialAllowance:  amt(rec.Salary.SpecialAllowance),
			MedicalAllowance:  amt(rec.Salary.MedicalAllowance),
			LTA:               amt(rec.Salary.LTA),
			LTAJourneys:       iptr(rec.Salary.LTAJourneys),
			ChildrenEducation: amt(rec.Salary.ChildrenEducation),
			HostelAllowance:   amt(rec.Salary.HostelAllowance),
			ChildrenCount:     iptr(rec.Salary.ChildrenCount),
			AllowanceMonths:   iptr(rec.Salary.AllowanceMonths),
			Bonus:             amt(rec.Salary.Bonus),
			EmployerNPS:       amt(rec.Salary.EmployerNPS),
		},
		Deductions: &models.DeductionsSection{
			Section80C: &models.Section80C{
				LifeInsurance: amt(rec.Deductions.LifeInsurance),
				EPF:           amt(rec.Deductions.EPF),
				PPF:           amt(rec.Deductions.PPF),
				NSC:           amt(rec.Deductions.NSC),
				ULIP:          amt(rec.Deductions.ULIP),
				Others:        amt(rec.Deductions.Others),
			},
			Section80D: &models.Section80D{
				SelfFamilyPremium: amt(rec.Deductions.SelfFamilyPremium),
				ParentsPremium:    amt(rec.Deductions.ParentsPremium),
				ParentsAge:        iptr(rec.Deductions.ParentsAge),
			},
			Section80DD: &models.DisabilityDeduction{
				Amount: models.FlexAmount(rec.Deductions.Disability80DD),
				Severe: rec.Deductions.Severe80DD,
			},
			Section80DDB: &models.MedicalTreatment{
				Amount:        models.FlexAmount(rec.Deductions.MedicalTreatment80DDB),
				SeniorPatient: rec.Deductions.SeniorPatient80DDB,
			},
			Section80E:   amt(rec.Deductions.EducationLoanInterest),
			Section80EEB: amt(rec.Deductions.EVLoanInterest),
			Section80G:   amt(rec.Deductions.Donations80G),
			Section80GGC: amt(rec.Deductions.PartyDonations80GGC),
			Section80U: &models.DisabilityDeduction{
				Amount: models.FlexAmount(rec.Deductions.SelfDisability80U),
				Severe: rec.Deductions.Severe80U,
			},
			NPS80CCD1B: amt(rec.Deductions.NPS80CCD1B),
		},
		HousePropertyIncome: &models.HousePropertySection{
			PropertyType:     sptr(rec.HouseProperty.PropertyType),
			AnnualRent:       amt(rec.HouseProperty.AnnualRent),
			MunicipalTaxes:   amt(rec.HouseProperty.MunicipalTaxes),
			HomeLoanInterest: amt(rec.HouseProperty.HomeLoanInterest),
		},
		CapitalGainsIncome: &models.CapitalGainsSection{
			STCG111A:  amt(rec.CapitalGains.STCG111A),
			LTCG112A:  amt(rec.CapitalGains.LTCG112A),
			OtherSTCG: amt(rec.CapitalGains.OtherSTCG),
			OtherLTCG: amt(rec.CapitalGains.OtherLTCG),
		},
		OtherIncome: &models.OtherIncomeSection{
			SavingsInterest: amt(rec.OtherIncome.SavingsInterest),
			FDInterest:      amt(rec.OtherIncome.FDInterest),
			Dividend:        amt(rec.OtherIncome.Dividend),
			Other:           amt(rec.OtherIncome.Other),
		},
		RetirementBenefits: &models.RetirementBenefits{
			Gratuity:        &models.GratuityDetail{Amount: rec.Retirement.Gratuity.Amount, YearsOfService: rec.Retirement.Gratuity.YearsOfService},
			LeaveEncashment: &models.LeaveEncashmentDetail{Amount: rec.Retirement.LeaveEncashment.Amount, Months: rec.Retirement.LeaveEncashment.Months},
			VRS:             &models.VRSDetail{Amount: rec.Retirement.VRS.Amount},
			PensionCommuted: amt(rec.Retirement.PensionCommuted),
		},
		Perquisites: &models.Perquisites{
			CompanyCar:            &models.PerquisiteValue{Value: rec.Perquisites.CompanyCar.Value},
			RentFreeAccommodation: &models.PerquisiteValue{Value: rec.Perquisites.RentFreeAccommodation.Value},
			InterestFreeLoan:      &models.LoanPerquisite{Amount: rec.Perquisites.InterestFreeLoan.Amount, Purpose: rec.Perquisites.InterestFreeLoan.Purpose},
			GiftVouchers:          &models.PerquisiteValue{Value: rec.Perquisites.GiftVouchers.Value},
			ESOP:                  &models.PerquisiteValue{Value: rec.Perquisites.ESOP.Value},
		},
	}
}

func amt(v float64) *models.FlexAmount {
	a := models.FlexAmount(v)
	return &a
}

func iptr(v int) *int { return &v }

func sptr(s string) *string { return &s }
