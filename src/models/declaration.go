// backend/src/models/declaration.go
package models

// Enumerated categories used across the declaration. The string values
// are the exact tokens the remote API exchanges.
type (
	CityCategory string
	CoverageType string
)

const (
	CityMetro    CityCategory = "metro"
	CityNonMetro CityCategory = "non_metro"

	CoverageSelfFamily CoverageType = "self_family"
	CoverageParents    CoverageType = "parents"
)

// Declaration is the canonical nested record for one (employee, tax year)
// pair as the remote API supplies it. Every section is optional: an
// employee with no house property simply has no house_property_income
// node. Leaves that carry money use FlexAmount because the API sometimes
// sends amounts as decimal strings.
type Declaration struct {
	ID            string `json:"id,omitempty"`
	EmployeeID    string `json:"employee_id"`
	FinancialYear string `json:"financial_year,omitempty"`
	TaxRegime     string `json:"tax_regime,omitempty"`
	FilingStatus  string `json:"filing_status,omitempty"`
	EmpAge        *int   `json:"emp_age,omitempty"`

	SalaryIncome        *SalarySection        `json:"salary_income,omitempty"`
	Deductions          *DeductionsSection    `json:"deductions,omitempty"`
	HousePropertyIncome *HousePropertySection `json:"house_property_income,omitempty"`
	CapitalGainsIncome  *CapitalGainsSection  `json:"capital_gains_income,omitempty"`
	OtherIncome         *OtherIncomeSection   `json:"other_income,omitempty"`
	RetirementBenefits  *RetirementBenefits   `json:"retirement_benefits,omitempty"`
	Perquisites         *Perquisites          `json:"perquisites,omitempty"`
}

// SalarySection holds the salary components the employee declares.
// Pointer leaves distinguish "absent" from an explicit zero.
type SalarySection struct {
	Basic             *FlexAmount `json:"basic,omitempty"`
	DA                *FlexAmount `json:"da,omitempty"`
	HRA               *FlexAmount `json:"hra,omitempty"`
	RentPaid          *FlexAmount `json:"rent_paid,omitempty"`
	City              *string     `json:"city,omitempty"`
	Conveyance        *FlexAmount `json:"conveyance,omitempty"`
	SpecialAllowance  *FlexAmount `json:"special_allowance,omitempty"`
	MedicalAllowance  *FlexAmount `json:"medical_allowance,omitempty"`
	LTA               *FlexAmount `json:"lta,omitempty"`
	LTAJourneys       *int        `json:"lta_journeys,omitempty"`
	ChildrenEducation *FlexAmount `json:"children_education_allowance,omitempty"`
	HostelAllowance   *FlexAmount `json:"hostel_allowance,omitempty"`
	ChildrenCount     *int        `json:"children_count,omitempty"`
	AllowanceMonths   *int        `json:"allowance_months,omitempty"`
	Bonus             *FlexAmount `json:"bonus,omitempty"`
	EmployerNPS       *FlexAmount `json:"employer_nps,omitempty"`
}

// DeductionsSection groups the chapter VI-A claims per statutory section.
type DeductionsSection struct {
	Section80C   *Section80C          `json:"section_80c,omitempty"`
	Section80D   *Section80D          `json:"section_80d,omitempty"`
	Section80DD  *DisabilityDeduction `json:"section_80dd,omitempty"`
	Section80DDB *MedicalTreatment    `json:"section_80ddb,omitempty"`
	Section80E   *FlexAmount          `json:"section_80e,omitempty"`
	Section80EEB *FlexAmount          `json:"section_80eeb,omitempty"`
	Section80G   *FlexAmount          `json:"section_80g,omitempty"`
	Section80GGC *FlexAmount          `json:"section_80ggc,omitempty"`
	Section80U   *DisabilityDeduction `json:"section_80u,omitempty"`
	NPS80CCD1B   *FlexAmount          `json:"nps_80ccd_1b,omitempty"`
}

// Section80C lists the six eligible instrument buckets whose sum is
// capped by the 80C aggregate limit.
type Section80C struct {
	LifeInsurance *FlexAmount `json:"life_insurance,omitempty"`
	EPF           *FlexAmount `json:"epf,omitempty"`
	PPF           *FlexAmount `json:"ppf,omitempty"`
	NSC           *FlexAmount `json:"nsc,omitempty"`
	ULIP          *FlexAmount `json:"ulip,omitempty"`
	Others        *FlexAmount `json:"others,omitempty"`
}

// Section80D carries the health insurance premiums for the two covered
// groups. ParentsAge selects the senior-citizen tier for the parents cap.
type Section80D struct {
	SelfFamilyPremium *FlexAmount `json:"self_family_premium,omitempty"`
	ParentsPremium    *FlexAmount `json:"parents_premium,omitempty"`
	ParentsAge        *int        `json:"parents_age,omitempty"`
}

// DisabilityDeduction backs sections 80DD and 80U; the severity flag
// selects the higher ceiling.
type DisabilityDeduction struct {
	Amount FlexAmount `json:"amount"`
	Severe bool       `json:"severe"`
}

// MedicalTreatment backs section 80DDB; the ceiling doubles for a
// senior-citizen patient.
type MedicalTreatment struct {
	Amount        FlexAmount `json:"amount"`
	SeniorPatient bool       `json:"senior_patient"`
}

// HousePropertySection covers income (or loss) from one house property.
type HousePropertySection struct {
	PropertyType     *string     `json:"property_type,omitempty"`
	AnnualRent       *FlexAmount `json:"annual_rent,omitempty"`
	MunicipalTaxes   *FlexAmount `json:"municipal_taxes,omitempty"`
	HomeLoanInterest *FlexAmount `json:"home_loan_interest,omitempty"`
}

// CapitalGainsSection splits gains by the statutory rate buckets.
type CapitalGainsSection struct {
	STCG111A  *FlexAmount `json:"stcg_111a,omitempty"`
	LTCG112A  *FlexAmount `json:"ltcg_112a,omitempty"`
	OtherSTCG *FlexAmount `json:"other_stcg,omitempty"`
	OtherLTCG *FlexAmount `json:"other_ltcg,omitempty"`
}

// OtherIncomeSection covers non-salary income heads.
type OtherIncomeSection struct {
	SavingsInterest *FlexAmount `json:"savings_interest,omitempty"`
	FDInterest      *FlexAmount `json:"fd_interest,omitempty"`
	Dividend        *FlexAmount `json:"dividend,omitempty"`
	Other           *FlexAmount `json:"other,omitempty"`
}

// RetirementBenefits is one of the two structurally nested sections the
// normalizer passes through rather than flattening.
type RetirementBenefits struct {
	Gratuity        *GratuityDetail        `json:"gratuity,omitempty"`
	LeaveEncashment *LeaveEncashmentDetail `json:"leave_encashment,omitempty"`
	VRS             *VRSDetail             `json:"vrs,omitempty"`
	PensionCommuted *FlexAmount            `json:"pension_commuted,omitempty"`
}

// GratuityDetail is the gratuity claim with its qualifying service span.
type GratuityDetail struct {
	Amount         FlexAmount `json:"amount"`
	YearsOfService int        `json:"years_of_service"`
}

// LeaveEncashmentDetail is the leave encashment claim.
type LeaveEncashmentDetail struct {
	Amount FlexAmount `json:"amount"`
	Months int        `json:"months"`
}

// VRSDetail is the voluntary retirement scheme compensation.
type VRSDetail struct {
	Amount FlexAmount `json:"amount"`
}

// Perquisites is the second pass-through section: employer-provided
// benefits valued per the perquisite rules.
type Perquisites struct {
	CompanyCar            *PerquisiteValue `json:"company_car,omitempty"`
	RentFreeAccommodation *PerquisiteValue `json:"rent_free_accommodation,omitempty"`
	InterestFreeLoan      *LoanPerquisite  `json:"interest_free_loan,omitempty"`
	GiftVouchers          *PerquisiteValue `json:"gift_vouchers,omitempty"`
	ESOP                  *PerquisiteValue `json:"esop,omitempty"`
}

// PerquisiteValue is a single valued perquisite.
type PerquisiteValue struct {
	Value FlexAmount `json:"value"`
}

// LoanPerquisite is an employer loan; below the statutory threshold the
// interest benefit is an exempt perquisite.
type LoanPerquisite struct {
	Amount  FlexAmount `json:"amount"`
	Purpose string     `json:"purpose"`
}
