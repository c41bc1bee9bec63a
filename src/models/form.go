// backend/src/models/form.go
package models

// FlatFormRecord is the fully-defaulted, shallow record the form layer
// and the section validators work with. Every field is always present;
// missing backend sections surface as their documented defaults, never
// as nil. The zero-value/sentinel defaults are produced by the
// normalizer, which owns the authoritative default shape.
type FlatFormRecord struct {
	RecordID      string `json:"record_id"`
	EmployeeID    string `json:"employee_id"`
	FinancialYear string `json:"financial_year"`
	TaxRegime     string `json:"tax_regime"`
	FilingStatus  string `json:"filing_status"`
	EmpAge        int    `json:"emp_age"`

	Salary        SalaryForm        `json:"salary"`
	Deductions    DeductionsForm    `json:"deductions"`
	HouseProperty HousePropertyForm `json:"house_property"`
	CapitalGains  CapitalGainsForm  `json:"capital_gains"`
	OtherIncome   OtherIncomeForm   `json:"other_income"`
	Retirement    RetirementForm    `json:"retirement"`
	Perquisites   PerquisitesForm   `json:"perquisites"`
}

// SalaryForm mirrors SalarySection with every leaf present and numeric.
type SalaryForm struct {
	Basic             float64 `json:"basic"`
	DA                float64 `json:"da"`
	HRA               float64 `json:"hra"`
	RentPaid          float64 `json:"rent_paid"`
	City              string  `json:"city"`
	Conveyance        float64 `json:"conveyance"`
	SpecialAllowance  float64 `json:"special_allowance"`
	MedicalAllowance  float64 `json:"medical_allowance"`
	LTA               float64 `json:"lta"`
	LTAJourneys       int     `json:"lta_journeys"`
	ChildrenEducation float64 `json:"children_education_allowance"`
	HostelAllowance   float64 `json:"hostel_allowance"`
	ChildrenCount     int     `json:"children_count"`
	AllowanceMonths   int     `json:"allowance_months"`
	Bonus             float64 `json:"bonus"`
	EmployerNPS       float64 `json:"employer_nps"`
}

// DeductionsForm flattens the per-section deduction tree into one level.
// Field names inside each statutory group match the nested counterparts
// so the structural overlay can copy them by name.
type DeductionsForm struct {
	// Section 80C instruments
	LifeInsurance float64 `json:"life_insurance"`
	EPF           float64 `json:"epf"`
	PPF           float64 `json:"ppf"`
	NSC           float64 `json:"nsc"`
	ULIP          float64 `json:"ulip"`
	Others        float64 `json:"others"`

	// Section 80D premiums
	SelfFamilyPremium float64 `json:"self_family_premium"`
	ParentsPremium    float64 `json:"parents_premium"`
	ParentsAge        int     `json:"parents_age"`

	// Disability and medical treatment
	Disability80DD        float64 `json:"disability_80dd"`
	Severe80DD            bool    `json:"severe_80dd"`
	MedicalTreatment80DDB float64 `json:"medical_treatment_80ddb"`
	SeniorPatient80DDB    bool    `json:"senior_patient_80ddb"`
	SelfDisability80U     float64 `json:"self_disability_80u"`
	Severe80U             bool    `json:"severe_80u"`

	// Interest and donation sections
	EducationLoanInterest float64 `json:"education_loan_interest"`
	EVLoanInterest        float64 `json:"ev_loan_interest"`
	Donations80G          float64 `json:"donations_80g"`
	PartyDonations80GGC   float64 `json:"party_donations_80ggc"`

	NPS80CCD1B float64 `json:"nps_80ccd_1b"`
}

// HousePropertyForm mirrors HousePropertySection. PropertyType defaults
// to the self_occupied sentinel.
type HousePropertyForm struct {
	PropertyType     string  `json:"property_type"`
	AnnualRent       float64 `json:"annual_rent"`
	MunicipalTaxes   float64 `json:"municipal_taxes"`
	HomeLoanInterest float64 `json:"home_loan_interest"`
}

// CapitalGainsForm mirrors CapitalGainsSection.
type CapitalGainsForm struct {
	STCG111A  float64 `json:"stcg_111a"`
	LTCG112A  float64 `json:"ltcg_112a"`
	OtherSTCG float64 `json:"other_stcg"`
	OtherLTCG float64 `json:"other_ltcg"`
}

// OtherIncomeForm mirrors OtherIncomeSection.
type OtherIncomeForm struct {
	SavingsInterest float64 `json:"savings_interest"`
	FDInterest      float64 `json:"fd_interest"`
	Dividend        float64 `json:"dividend"`
	Other           float64 `json:"other"`
}

// RetirementForm keeps the retirement benefits in their nested shape,
// defaulted to explicit zero values when the section is missing.
type RetirementForm struct {
	Gratuity        GratuityDetail        `json:"gratuity"`
	LeaveEncashment LeaveEncashmentDetail `json:"leave_encashment"`
	VRS             VRSDetail             `json:"vrs"`
	PensionCommuted float64               `json:"pension_commuted"`
}

// PerquisitesForm keeps the perquisites in their nested shape, defaulted
// to explicit zero values when the section is missing.
type PerquisitesForm struct {
	CompanyCar            PerquisiteValue `json:"company_car"`
	RentFreeAccommodation PerquisiteValue `json:"rent_free_accommodation"`
	InterestFreeLoan      LoanPerquisite  `json:"interest_free_loan"`
	GiftVouchers          PerquisiteValue `json:"gift_vouchers"`
	ESOP                  PerquisiteValue `json:"esop"`
}
