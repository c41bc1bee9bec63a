// backend/src/limits/keys.go
package limits

// Limit keys. Rates are stored as percentages (50 means 50%), amounts in
// whole rupees. Every consumer reads through these constants; no
// statutory number is ever written at a call site.
const (
	Section80CLimit = "SECTION_80C_LIMIT"

	Section80DSelfLimit          = "SECTION_80D_SELF_LIMIT"
	Section80DSelfSeniorLimit    = "SECTION_80D_SELF_SENIOR_LIMIT"
	Section80DParentsLimit       = "SECTION_80D_PARENTS_LIMIT"
	Section80DParentsSeniorLimit = "SECTION_80D_PARENTS_SENIOR_LIMIT"
	Section80DCombinedLimit      = "SECTION_80D_COMBINED_LIMIT"

	Section80DDNormalLimit  = "SECTION_80DD_NORMAL_LIMIT"
	Section80DDSevereLimit  = "SECTION_80DD_SEVERE_LIMIT"
	Section80DDBNormalLimit = "SECTION_80DDB_NORMAL_LIMIT"
	Section80DDBSeniorLimit = "SECTION_80DDB_SENIOR_LIMIT"
	Section80EEBLimit       = "SECTION_80EEB_LIMIT"
	Section80UNormalLimit   = "SECTION_80U_NORMAL_LIMIT"
	Section80USevereLimit   = "SECTION_80U_SEVERE_LIMIT"

	NPS80CCD1SalaryPct   = "NPS_80CCD1_SALARY_PCT"
	NPS80CCD1BLimit      = "NPS_80CCD1B_LIMIT"
	NPS80CCD2EmployerPct = "NPS_80CCD2_EMPLOYER_PCT"

	HRAMetroRate     = "HRA_METRO_RATE"
	HRANonMetroRate  = "HRA_NON_METRO_RATE"
	HRARentExcessPct = "HRA_RENT_EXCESS_PCT"

	MedicalReimbursementLimit = "MEDICAL_REIMBURSEMENT_LIMIT"

	LTABlockYears  = "LTA_BLOCK_YEARS"
	LTAMaxJourneys = "LTA_MAX_JOURNEYS"

	ChildEducationPerMonth = "CHILD_EDUCATION_PER_MONTH"
	ChildHostelPerMonth    = "CHILD_HOSTEL_PER_MONTH"
	ChildMaxCount          = "CHILD_MAX_COUNT"

	GiftVoucherLimit = "GIFT_VOUCHER_LIMIT"

	LTCGExemptionLimit = "LTCG_EXEMPTION_LIMIT"
	STCG111ARate       = "STCG_111A_RATE"
	LTCG112ARate       = "LTCG_112A_RATE"

	InterestFreeLoanLimit = "INTEREST_FREE_LOAN_LIMIT"

	GratuityExemptionLimit     = "GRATUITY_EXEMPTION_LIMIT"
	LeaveEncashmentLimit       = "LEAVE_ENCASHMENT_LIMIT"
	VRSExemptionLimit          = "VRS_EXEMPTION_LIMIT"
	StandardDeductionNewRegime = "STANDARD_DEDUCTION_NEW_REGIME"

	SeniorCitizenAge      = "SENIOR_CITIZEN_AGE"
	SuperSeniorCitizenAge = "SUPER_SENIOR_CITIZEN_AGE"
)

// requiredKeys is checked on load so a table file missing a constant is
// caught at startup rather than silently reading zero mid-validation.
var requiredKeys = []string{
	Section80CLimit,
	Section80DSelfLimit, Section80DSelfSeniorLimit,
	Section80DParentsLimit, Section80DParentsSeniorLimit, Section80DCombinedLimit,
	Section80DDNormalLimit, Section80DDSevereLimit,
	Section80DDBNormalLimit, Section80DDBSeniorLimit,
	Section80EEBLimit, Section80UNormalLimit, Section80USevereLimit,
	NPS80CCD1SalaryPct, NPS80CCD1BLimit, NPS80CCD2EmployerPct,
	HRAMetroRate, HRANonMetroRate, HRARentExcessPct,
	MedicalReimbursementLimit,
	LTABlockYears, LTAMaxJourneys,
	ChildEducationPerMonth, ChildHostelPerMonth, ChildMaxCount,
	GiftVoucherLimit,
	LTCGExemptionLimit, STCG111ARate, LTCG112ARate,
	InterestFreeLoanLimit,
	GratuityExemptionLimit, LeaveEncashmentLimit, VRSExemptionLimit,
	StandardDeductionNewRegime,
	SeniorCitizenAge, SuperSeniorCitizenAge,
}
