// backend/src/validation/sections.go
//
// Advisory validators, one family per statutory section. Every function
// here is pure: inputs plus the immutable limit table in, a fresh
// outcome out. None of them ever blocks — statutory excess is a warning,
// because the declaration must remain submittable and the excess is
// simply disregarded by the downstream tax computation.
package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/username/taxsarthi/backend/src/limits"
	"github.com/username/taxsarthi/backend/src/models"
)

// DefaultAmountCeiling is a sanity ceiling for unconstrained amount
// fields, not a statutory limit. Ten crore rupees.
const DefaultAmountCeiling = 100000000

// ValidateAmount warns when an amount is negative or exceeds maxLimit.
// A non-positive maxLimit selects the default sanity ceiling.
func ValidateAmount(amount, maxLimit float64) models.ValidationOutcome {
	if maxLimit <= 0 {
		maxLimit = DefaultAmountCeiling
	}
	if amount < 0 {
		return models.Advisory("Amount cannot be negative")
	}
	if amount > maxLimit {
		return models.Advisory(fmt.Sprintf("Amount exceeds the maximum of ₹%.0f", maxLimit))
	}
	return models.Clean()
}

// ValidateAge warns for an age outside the plausible working range.
func ValidateAge(age int) models.ValidationOutcome {
	if age < 18 || age > 100 {
		return models.Advisory("Age should be between 18 and 100")
	}
	return models.Clean()
}

// ValidateSection80C checks the aggregate of all 80C instruments against
// the cap and reports the remaining headroom.
func ValidateSection80C(total float64, t *limits.Table) models.Section80COutcome {
	limit := t.Value(limits.Section80CLimit)
	out := models.Section80COutcome{
		ValidationOutcome: models.Clean(),
		RemainingLimit:    math.Max(0, limit-total),
	}
	if total > limit {
		out.Warning = fmt.Sprintf("Section 80C investments of ₹%.0f exceed the ₹%.0f limit; the excess earns no deduction", total, limit)
		return out
	}
	out.Message = fmt.Sprintf("₹%.0f of the Section 80C limit remains", out.RemainingLimit)
	return out
}

// ValidateSection80D checks a health insurance premium against the
// age-tiered cap for the covered group. An unrecognized coverage type is
// surfaced as a warning and the stricter self/family cap is applied —
// the conservative reading, since advisory checks can never block.
func ValidateSection80D(amount float64, age int, coverage models.CoverageType, t *limits.Table) models.Section80DOutcome {
	senior := age >= t.IntValue(limits.SeniorCitizenAge)

	var limit float64
	out := models.Section80DOutcome{ValidationOutcome: models.Clean()}
	switch coverage {
	case models.CoverageSelfFamily:
		if senior {
			limit = t.Value(limits.Section80DSelfSeniorLimit)
		} else {
			limit = t.Value(limits.Section80DSelfLimit)
		}
	case models.CoverageParents:
		if senior {
			limit = t.Value(limits.Section80DParentsSeniorLimit)
		} else {
			limit = t.Value(limits.Section80DParentsLimit)
		}
	default:
		limit = t.Value(limits.Section80DSelfLimit)
		out.Warning = fmt.Sprintf("Unknown 80D coverage type %q; applying the ₹%.0f self/family cap", string(coverage), limit)
	}
	out.Limit = limit

	if amount > limit {
		out.Warning = fmt.Sprintf("Premium of ₹%.0f exceeds the ₹%.0f Section 80D limit for this age group", amount, limit)
	}
	return out
}

// ValidateHRA computes the HRA exemption as the statutory three-way
// minimum: actual HRA received, the city-rated share of basic+DA, and
// the rent paid in excess of 10% of basic+DA (floored at zero). The
// taxable residual is the rent paid less the exemption, also floored at
// zero.
func ValidateHRA(hra, basic, da, rentPaid float64, city models.CityCategory, t *limits.Table) models.HRAOutcome {
	rate := t.Rate(limits.HRANonMetroRate)
	if city == models.CityMetro {
		rate = t.Rate(limits.HRAMetroRate)
	}
	salary := basic + da
	salaryShare := salary * rate
	rentExcess := math.Max(0, rentPaid-salary*t.Rate(limits.HRARentExcessPct))

	exemption := math.Min(hra, math.Min(salaryShare, rentExcess))
	taxable := math.Max(0, rentPaid-exemption)

	return models.HRAOutcome{
		ValidationOutcome: models.Clean(),
		Exemption:         exemption,
		Taxable:           taxable,
		ActualHRA:         hra,
		SalaryShare:       salaryShare,
		RentExcess:        rentExcess,
		CityCategory:      string(city),
	}
}

// ValidateLTA warns when more journeys are claimed than the block allows.
func ValidateLTA(claimedJourneys int, amount float64, t *limits.Table) models.ValidationOutcome {
	maxJourneys := t.IntValue(limits.LTAMaxJourneys)
	if claimedJourneys > maxJourneys {
		return models.Advisory(fmt.Sprintf("Only %d journeys can be claimed per %d-year LTA block", maxJourneys, t.IntValue(limits.LTABlockYears)))
	}
	return models.Clean()
}

// ValidateChildrenAllowances warns when the education/hostel allowance
// claim covers more children or months than are eligible. Multiple
// violations are joined into one message.
func ValidateChildrenAllowances(childrenCount, months int, t *limits.Table) models.ValidationOutcome {
	var violations []string
	maxChildren := t.IntValue(limits.ChildMaxCount)
	if childrenCount > maxChildren {
		violations = append(violations, fmt.Sprintf("allowances are capped at %d children", maxChildren))
	}
	if months > 12 {
		violations = append(violations, "months cannot exceed 12")
	}
	if len(violations) > 0 {
		return models.Advisory(strings.Join(violations, "; "))
	}
	return models.Clean()
}

// ValidateInterestFreeLoan reports whether an employer loan stays under
// the exempt perquisite threshold. Each branch carries a fixed advisory
// message; there is no numeric derivation beyond the boolean.
func ValidateInterestFreeLoan(loanAmount float64, t *limits.Table) models.LoanOutcome {
	threshold := t.Value(limits.InterestFreeLoanLimit)
	if loanAmount <= threshold {
		return models.LoanOutcome{
			ValidationOutcome: models.Clean(),
			IsExempt:          true,
			Message:           fmt.Sprintf("Interest-free loan up to ₹%.0f is an exempt perquisite", threshold),
		}
	}
	out := models.LoanOutcome{
		ValidationOutcome: models.Advisory(fmt.Sprintf("Loan exceeds ₹%.0f; the interest benefit is a taxable perquisite", threshold)),
		IsExempt:          false,
	}
	out.Message = out.Warning
	return out
}
