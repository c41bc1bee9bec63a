// backend/src/models/outcome.go
package models

// ValidationOutcome is the advisory result of a single statutory check.
// IsValid is always true for these checks: statutory ceilings never block
// submission, the excess is simply disregarded downstream. An empty
// Warning means the value is within statutory bounds.
type ValidationOutcome struct {
	IsValid bool   `json:"isValid"`
	Warning string `json:"warning,omitempty"`
}

// Clean is the outcome for a value inside statutory bounds.
func Clean() ValidationOutcome { return ValidationOutcome{IsValid: true} }

// Advisory is the outcome carrying a non-blocking warning.
func Advisory(warning string) ValidationOutcome {
	return ValidationOutcome{IsValid: true, Warning: warning}
}

// Section80COutcome adds the remaining headroom under the 80C aggregate
// cap. Message carries the informational remaining-limit text when the
// total is still under the cap; Warning is set only once it is exceeded.
type Section80COutcome struct {
	ValidationOutcome
	RemainingLimit float64 `json:"remainingLimit"`
	Message        string  `json:"message,omitempty"`
}

// Section80DOutcome reports the age-tiered cap that was applied.
type Section80DOutcome struct {
	ValidationOutcome
	Limit float64 `json:"limit"`
}

// HRAOutcome carries the exemption working: the three candidate amounts
// of the statutory minimum, the exemption itself and the taxable
// residual of the rent paid.
type HRAOutcome struct {
	ValidationOutcome
	Exemption    float64 `json:"exemption"`
	Taxable      float64 `json:"taxable"`
	ActualHRA    float64 `json:"actualHra"`
	SalaryShare  float64 `json:"salaryShare"`  // (basic+DA) * city rate
	RentExcess   float64 `json:"rentExcess"`   // max(0, rent - 10% of basic+DA)
	CityCategory string  `json:"cityCategory"` // metro | non_metro
}

// LoanOutcome reports whether an employer loan stays under the exempt
// perquisite threshold. Message is set on both branches; Warning only
// when the loan is taxable.
type LoanOutcome struct {
	ValidationOutcome
	IsExempt bool   `json:"isExempt"`
	Message  string `json:"message"`
}

// AggregateWarnings mirrors the declaration's section shape but holds
// only the entries that produced a warning. An empty value means a clean
// declaration.
type AggregateWarnings struct {
	EmpAge     string            `json:"emp_age,omitempty"`
	Salary     map[string]string `json:"salary,omitempty"`
	Deductions map[string]string `json:"deductions,omitempty"`
}

// IsEmpty reports whether no field or section produced a warning.
func (w AggregateWarnings) IsEmpty() bool {
	return w.EmpAge == "" && len(w.Salary) == 0 && len(w.Deductions) == 0
}

// FormValidationResult is the outcome of validating a whole declaration.
// IsValid is unconditionally true; the result only surfaces advisory
// text keyed by the input's section/field paths.
type FormValidationResult struct {
	IsValid     bool              `json:"isValid"`
	Warnings    AggregateWarnings `json:"warnings"`
	HasWarnings bool              `json:"hasWarnings"`
}
