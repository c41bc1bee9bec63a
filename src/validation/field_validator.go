// backend/src/validation/field_validator.go
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrValidationFailed is the sentinel wrapped by every format validator.
// These are the only checks in the engine a caller may treat as
// blocking: they guard structural correctness, not statutory ceilings.
var ErrValidationFailed = fmt.Errorf("validation failed")

// Format regexes. PAN is case-sensitive by design: the issued format is
// uppercase and lowercase input must be corrected, not accepted.
var (
	panRegex     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	aadhaarRegex = regexp.MustCompile(`^[0-9]{12}$`)
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	fyRegex      = regexp.MustCompile(`^([0-9]{4})-([0-9]{2})$`)
)

// ValidateRequired checks that a string is not empty after trimming.
func ValidateRequired(s, fieldName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrValidationFailed, fieldName)
	}
	return nil
}

// ValidateNumericString parses a string to float64 and rejects anything
// that is not a plain number.
func ValidateNumericString(s, fieldName string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: %s cannot be empty", ErrValidationFailed, fieldName)
	}
	val, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s ('%s') is not a valid number", ErrValidationFailed, fieldName, s)
	}
	return val, nil
}

// ValidateEmail checks the basic mailbox@domain.tld shape.
func ValidateEmail(s string) error {
	if !emailRegex.MatchString(strings.TrimSpace(s)) {
		return fmt.Errorf("%w: email ('%s') is not in a valid format", ErrValidationFailed, s)
	}
	return nil
}

// ValidatePAN checks the permanent account number format
// (5 letters, 4 digits, 1 letter, all uppercase).
func ValidatePAN(s string) error {
	if !panRegex.MatchString(s) {
		return fmt.Errorf("%w: PAN ('%s') is not in the expected format (AAAAA9999A)", ErrValidationFailed, s)
	}
	return nil
}

// ValidateAadhaar checks the 12-digit Aadhaar number format.
func ValidateAadhaar(s string) error {
	if !aadhaarRegex.MatchString(s) {
		return fmt.Errorf("%w: Aadhaar ('%s') must be exactly 12 digits", ErrValidationFailed, s)
	}
	return nil
}

// ValidatePercentage checks that a value lies in [0, 100].
func ValidatePercentage(v float64, fieldName string) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("%w: %s must be between 0 and 100, got %.2f", ErrValidationFailed, fieldName, v)
	}
	return nil
}

// ValidateFinancialYear checks the "YYYY-YY" form and that the second
// part is the year immediately after the first (e.g. "2025-26").
func ValidateFinancialYear(s string) error {
	m := fyRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return fmt.Errorf("%w: financial year ('%s') must look like 2025-26", ErrValidationFailed, s)
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	if (start+1)%100 != end {
		return fmt.Errorf("%w: financial year ('%s') must span two consecutive years", ErrValidationFailed, s)
	}
	return nil
}

// ValidateTaxRegime checks the regime enum.
func ValidateTaxRegime(s string) error {
	switch s {
	case "old", "new":
		return nil
	}
	return fmt.Errorf("%w: tax regime ('%s') must be 'old' or 'new'", ErrValidationFailed, s)
}

// ValidateFilingStatus checks the filing status enum.
func ValidateFilingStatus(s string) error {
	switch s {
	case "draft", "filed", "approved", "rejected", "pending":
		return nil
	}
	return fmt.Errorf("%w: filing status ('%s') is not a recognized status", ErrValidationFailed, s)
}
