// backend/src/validation/field_validator_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePAN(t *testing.T) {
	assert.NoError(t, ValidatePAN("ABCDE1234F"))

	// Case-sensitive: the issued format is uppercase.
	assert.ErrorIs(t, ValidatePAN("abcde1234f"), ErrValidationFailed)
	assert.ErrorIs(t, ValidatePAN("ABCD1234F"), ErrValidationFailed)
	assert.ErrorIs(t, ValidatePAN("ABCDE12345"), ErrValidationFailed)
	assert.ErrorIs(t, ValidatePAN(""), ErrValidationFailed)
}

func TestValidateAadhaar(t *testing.T) {
	assert.NoError(t, ValidateAadhaar("123456789012"))

	assert.ErrorIs(t, ValidateAadhaar("12345"), ErrValidationFailed)
	assert.ErrorIs(t, ValidateAadhaar("1234567890123"), ErrValidationFailed)
	assert.ErrorIs(t, ValidateAadhaar("12345678901a"), ErrValidationFailed)
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("payroll@example.co.in"))
	assert.ErrorIs(t, ValidateEmail("not-an-email"), ErrValidationFailed)
	assert.ErrorIs(t, ValidateEmail("missing@tld"), ErrValidationFailed)
}

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("x", "field"))
	assert.ErrorIs(t, ValidateRequired("   ", "field"), ErrValidationFailed)
}

func TestValidateNumericString(t *testing.T) {
	v, err := ValidateNumericString("1234.56", "amount")
	require.NoError(t, err)
	assert.Equal(t, 1234.56, v)

	_, err = ValidateNumericString("12,34", "amount")
	assert.ErrorIs(t, err, ErrValidationFailed)
	_, err = ValidateNumericString("", "amount")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestValidatePercentage(t *testing.T) {
	assert.NoError(t, ValidatePercentage(0, "pct"))
	assert.NoError(t, ValidatePercentage(100, "pct"))
	assert.ErrorIs(t, ValidatePercentage(-1, "pct"), ErrValidationFailed)
	assert.ErrorIs(t, ValidatePercentage(100.5, "pct"), ErrValidationFailed)
}

func TestValidateFinancialYear(t *testing.T) {
	assert.NoError(t, ValidateFinancialYear("2025-26"))
	assert.NoError(t, ValidateFinancialYear("2099-00"))

	assert.ErrorIs(t, ValidateFinancialYear("2025-27"), ErrValidationFailed)
	assert.ErrorIs(t, ValidateFinancialYear("2025"), ErrValidationFailed)
	assert.ErrorIs(t, ValidateFinancialYear("25-26"), ErrValidationFailed)
}

func TestValidateEnums(t *testing.T) {
	assert.NoError(t, ValidateTaxRegime("old"))
	assert.NoError(t, ValidateTaxRegime("new"))
	assert.ErrorIs(t, ValidateTaxRegime("legacy"), ErrValidationFailed)

	for _, s := range []string{"draft", "filed", "approved", "rejected", "pending"} {
		assert.NoError(t, ValidateFilingStatus(s))
	}
	assert.ErrorIs(t, ValidateFilingStatus("submitted"), ErrValidationFailed)
}

func TestSanitizers(t *testing.T) {
	assert.Equal(t, "Mumbai", SanitizeText("<b>Mumbai</b>"))
	assert.Equal(t, "Chennai", CleanText("  <script>x</script>Chennai\x00 "))
}
