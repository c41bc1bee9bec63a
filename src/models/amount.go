// backend/src/models/amount.go
package models

import (
	"strconv"
	"strings"
)

// FlexAmount is a monetary amount that tolerates the backend's habit of
// sending numbers as decimal-formatted strings. Decoding never fails:
// anything non-numeric coerces to zero so a single bad leaf cannot sink
// the whole record.
type FlexAmount float64

// Float returns the amount as a plain float64.
func (a FlexAmount) Float() float64 { return float64(a) }

// UnmarshalJSON accepts a JSON number, a quoted decimal string, an empty
// string or null. Everything else coerces to 0.
func (a *FlexAmount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	*a = FlexAmount(toNumber(s))
	return nil
}

// MarshalJSON always emits a plain JSON number.
func (a FlexAmount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a), 'f', -1, 64)), nil
}

// toNumber coerces a raw string to a number, returning 0 for anything
// that does not parse.
func toNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
