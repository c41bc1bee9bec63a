// backend/src/limits/limits.go
package limits

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultYear is the tax year used when no TAX_YEAR is configured.
const DefaultYear = "2025-26"

//go:embed tables/*.yaml
var tableFS embed.FS

// Table is the immutable statutory limit table for one tax year. All
// deduction ceilings, rates and age thresholds flow from here; once
// loaded it is never mutated, only replaced by loading another year.
type Table struct {
	year   string
	values map[string]float64
}

type tableFile struct {
	Year   string             `yaml:"year"`
	Limits map[string]float64 `yaml:"limits"`
}

// Load reads the embedded table for the given tax year ("2025-26").
func Load(year string) (*Table, error) {
	name := "tables/" + strings.ReplaceAll(year, "-", "_") + ".yaml"
	raw, err := tableFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("no statutory limit table for tax year %q: %w", year, err)
	}
	var f tableFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing limit table for %q: %w", year, err)
	}
	if f.Year != year {
		return nil, fmt.Errorf("limit table %s declares year %q, expected %q", name, f.Year, year)
	}
	for _, k := range requiredKeys {
		if _, ok := f.Limits[k]; !ok {
			return nil, fmt.Errorf("limit table for %q is missing %s", year, k)
		}
	}
	values := make(map[string]float64, len(f.Limits))
	for k, v := range f.Limits {
		values[k] = v
	}
	return &Table{year: year, values: values}, nil
}

// MustLoad is Load for process initialization paths; it panics if the
// table cannot be loaded.
func MustLoad(year string) *Table {
	t, err := Load(year)
	if err != nil {
		panic(err)
	}
	return t
}

// SupportedYears lists the tax years with an embedded table, sorted.
func SupportedYears() []string {
	entries, err := tableFS.ReadDir("tables")
	if err != nil {
		return nil
	}
	years := make([]string, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".yaml")
		years = append(years, strings.ReplaceAll(name, "_", "-"))
	}
	sort.Strings(years)
	return years
}

// Year returns the tax year this table covers.
func (t *Table) Year() string { return t.year }

// Get returns the value for a limit key and whether the key exists.
func (t *Table) Get(key string) (float64, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Value returns the value for a limit key, or 0 for an unknown key.
func (t *Table) Value(key string) float64 { return t.values[key] }

// IntValue returns a count/age limit as an int.
func (t *Table) IntValue(key string) int { return int(t.values[key]) }

// Rate returns a percentage-valued key as a fraction (50 -> 0.5).
func (t *Table) Rate(key string) float64 { return t.values[key] / 100 }

// Keys returns every limit key in the table, sorted.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.values))
	for k := range t.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
