package config

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"

	"github.com/rpgo/living-cost-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// TablesParser handles parsing of reference table files
type TablesParser struct{}

// NewTablesParser creates a new reference table parser
func NewTablesParser() *TablesParser {
	return &TablesParser{}
}

// LoadFromFile loads reference tables from a YAML file
func (tp *TablesParser) LoadFromFile(filename string) (*domain.ReferenceTables, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return tp.Parse(data)
}

// LoadFromReader loads reference tables from any reader
func (tp *TablesParser) LoadFromReader(r io.Reader) (*domain.ReferenceTables, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables: %w", err)
	}
	return tp.Parse(data)
}

// Parse decodes and validates YAML reference tables
func (tp *TablesParser) Parse(data []byte) (*domain.ReferenceTables, error) {
	var tables domain.ReferenceTables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := tp.ValidateTables(&tables); err != nil {
		return nil, fmt.Errorf("reference tables validation failed: %w", err)
	}

	normalized := tables.Clone()
	return &normalized, nil
}

// ValidateTables validates loaded reference tables
func (tp *TablesParser) ValidateTables(tables *domain.ReferenceTables) error {
	if len(tables.Cities) == 0 {
		return fmt.Errorf("no cities provided")
	}
	if len(tables.Jobs) == 0 {
		return fmt.Errorf("no jobs provided")
	}
	if len(tables.Lifestyles) == 0 {
		return fmt.Errorf("no lifestyles provided")
	}

	if err := validateKeys("city", tables.Cities); err != nil {
		return err
	}
	if err := validateKeys("job", tables.Jobs); err != nil {
		return err
	}
	if err := validateKeys("lifestyle", tables.Lifestyles); err != nil {
		return err
	}

	for _, key := range tables.CityKeys() {
		if err := tp.validateCity(tables.Cities[key]); err != nil {
			return fmt.Errorf("city %s validation failed: %w", key, err)
		}
	}
	for _, key := range tables.JobKeys() {
		if err := tp.validateJob(tables.Jobs[key]); err != nil {
			return fmt.Errorf("job %s validation failed: %w", key, err)
		}
	}
	for _, key := range tables.LifestyleKeys() {
		if err := tp.validateLifestyle(tables.Lifestyles[key]); err != nil {
			return fmt.Errorf("lifestyle %s validation failed: %w", key, err)
		}
	}

	return nil
}

// keyPattern is what a table key may contain once normalized. Keys end up in
// report file names.
var keyPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// validateKeys rejects keys with unusable characters and keys that collide
// once trimmed and lower-cased.
func validateKeys[V any](kind string, entries map[string]V) error {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seen := make(map[string]string, len(keys))
	for _, key := range keys {
		normalized := domain.NormalizeKey(key)
		if !keyPattern.MatchString(normalized) {
			return fmt.Errorf("%s key %q may only contain a-z, 0-9, '_' and '-'", kind, key)
		}
		if prev, ok := seen[normalized]; ok {
			return fmt.Errorf("%s %q duplicates %q", kind, key, prev)
		}
		seen[normalized] = key
	}
	return nil
}

// validateCity validates a single city's costs
func (tp *TablesParser) validateCity(c domain.CityProfile) error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	costs := []struct {
		field string
		value decimal.Decimal
	}{
		{"rent", c.Rent},
		{"food", c.Food},
		{"transport", c.Transport},
		{"internet", c.Internet},
		{"lifestyle", c.Lifestyle},
	}
	for _, cost := range costs {
		if cost.value.IsNegative() {
			return fmt.Errorf("%s cost cannot be negative", cost.field)
		}
	}
	if c.BaseTotal(decimal.NewFromInt(1)).LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("total cost must be positive")
	}
	return nil
}

// validateJob validates a single job category
func (tp *TablesParser) validateJob(j domain.JobProfile) error {
	if j.Name == "" {
		return fmt.Errorf("name is required")
	}
	if j.Salary.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("salary must be positive")
	}
	if j.YearlyIncrease.IsNegative() || j.YearlyIncrease.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("yearly increase must be between 0 and 1")
	}
	return nil
}

// validateLifestyle validates a single lifestyle tier
func (tp *TablesParser) validateLifestyle(l domain.LifestyleTier) error {
	if l.Name == "" {
		return fmt.Errorf("name is required")
	}
	if l.Factor.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("factor must be positive")
	}
	return nil
}

// CreateExampleTables returns the built-in tables as an editable starting point
func (tp *TablesParser) CreateExampleTables() *domain.ReferenceTables {
	tables := DefaultTables()
	return &tables
}

// MarshalTables encodes reference tables as YAML.
func MarshalTables(tables *domain.ReferenceTables) ([]byte, error) {
	return yaml.Marshal(tables)
}
