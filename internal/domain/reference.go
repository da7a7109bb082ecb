package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// CityProfile holds the monthly base costs of living in a city.
type CityProfile struct {
	Name      string          `yaml:"name" json:"name"`
	Rent      decimal.Decimal `yaml:"rent" json:"rent"`
	Food      decimal.Decimal `yaml:"food" json:"food"`
	Transport decimal.Decimal `yaml:"transport" json:"transport"`
	Internet  decimal.Decimal `yaml:"internet" json:"internet"`
	Lifestyle decimal.Decimal `yaml:"lifestyle" json:"lifestyle"`
}

// BaseTotal returns the unescalated monthly cost with the lifestyle factor applied
// to food, transport and lifestyle spending.
func (c CityProfile) BaseTotal(factor decimal.Decimal) decimal.Decimal {
	scaled := c.Food.Add(c.Transport).Add(c.Lifestyle).Mul(factor)
	return c.Rent.Add(c.Internet).Add(scaled)
}

// JobProfile describes a job category's starting salary and its yearly raise.
type JobProfile struct {
	Name           string          `yaml:"name" json:"name"`
	Salary         decimal.Decimal `yaml:"salary" json:"salary"`
	YearlyIncrease decimal.Decimal `yaml:"yearly_increase" json:"yearly_increase"` // fraction, 0.10 = 10%/year
}

// LifestyleTier scales discretionary spending (food, transport, lifestyle).
type LifestyleTier struct {
	Name   string          `yaml:"name" json:"name"`
	Factor decimal.Decimal `yaml:"factor" json:"factor"`
}

// ReferenceTables is the static data a calculator projects from.
type ReferenceTables struct {
	Cities     map[string]CityProfile   `yaml:"cities" json:"cities"`
	Jobs       map[string]JobProfile    `yaml:"jobs" json:"jobs"`
	Lifestyles map[string]LifestyleTier `yaml:"lifestyles" json:"lifestyles"`
}

// Table names reported by LookupError.
const (
	TableCity      = "city"
	TableJob       = "job"
	TableLifestyle = "lifestyle"
)

// NormalizeKey is applied to selection keys before lookup.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// City looks up a city by key.
func (t ReferenceTables) City(key string) (CityProfile, error) {
	c, ok := t.Cities[NormalizeKey(key)]
	if !ok {
		return CityProfile{}, &LookupError{Table: TableCity, Key: key}
	}
	return c, nil
}

// Job looks up a job category by key.
func (t ReferenceTables) Job(key string) (JobProfile, error) {
	j, ok := t.Jobs[NormalizeKey(key)]
	if !ok {
		return JobProfile{}, &LookupError{Table: TableJob, Key: key}
	}
	return j, nil
}

// Lifestyle looks up a lifestyle tier by key.
func (t ReferenceTables) Lifestyle(key string) (LifestyleTier, error) {
	l, ok := t.Lifestyles[NormalizeKey(key)]
	if !ok {
		return LifestyleTier{}, &LookupError{Table: TableLifestyle, Key: key}
	}
	return l, nil
}

// CityKeys returns the city keys in sorted order.
func (t ReferenceTables) CityKeys() []string { return sortedKeys(t.Cities) }

// JobKeys returns the job keys in sorted order.
func (t ReferenceTables) JobKeys() []string { return sortedKeys(t.Jobs) }

// LifestyleKeys returns the lifestyle keys ordered by factor, cheapest first.
func (t ReferenceTables) LifestyleKeys() []string {
	keys := sortedKeys(t.Lifestyles)
	sort.SliceStable(keys, func(i, j int) bool {
		return t.Lifestyles[keys[i]].Factor.LessThan(t.Lifestyles[keys[j]].Factor)
	})
	return keys
}

// Clone returns a deep copy whose maps can be mutated independently.
func (t ReferenceTables) Clone() ReferenceTables {
	out := ReferenceTables{
		Cities:     make(map[string]CityProfile, len(t.Cities)),
		Jobs:       make(map[string]JobProfile, len(t.Jobs)),
		Lifestyles: make(map[string]LifestyleTier, len(t.Lifestyles)),
	}
	for k, v := range t.Cities {
		out.Cities[NormalizeKey(k)] = v
	}
	for k, v := range t.Jobs {
		out.Jobs[NormalizeKey(k)] = v
	}
	for k, v := range t.Lifestyles {
		out.Lifestyles[NormalizeKey(k)] = v
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Selection is one set of calculator inputs.
type Selection struct {
	City                 string `yaml:"city" json:"city"`
	Job                  string `yaml:"job" json:"job"`
	Lifestyle            string `yaml:"lifestyle" json:"lifestyle"`
	InflationRatePercent int    `yaml:"inflation_rate_percent" json:"inflation_rate_percent"`
}
