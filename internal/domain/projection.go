package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionYears is the fixed length of every projection.
const ProjectionYears = 5

// YearProjection represents the costs and income of a single projected year.
// Every monetary field is rounded to a whole currency unit on its own, so
// TotalCost may differ by a unit or two from the sum of the rounded components.
type YearProjection struct {
	Year int `json:"year"`

	// Monthly costs
	Rent         decimal.Decimal `json:"rent"`
	Food         decimal.Decimal `json:"food"`
	Transport    decimal.Decimal `json:"transport"`
	Internet     decimal.Decimal `json:"internet"`
	LifestyleExp decimal.Decimal `json:"lifestyle_exp"`
	TotalCost    decimal.Decimal `json:"total_cost"`

	// Monthly income
	Salary  decimal.Decimal `json:"salary"`
	Balance decimal.Decimal `json:"balance"`
}

// IsSurplus reports whether salary exceeds cost in this year.
func (y YearProjection) IsSurplus() bool {
	return y.Balance.IsPositive()
}

// Financial status values reported in Summary.Status.
const (
	StatusSurplus         = "surplus"
	StatusNeedsAdjustment = "needs_adjustment"
)

// Summary provides the headline metrics of a projection
type Summary struct {
	FirstSurplusYear            int             `json:"first_surplus_year,omitempty"` // 0 when no year is in surplus
	HasSurplus                  bool            `json:"has_surplus"`
	Status                      string          `json:"status"`
	FiveYearCostIncreasePercent decimal.Decimal `json:"five_year_cost_increase_percent"`
	FirstYearTotalCost          decimal.Decimal `json:"first_year_total_cost"`
}

// Recommendation is the advice shown alongside a projection. SuggestedLifestyle
// and AlternativeCities hold table keys; display names appear only in Messages.
type Recommendation struct {
	Deficit            bool            `json:"deficit"` // year 1 salary is below cost
	Messages           []string        `json:"messages"`
	SuggestedLifestyle string          `json:"suggested_lifestyle,omitempty"`
	AlternativeCities  []string        `json:"alternative_cities,omitempty"`
	FirstYearSurplus   decimal.Decimal `json:"first_year_surplus"`
	EmergencySaving    decimal.Decimal `json:"emergency_saving"`
}

// ProjectionReport bundles everything a presentation layer needs.
type ProjectionReport struct {
	Selection       Selection        `json:"selection"`
	CityName        string           `json:"city_name"`
	JobName         string           `json:"job_name"`
	LifestyleName   string           `json:"lifestyle_name"`
	YearlyIncrease  decimal.Decimal  `json:"yearly_increase"`
	LifestyleFactor decimal.Decimal  `json:"lifestyle_factor"`
	Years           []YearProjection `json:"years"`
	Summary         Summary          `json:"summary"`
	Recommendation  Recommendation   `json:"recommendation"`
}

// FirstYear returns the year-1 projection, or false for an empty report.
func (r *ProjectionReport) FirstYear() (YearProjection, bool) {
	if r == nil || len(r.Years) == 0 {
		return YearProjection{}, false
	}
	return r.Years[0], true
}
