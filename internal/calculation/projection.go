package calculation

import (
	"github.com/rpgo/living-cost-simulator/internal/domain"
	"github.com/rpgo/living-cost-simulator/pkg/money"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Calculator projects cost of living against salary from a fixed set of
// reference tables. It holds its own copy of the tables and no other state,
// so one Calculator can serve concurrent callers.
type Calculator struct {
	tables domain.ReferenceTables
}

// NewCalculator creates a calculator over a private copy of tables.
func NewCalculator(tables domain.ReferenceTables) *Calculator {
	return &Calculator{tables: tables.Clone()}
}

// Tables returns a copy of the reference tables the calculator reads.
func (c *Calculator) Tables() domain.ReferenceTables {
	return c.tables.Clone()
}

// resolved is a selection with every key looked up.
type resolved struct {
	city      domain.CityProfile
	job       domain.JobProfile
	lifestyle domain.LifestyleTier
	inflation decimal.Decimal // fraction
}

func (c *Calculator) resolve(sel domain.Selection) (resolved, error) {
	city, err := c.tables.City(sel.City)
	if err != nil {
		return resolved{}, err
	}
	job, err := c.tables.Job(sel.Job)
	if err != nil {
		return resolved{}, err
	}
	lifestyle, err := c.tables.Lifestyle(sel.Lifestyle)
	if err != nil {
		return resolved{}, err
	}
	return resolved{
		city:      city,
		job:       job,
		lifestyle: lifestyle,
		inflation: decimal.NewFromInt(int64(sel.InflationRatePercent)).Div(hundred),
	}, nil
}

// Project returns the five-year projection for a selection. Year 1 uses the
// unescalated base figures; each later year compounds costs at the inflation
// rate and salary at the job's yearly increase. Any inflation value is
// accepted here; range checks belong to the caller (see ValidateInflation).
func (c *Calculator) Project(sel domain.Selection) ([]domain.YearProjection, error) {
	r, err := c.resolve(sel)
	if err != nil {
		return nil, err
	}

	years := make([]domain.YearProjection, 0, domain.ProjectionYears)
	for year := 1; year <= domain.ProjectionYears; year++ {
		years = append(years, projectYear(r, year))
	}
	return years, nil
}

func projectYear(r resolved, year int) domain.YearProjection {
	growth := money.GrowthFactor(r.inflation, year-1)
	factor := r.lifestyle.Factor

	// Rent and internet are not affected by lifestyle.
	rent := money.NewMoneyFromDecimal(r.city.Rent).Mul(growth)
	food := money.NewMoneyFromDecimal(r.city.Food).Mul(factor).Mul(growth)
	transport := money.NewMoneyFromDecimal(r.city.Transport).Mul(factor).Mul(growth)
	internet := money.NewMoneyFromDecimal(r.city.Internet).Mul(growth)
	lifestyle := money.NewMoneyFromDecimal(r.city.Lifestyle).Mul(factor).Mul(growth)

	totalCost := money.Sum(rent, food, transport, internet, lifestyle)
	salary := money.NewMoneyFromDecimal(r.job.Salary).Grow(r.job.YearlyIncrease, year-1)
	balance := salary.Sub(totalCost)

	// Each field is rounded on its own, after the unrounded total and balance
	// have been computed.
	return domain.YearProjection{
		Year:         year,
		Rent:         rent.Round().Decimal,
		Food:         food.Round().Decimal,
		Transport:    transport.Round().Decimal,
		Internet:     internet.Round().Decimal,
		LifestyleExp: lifestyle.Round().Decimal,
		TotalCost:    totalCost.Round().Decimal,
		Salary:       salary.Round().Decimal,
		Balance:      balance.Round().Decimal,
	}
}
