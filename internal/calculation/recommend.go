package calculation

import (
	"fmt"
	"sort"

	"github.com/rpgo/living-cost-simulator/internal/domain"
	"github.com/rpgo/living-cost-simulator/pkg/money"
	"github.com/shopspring/decimal"
)

// EmergencyFundShare is the part of a first-year surplus suggested for savings.
var EmergencyFundShare = decimal.NewFromFloat(0.20)

// alternativeCityCount is how many cheaper cities a deficit recommendation names.
const alternativeCityCount = 2

// Recommend builds advice from the first projected year. A first-year deficit
// yields a cheaper lifestyle and cheaper cities; a surplus yields a savings hint.
func (c *Calculator) Recommend(sel domain.Selection, years []domain.YearProjection) (domain.Recommendation, error) {
	if len(years) == 0 {
		return domain.Recommendation{}, &domain.ComputationError{Op: "recommendation", Reason: "empty projection"}
	}
	r, err := c.resolve(sel)
	if err != nil {
		return domain.Recommendation{}, err
	}

	first := years[0]
	if first.Balance.IsNegative() {
		return c.deficitAdvice(sel, r, first), nil
	}

	saving := money.RoundUnit(first.Balance.Mul(EmergencyFundShare))
	return domain.Recommendation{
		Messages: []string{
			"Your salary covers the cost of living from the first year",
			fmt.Sprintf("Year 1 surplus: %s", money.Rupiah.Format(first.Balance)),
			fmt.Sprintf("Set aside at least 20%% of the surplus (%s) for an emergency fund", money.Rupiah.Format(saving)),
		},
		FirstYearSurplus: first.Balance,
		EmergencySaving:  saving,
	}, nil
}

func (c *Calculator) deficitAdvice(sel domain.Selection, r resolved, first domain.YearProjection) domain.Recommendation {
	rec := domain.Recommendation{
		Deficit: true,
		Messages: []string{
			fmt.Sprintf("Starting salary (%s) is below the cost of living (%s)",
				money.Rupiah.Format(first.Salary), money.Rupiah.Format(first.TotalCost)),
		},
		FirstYearSurplus: decimal.Zero,
		EmergencySaving:  decimal.Zero,
	}

	cheapest := c.tables.LifestyleKeys()[0]
	if cheapest != domain.NormalizeKey(sel.Lifestyle) {
		rec.SuggestedLifestyle = cheapest
		rec.Messages = append(rec.Messages, fmt.Sprintf("Consider the %s lifestyle or a job with a higher salary",
			c.tables.Lifestyles[cheapest].Name))
	} else {
		rec.Messages = append(rec.Messages, "Consider a job with a higher salary")
	}

	rec.AlternativeCities = c.cheaperCities(domain.NormalizeKey(sel.City), r.lifestyle.Factor, r.city.BaseTotal(r.lifestyle.Factor))
	names := make([]string, len(rec.AlternativeCities))
	for i, key := range rec.AlternativeCities {
		names[i] = c.tables.Cities[key].Name
	}
	switch len(names) {
	case 0:
	case 1:
		rec.Messages = append(rec.Messages, fmt.Sprintf("Lower-cost alternative city: %s", names[0]))
	default:
		rec.Messages = append(rec.Messages, fmt.Sprintf("Lower-cost alternative cities: %s or %s", names[0], names[1]))
	}
	return rec
}

// cheaperCities returns the keys of the cheapest cities that cost less than the selected one
// under the same lifestyle factor.
func (c *Calculator) cheaperCities(selected string, factor, selectedCost decimal.Decimal) []string {
	type ranked struct {
		key  string
		cost decimal.Decimal
	}
	var ranks []ranked
	for _, key := range c.tables.CityKeys() {
		if key == selected {
			continue
		}
		cost := c.tables.Cities[key].BaseTotal(factor)
		if cost.LessThan(selectedCost) {
			ranks = append(ranks, ranked{key, cost})
		}
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].cost.LessThan(ranks[j].cost) })

	var keys []string
	for i := 0; i < len(ranks) && i < alternativeCityCount; i++ {
		keys = append(keys, ranks[i].key)
	}
	return keys
}
