package calculation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rpgo/living-cost-simulator/internal/config"
	"github.com/rpgo/living-cost-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func newDefaultCalculator() *Calculator {
	return NewCalculator(config.DefaultTables())
}

func yearOf(year int, rent, food, transport, internet, lifestyle, total, salary, balance int64) domain.YearProjection {
	return domain.YearProjection{
		Year:         year,
		Rent:         decimal.NewFromInt(rent),
		Food:         decimal.NewFromInt(food),
		Transport:    decimal.NewFromInt(transport),
		Internet:     decimal.NewFromInt(internet),
		LifestyleExp: decimal.NewFromInt(lifestyle),
		TotalCost:    decimal.NewFromInt(total),
		Salary:       decimal.NewFromInt(salary),
		Balance:      decimal.NewFromInt(balance),
	}
}

// allSelections enumerates every key combination of the built-in tables.
func allSelections(inflation int) []domain.Selection {
	tables := config.DefaultTables()
	var out []domain.Selection
	for _, c := range tables.CityKeys() {
		for _, j := range tables.JobKeys() {
			for _, l := range tables.LifestyleKeys() {
				out = append(out, domain.Selection{City: c, Job: j, Lifestyle: l, InflationRatePercent: inflation})
			}
		}
	}
	return out
}

func TestProject_JakartaFreshGraduate(t *testing.T) {
	calc := newDefaultCalculator()
	years, err := calc.Project(domain.Selection{City: "jakarta", Job: "freshgrad", Lifestyle: "normal", InflationRatePercent: 5})
	require.NoError(t, err)

	want := []domain.YearProjection{
		yearOf(1, 3500000, 2500000, 1000000, 400000, 1500000, 8900000, 5000000, -3900000),
		yearOf(2, 3675000, 2625000, 1050000, 420000, 1575000, 9345000, 5500000, -3845000),
		yearOf(3, 3858750, 2756250, 1102500, 441000, 1653750, 9812250, 6050000, -3762250),
		yearOf(4, 4051688, 2894063, 1157625, 463050, 1736438, 10302863, 6655000, -3647862),
		yearOf(5, 4254272, 3038766, 1215506, 486203, 1823259, 10818006, 7320500, -3497506),
	}
	if diff := cmp.Diff(want, years, decimalEqual); diff != "" {
		t.Fatalf("projection mismatch (-want +got):\n%s", diff)
	}
}

func TestProject_PerFieldRounding(t *testing.T) {
	calc := newDefaultCalculator()
	years, err := calc.Project(domain.Selection{City: "jakarta", Job: "freshgrad", Lifestyle: "normal", InflationRatePercent: 5})
	require.NoError(t, err)

	// Year 4: the rounded components add up to one unit more than the rounded total.
	y4 := years[3]
	componentSum := y4.Rent.Add(y4.Food).Add(y4.Transport).Add(y4.Internet).Add(y4.LifestyleExp)
	assert.Equal(t, "10302864", componentSum.String())
	assert.Equal(t, "10302863", y4.TotalCost.String())
}

func TestProject_ShapeForAllSelections(t *testing.T) {
	calc := newDefaultCalculator()
	for inflation := MinInflationPercent; inflation <= MaxInflationPercent; inflation++ {
		for _, sel := range allSelections(inflation) {
			years, err := calc.Project(sel)
			require.NoError(t, err, "selection %+v", sel)
			require.Len(t, years, domain.ProjectionYears)

			for i, y := range years {
				assert.Equal(t, i+1, y.Year)

				// balance is rounded from unrounded operands, so allow one unit
				diff := y.Salary.Sub(y.TotalCost).Sub(y.Balance).Abs()
				assert.True(t, diff.LessThanOrEqual(decimal.NewFromInt(1)),
					"balance drift %s for %+v year %d", diff, sel, y.Year)

				if i > 0 {
					prev := years[i-1]
					assert.True(t, y.TotalCost.GreaterThanOrEqual(prev.TotalCost), "cost decreased for %+v", sel)
					assert.True(t, y.Salary.GreaterThanOrEqual(prev.Salary), "salary decreased for %+v", sel)
				}
			}
		}
	}
}

func TestProject_FirstYearUsesBaseFigures(t *testing.T) {
	calc := newDefaultCalculator()
	tables := config.DefaultTables()

	for _, sel := range allSelections(8) {
		years, err := calc.Project(sel)
		require.NoError(t, err)

		city := tables.Cities[sel.City]
		job := tables.Jobs[sel.Job]
		assert.True(t, years[0].Rent.Equal(city.Rent))
		assert.True(t, years[0].Internet.Equal(city.Internet))
		assert.True(t, years[0].Salary.Equal(job.Salary))
	}
}

func TestProject_LifestyleFactorIndependence(t *testing.T) {
	calc := newDefaultCalculator()
	tables := config.DefaultTables()

	for _, cityKey := range tables.CityKeys() {
		base, err := calc.Project(domain.Selection{City: cityKey, Job: "it", Lifestyle: "normal", InflationRatePercent: 7})
		require.NoError(t, err)

		for _, tier := range tables.LifestyleKeys() {
			factor := tables.Lifestyles[tier].Factor
			years, err := calc.Project(domain.Selection{City: cityKey, Job: "it", Lifestyle: tier, InflationRatePercent: 7})
			require.NoError(t, err)

			for i := range years {
				assert.True(t, years[i].Rent.Equal(base[i].Rent), "%s/%s rent", cityKey, tier)
				assert.True(t, years[i].Internet.Equal(base[i].Internet), "%s/%s internet", cityKey, tier)
				assert.True(t, years[i].Salary.Equal(base[i].Salary), "%s/%s salary", cityKey, tier)

				tolerance := decimal.NewFromInt(2)
				for _, pair := range [][2]decimal.Decimal{
					{years[i].Food, base[i].Food},
					{years[i].Transport, base[i].Transport},
					{years[i].LifestyleExp, base[i].LifestyleExp},
				} {
					scaled := pair[1].Mul(factor)
					assert.True(t, pair[0].Sub(scaled).Abs().LessThanOrEqual(tolerance),
						"%s/%s year %d: got %s want ~%s", cityKey, tier, i+1, pair[0], scaled)
				}
			}

			// no escalation in year 1, so the scaling is exact
			city := tables.Cities[cityKey]
			assert.True(t, years[0].Food.Equal(city.Food.Mul(factor)))
			assert.True(t, years[0].Transport.Equal(city.Transport.Mul(factor)))
			assert.True(t, years[0].LifestyleExp.Equal(city.Lifestyle.Mul(factor)))
		}
	}
}

func TestProject_Idempotent(t *testing.T) {
	calc := newDefaultCalculator()
	sel := domain.Selection{City: "bali", Job: "engineering", Lifestyle: "mewah", InflationRatePercent: 9}

	first, err := calc.Project(sel)
	require.NoError(t, err)
	second, err := calc.Project(sel)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second, decimalEqual); diff != "" {
		t.Fatalf("repeated projection differs (-first +second):\n%s", diff)
	}
}

func TestProject_ExactHalfRoundsUp(t *testing.T) {
	years, err := newDefaultCalculator().Project(domain.Selection{City: "bandung", Job: "engineering", Lifestyle: "normal", InflationRatePercent: 5})
	require.NoError(t, err)

	// 7,500,000 * 1.13^3 = 10,821,727.5 exactly
	assert.Equal(t, "10821728", years[3].Salary.String())
}

func TestProject_UnknownKeys(t *testing.T) {
	calc := newDefaultCalculator()
	tests := []struct {
		name  string
		sel   domain.Selection
		table string
		key   string
	}{
		{"unknown city", domain.Selection{City: "atlantis", Job: "it", Lifestyle: "normal", InflationRatePercent: 5}, domain.TableCity, "atlantis"},
		{"unknown job", domain.Selection{City: "medan", Job: "astronaut", Lifestyle: "normal", InflationRatePercent: 5}, domain.TableJob, "astronaut"},
		{"unknown lifestyle", domain.Selection{City: "medan", Job: "it", Lifestyle: "boros", InflationRatePercent: 5}, domain.TableLifestyle, "boros"},
		{"empty city", domain.Selection{Job: "it", Lifestyle: "normal", InflationRatePercent: 5}, domain.TableCity, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, err := calc.Project(tt.sel)
			assert.Nil(t, years)

			var lookupErr *domain.LookupError
			require.True(t, errors.As(err, &lookupErr), "expected LookupError, got %v", err)
			assert.Equal(t, tt.table, lookupErr.Table)
			assert.Equal(t, tt.key, lookupErr.Key)
		})
	}
}

func TestProject_KeysAreNormalized(t *testing.T) {
	calc := newDefaultCalculator()
	years, err := calc.Project(domain.Selection{City: " Jakarta ", Job: "FRESHGRAD", Lifestyle: "Normal", InflationRatePercent: 5})
	require.NoError(t, err)
	assert.Equal(t, "8900000", years[0].TotalCost.String())
}

func TestProject_AcceptsAnyInflation(t *testing.T) {
	calc := newDefaultCalculator()

	years, err := calc.Project(domain.Selection{City: "medan", Job: "cs", Lifestyle: "normal", InflationRatePercent: -10})
	require.NoError(t, err)
	assert.True(t, years[4].TotalCost.LessThan(years[0].TotalCost))

	years, err = calc.Project(domain.Selection{City: "medan", Job: "cs", Lifestyle: "normal", InflationRatePercent: 0})
	require.NoError(t, err)
	for _, y := range years {
		assert.True(t, y.TotalCost.Equal(years[0].TotalCost))
	}
}

func TestNewCalculator_InjectedTables(t *testing.T) {
	tables := domain.ReferenceTables{
		Cities: map[string]domain.CityProfile{
			"Testville": {Name: "Testville", Rent: decimal.NewFromInt(1000), Food: decimal.NewFromInt(500),
				Transport: decimal.NewFromInt(100), Internet: decimal.NewFromInt(50), Lifestyle: decimal.NewFromInt(350)},
		},
		Jobs: map[string]domain.JobProfile{
			"tester": {Name: "Tester", Salary: decimal.NewFromInt(1500), YearlyIncrease: decimal.NewFromFloat(0.5)},
		},
		Lifestyles: map[string]domain.LifestyleTier{
			"half": {Name: "Half", Factor: decimal.NewFromFloat(0.5)},
		},
	}
	calc := NewCalculator(tables)

	// mutating the caller's tables must not leak into the calculator
	delete(tables.Cities, "Testville")

	years, err := calc.Project(domain.Selection{City: "testville", Job: "tester", Lifestyle: "half", InflationRatePercent: 10})
	require.NoError(t, err)

	// 1000 + 50 + (500 + 100 + 350) * 0.5
	assert.Equal(t, "1525", years[0].TotalCost.String())
	assert.Equal(t, "-25", years[0].Balance.String())
	// 1500 * 1.5
	assert.Equal(t, "2250", years[1].Salary.String())
	// 1525 * 1.1 = 1677.5, half rounds up
	assert.Equal(t, "1678", years[1].TotalCost.String())

	_, err = calc.Project(domain.Selection{City: "jakarta", Job: "tester", Lifestyle: "half", InflationRatePercent: 10})
	var lookupErr *domain.LookupError
	assert.True(t, errors.As(err, &lookupErr))
}

func TestProject_Concurrent(t *testing.T) {
	calc := newDefaultCalculator()
	selections := allSelections(6)

	want := make([][]domain.YearProjection, len(selections))
	for i, sel := range selections {
		years, err := calc.Project(sel)
		require.NoError(t, err)
		want[i] = years
	}

	var g errgroup.Group
	g.SetLimit(16)
	for i, sel := range selections {
		i, sel := i, sel
		g.Go(func() error {
			years, err := calc.Project(sel)
			if err != nil {
				return err
			}
			if diff := cmp.Diff(want[i], years, decimalEqual); diff != "" {
				return fmt.Errorf("concurrent projection for %+v differs:\n%s", sel, diff)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
