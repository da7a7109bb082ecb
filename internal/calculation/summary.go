package calculation

import (
	"fmt"

	"github.com/rpgo/living-cost-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// FirstSurplusYear returns the first year whose balance is positive.
// The boolean is false when no year in the projection is in surplus.
func FirstSurplusYear(years []domain.YearProjection) (int, bool) {
	for _, y := range years {
		if y.IsSurplus() {
			return y.Year, true
		}
	}
	return 0, false
}

// FiveYearCostIncreasePercent computes the growth of total cost from year 1 to
// year 5 as a percentage rounded to one decimal place, using the rounded
// yearly totals.
func FiveYearCostIncreasePercent(years []domain.YearProjection) (decimal.Decimal, error) {
	const op = "five-year cost increase"
	if len(years) != domain.ProjectionYears {
		return decimal.Zero, &domain.ComputationError{
			Op:     op,
			Reason: fmt.Sprintf("expected %d projected years, got %d", domain.ProjectionYears, len(years)),
		}
	}

	first := years[0].TotalCost
	last := years[len(years)-1].TotalCost
	if first.IsZero() {
		return decimal.Zero, &domain.ComputationError{Op: op, Reason: "year 1 total cost is zero"}
	}

	return last.Sub(first).Div(first).Mul(hundred).Round(1), nil
}

// Summarize derives the headline metrics of a projection.
func (c *Calculator) Summarize(years []domain.YearProjection) (domain.Summary, error) {
	increase, err := FiveYearCostIncreasePercent(years)
	if err != nil {
		return domain.Summary{}, err
	}

	summary := domain.Summary{
		Status:                      domain.StatusNeedsAdjustment,
		FiveYearCostIncreasePercent: increase,
		FirstYearTotalCost:          years[0].TotalCost,
	}
	if year, ok := FirstSurplusYear(years); ok {
		summary.FirstSurplusYear = year
		summary.HasSurplus = true
		summary.Status = domain.StatusSurplus
	}
	return summary, nil
}
