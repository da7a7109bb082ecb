package output

import (
	"fmt"

	"github.com/rpgo/living-cost-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists the modeling assumptions that hold for every selection.
var DefaultAssumptions = []string{
	"All amounts are monthly, in Rupiah, rounded to the nearest whole Rupiah",
	"Year 1 uses current prices and the starting salary",
	"Rent and internet are not affected by the lifestyle choice",
}

// GenerateAssumptions creates the assumptions list from the report's inputs.
func GenerateAssumptions(report *domain.ProjectionReport) []string {
	out := []string{
		fmt.Sprintf("Cost inflation: %d%% per year, compounded from year 2", report.Selection.InflationRatePercent),
		fmt.Sprintf("Salary increase: %s%% per year (%s)",
			report.YearlyIncrease.Mul(decimalHundred).String(), report.JobName),
		fmt.Sprintf("Lifestyle factor %s (%s) applied to food, transport and lifestyle spending",
			report.LifestyleFactor.StringFixed(1), report.LifestyleName),
	}
	return append(out, DefaultAssumptions...)
}

var decimalHundred = decimal.NewFromInt(100)
