package output

import (
	"github.com/rpgo/living-cost-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// Analysis captures how the gap between salary and cost moves over the projection.
type Analysis struct {
	CostIncrease          decimal.Decimal
	SalaryIncrease        decimal.Decimal
	SalaryIncreasePercent decimal.Decimal
	BalanceChange         decimal.Decimal
	BestYear              int
	BestBalance           decimal.Decimal
	GapClosing            bool
}

// AnalyzeProjection compares the first and last projected years.
// Extracted from the console and HTML formatters for testability.
func AnalyzeProjection(report *domain.ProjectionReport) Analysis {
	if report == nil || len(report.Years) == 0 {
		return Analysis{}
	}
	first := report.Years[0]
	last := report.Years[len(report.Years)-1]

	a := Analysis{
		CostIncrease:   last.TotalCost.Sub(first.TotalCost),
		SalaryIncrease: last.Salary.Sub(first.Salary),
		BalanceChange:  last.Balance.Sub(first.Balance),
		BestYear:       first.Year,
		BestBalance:    first.Balance,
	}
	if !first.Salary.IsZero() {
		a.SalaryIncreasePercent = a.SalaryIncrease.Div(first.Salary).Mul(decimalHundred).Round(1)
	}
	for _, y := range report.Years[1:] {
		if y.Balance.GreaterThan(a.BestBalance) {
			a.BestYear = y.Year
			a.BestBalance = y.Balance
		}
	}
	a.GapClosing = a.BalanceChange.IsPositive()
	return a
}

// balanceTrend describes the direction of BalanceChange.
func balanceTrend(a Analysis) string {
	if a.GapClosing {
		return "improving"
	}
	return "worsening"
}
