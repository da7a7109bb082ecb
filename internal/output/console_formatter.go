package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/living-cost-simulator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "COST OF LIVING SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "%s / %s / %s / %d%%\n", report.CityName, report.JobName, report.LifestyleName, report.Selection.InflationRatePercent)
	fmt.Fprintln(&buf)
	for _, y := range report.Years {
		fmt.Fprintf(&buf, "Year %d: Cost=%s Salary=%s Balance=%s\n",
			y.Year, FormatCurrency(y.TotalCost), FormatCurrency(y.Salary), FormatSigned(y.Balance))
	}
	fmt.Fprintln(&buf)
	if report.Summary.HasSurplus {
		fmt.Fprintf(&buf, "First surplus: Year %d\n", report.Summary.FirstSurplusYear)
	} else {
		fmt.Fprintln(&buf, "First surplus: none")
	}
	fmt.Fprintf(&buf, "5-year cost increase: %s\n", FormatPercentage(report.Summary.FiveYearCostIncreasePercent))
	return buf.Bytes(), nil
}
