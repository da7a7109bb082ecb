package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rpgo/living-cost-simulator/internal/domain"
)

var (
	accent      = lipgloss.Color("#2196F3")
	success     = lipgloss.Color("#8BC34A")
	destructive = lipgloss.Color("#e53935")
	muted       = lipgloss.Color("#6b7280")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	surplusStyle = cellStyle.Foreground(success)
	deficitStyle = cellStyle.Foreground(destructive)
	noteStyle    = lipgloss.NewStyle().Foreground(muted)
)

// balanceColumn is the index of the balance column in the year table.
const balanceColumn = 8

// ConsoleVerboseFormatter renders the full year-by-year breakdown with
// summary, advice and assumptions.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, titleStyle.Render("FIVE-YEAR COST OF LIVING PROJECTION"))
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintf(&buf, "City:      %s\n", report.CityName)
	fmt.Fprintf(&buf, "Job:       %s\n", report.JobName)
	fmt.Fprintf(&buf, "Lifestyle: %s\n", report.LifestyleName)
	fmt.Fprintf(&buf, "Inflation: %d%% per year\n", report.Selection.InflationRatePercent)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, yearTable(report.Years))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "Year 1 cost of living:  %s\n", FormatCurrency(report.Summary.FirstYearTotalCost))
	if report.Summary.HasSurplus {
		fmt.Fprintf(&buf, "First surplus year:     Year %d\n", report.Summary.FirstSurplusYear)
	} else {
		fmt.Fprintln(&buf, "First surplus year:     none within 5 years")
	}
	fmt.Fprintf(&buf, "5-year cost increase:   %s\n", FormatPercentage(report.Summary.FiveYearCostIncreasePercent))
	fmt.Fprintf(&buf, "Status:                 %s\n", statusLabel(report.Summary.Status))

	a := AnalyzeProjection(report)
	fmt.Fprintf(&buf, "Salary growth:          %s (%s)\n", FormatSigned(a.SalaryIncrease), FormatPercentage(a.SalaryIncreasePercent))
	fmt.Fprintf(&buf, "Cost growth:            %s\n", FormatSigned(a.CostIncrease))
	fmt.Fprintf(&buf, "Balance change:         %s (%s)\n", FormatSigned(a.BalanceChange), balanceTrend(a))
	fmt.Fprintf(&buf, "Best year:              Year %d (%s)\n", a.BestYear, FormatSigned(a.BestBalance))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "RECOMMENDATIONS")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	for _, m := range report.Recommendation.Messages {
		fmt.Fprintf(&buf, "• %s\n", m)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, noteStyle.Render("KEY ASSUMPTIONS:"))
	for _, line := range GenerateAssumptions(report) {
		fmt.Fprintln(&buf, noteStyle.Render("• "+line))
	}
	return buf.Bytes(), nil
}

func yearTable(years []domain.YearProjection) string {
	rows := make([][]string, 0, len(years))
	for _, y := range years {
		rows = append(rows, []string{
			intToString(y.Year),
			FormatCurrency(y.Rent),
			FormatCurrency(y.Food),
			FormatCurrency(y.Transport),
			FormatCurrency(y.Internet),
			FormatCurrency(y.LifestyleExp),
			FormatCurrency(y.TotalCost),
			FormatCurrency(y.Salary),
			FormatCurrency(y.Balance),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(muted)).
		Headers("Year", "Rent", "Food", "Transport", "Internet", "Lifestyle", "Total Cost", "Salary", "Balance").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == balanceColumn && row >= 0 && row < len(years):
				if years[row].IsSurplus() {
					return surplusStyle
				}
				return deficitStyle
			default:
				return cellStyle
			}
		})
	return t.String()
}

func statusLabel(status string) string {
	switch status {
	case domain.StatusSurplus:
		return "Surplus"
	case domain.StatusNeedsAdjustment:
		return "Needs adjustment"
	default:
		return status
	}
}
