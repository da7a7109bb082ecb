package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/rpgo/living-cost-simulator/internal/domain"
	"github.com/rpgo/living-cost-simulator/pkg/money"
)

// HTMLFormatter produces a standalone HTML report with a cost versus salary chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":     FormatCurrency,
	"signed":   FormatSigned,
	"pct":      FormatPercentage,
	"millions": money.Millions,
	"trend":    balanceTrend,
	"json":     templateJSON,
}).Parse(htmlTemplateSource))

// templateJSON embeds v as a script literal.
func templateJSON(v interface{}) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

// chartBar is one year of the bar chart, heights in percent of the tallest bar.
type chartBar struct {
	Year         int
	Cost         decimal.Decimal
	Salary       decimal.Decimal
	CostHeight   string
	SalaryHeight string
}

func chartBars(years []domain.YearProjection) []chartBar {
	peak := decimal.Zero
	for _, y := range years {
		peak = decimal.Max(peak, y.TotalCost, y.Salary)
	}
	bars := make([]chartBar, 0, len(years))
	for _, y := range years {
		b := chartBar{Year: y.Year, Cost: y.TotalCost, Salary: y.Salary, CostHeight: "0", SalaryHeight: "0"}
		if peak.IsPositive() {
			b.CostHeight = y.TotalCost.Div(peak).Mul(decimalHundred).StringFixed(1)
			b.SalaryHeight = y.Salary.Div(peak).Mul(decimalHundred).StringFixed(1)
		}
		bars = append(bars, b)
	}
	return bars
}

func (h HTMLFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.ProjectionReport
		Analysis    Analysis
		Assumptions []string
		Bars        []chartBar
	}{report, AnalyzeProjection(report), GenerateAssumptions(report), chartBars(report.Years)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
