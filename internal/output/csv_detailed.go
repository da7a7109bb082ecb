package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/living-cost-simulator/internal/domain"
)

// CSVDetailedExporter provides every cost component per projected year,
// prefixed by the selection so several exports can be concatenated.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"City", "Job", "Lifestyle", "InflationPercent", "Year",
		"Rent", "Food", "Transport", "Internet", "Lifestyle", "TotalCost", "Salary", "Balance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	sel := report.Selection
	for _, y := range report.Years {
		row := []string{
			sel.City,
			sel.Job,
			sel.Lifestyle,
			intToString(sel.InflationRatePercent),
			intToString(y.Year),
			y.Rent.StringFixed(0),
			y.Food.StringFixed(0),
			y.Transport.StringFixed(0),
			y.Internet.StringFixed(0),
			y.LifestyleExp.StringFixed(0),
			y.TotalCost.StringFixed(0),
			y.Salary.StringFixed(0),
			y.Balance.StringFixed(0),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
