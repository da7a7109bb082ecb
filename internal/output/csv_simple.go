package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/living-cost-simulator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per year).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "TotalCost", "Salary", "Balance", "Surplus"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, y := range report.Years {
		row := []string{
			intToString(y.Year),
			y.TotalCost.StringFixed(0),
			y.Salary.StringFixed(0),
			y.Balance.StringFixed(0),
			boolToString(y.IsSurplus()),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
