package output

import (
	"io"

	"github.com/rpgo/living-cost-simulator/internal/domain"
)

// Render formats report with the named formatter and writes it to w.
func Render(w io.Writer, report *domain.ProjectionReport, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupportedFormat(format)
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes report to a timestamped file in dir and returns its path.
// The format "all" writes the detailed console, detailed CSV and HTML reports
// and returns the path of the last one written.
func GenerateReport(report *domain.ProjectionReport, format, dir string) (string, error) {
	if NormalizeFormatName(format) == "all" {
		var path string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}, HTMLFormatter{}} {
			p, err := WriteFormatted(f, report, dir)
			if err != nil {
				return "", err
			}
			path = p
		}
		return path, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return "", unsupportedFormat(format)
	}
	return WriteFormatted(f, report, dir)
}
