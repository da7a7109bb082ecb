package calculation

import (
	"fmt"

	"github.com/rpgo/living-cost-simulator/internal/domain"
)

// Run projects a selection and derives its summary and recommendation.
func (c *Calculator) Run(sel domain.Selection) (*domain.ProjectionReport, error) {
	years, err := c.Project(sel)
	if err != nil {
		return nil, err
	}

	summary, err := c.Summarize(years)
	if err != nil {
		return nil, fmt.Errorf("summarize projection: %w", err)
	}

	rec, err := c.Recommend(sel, years)
	if err != nil {
		return nil, fmt.Errorf("build recommendation: %w", err)
	}

	r, err := c.resolve(sel)
	if err != nil {
		return nil, err
	}

	return &domain.ProjectionReport{
		Selection: domain.Selection{
			City:                 domain.NormalizeKey(sel.City),
			Job:                  domain.NormalizeKey(sel.Job),
			Lifestyle:            domain.NormalizeKey(sel.Lifestyle),
			InflationRatePercent: sel.InflationRatePercent,
		},
		CityName:        r.city.Name,
		JobName:         r.job.Name,
		LifestyleName:   r.lifestyle.Name,
		YearlyIncrease:  r.job.YearlyIncrease,
		LifestyleFactor: r.lifestyle.Factor,
		Years:           years,
		Summary:         summary,
		Recommendation:  rec,
	}, nil
}
