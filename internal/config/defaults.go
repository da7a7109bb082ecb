package config

import (
	"github.com/rpgo/living-cost-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// Inputs selected when nothing else is configured.
const (
	DefaultCity          = "jakarta"
	DefaultJob           = "freshgrad"
	DefaultLifestyle     = "normal"
	DefaultInflationRate = 5
)

func city(name string, rent, food, transport, internet, lifestyle int64) domain.CityProfile {
	return domain.CityProfile{
		Name:      name,
		Rent:      decimal.NewFromInt(rent),
		Food:      decimal.NewFromInt(food),
		Transport: decimal.NewFromInt(transport),
		Internet:  decimal.NewFromInt(internet),
		Lifestyle: decimal.NewFromInt(lifestyle),
	}
}

func job(name string, salary int64, increase float64) domain.JobProfile {
	return domain.JobProfile{
		Name:           name,
		Salary:         decimal.NewFromInt(salary),
		YearlyIncrease: decimal.NewFromFloat(increase),
	}
}

// DefaultTables returns a fresh copy of the built-in reference data
// (monthly figures in Rupiah).
func DefaultTables() domain.ReferenceTables {
	return domain.ReferenceTables{
		Cities: map[string]domain.CityProfile{
			"jakarta":    city("Jakarta", 3500000, 2500000, 1000000, 400000, 1500000),
			"bandung":    city("Bandung", 2000000, 1800000, 700000, 350000, 1200000),
			"surabaya":   city("Surabaya", 2200000, 2000000, 800000, 350000, 1300000),
			"yogyakarta": city("Yogyakarta", 1500000, 1500000, 600000, 300000, 1000000),
			"medan":      city("Medan", 1800000, 1700000, 700000, 350000, 1100000),
			"bali":       city("Bali (Denpasar)", 2500000, 2200000, 900000, 400000, 1800000),
		},
		Jobs: map[string]domain.JobProfile{
			"freshgrad":   job("Fresh Graduate", 5000000, 0.10),
			"it":          job("IT / Software Engineer", 8000000, 0.15),
			"marketing":   job("Marketing", 6500000, 0.12),
			"finance":     job("Finance / Accounting", 7000000, 0.12),
			"design":      job("Desain / Kreatif", 6000000, 0.10),
			"cs":          job("Customer Service", 5500000, 0.08),
			"engineering": job("Engineering / Teknik", 7500000, 0.13),
			"teacher":     job("Guru / Tutor", 5500000, 0.08),
		},
		Lifestyles: map[string]domain.LifestyleTier{
			"hemat":  {Name: "Hemat", Factor: decimal.NewFromFloat(0.8)},
			"normal": {Name: "Normal", Factor: decimal.NewFromFloat(1.0)},
			"mewah":  {Name: "Mewah", Factor: decimal.NewFromFloat(1.4)},
		},
	}
}
