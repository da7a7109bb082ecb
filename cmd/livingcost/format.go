package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/rpgo/living-cost-simulator/internal/calculation"
	"github.com/rpgo/living-cost-simulator/internal/domain"
	"github.com/rpgo/living-cost-simulator/internal/output"
)

var hundred = decimal.NewFromInt(100)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true)
	headerCell   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	bodyCell     = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return bodyCell
		})
}

func printReferenceTables(w io.Writer, tables domain.ReferenceTables) {
	cities := newTable("Key", "City", "Rent", "Food", "Transport", "Internet", "Lifestyle")
	for _, k := range tables.CityKeys() {
		c := tables.Cities[k]
		cities.Row(k, c.Name,
			output.FormatCurrency(c.Rent),
			output.FormatCurrency(c.Food),
			output.FormatCurrency(c.Transport),
			output.FormatCurrency(c.Internet),
			output.FormatCurrency(c.Lifestyle))
	}

	jobs := newTable("Key", "Job", "Salary", "Yearly increase")
	for _, k := range tables.JobKeys() {
		j := tables.Jobs[k]
		jobs.Row(k, j.Name, output.FormatCurrency(j.Salary), j.YearlyIncrease.Mul(hundred).String()+"%")
	}

	lifestyles := newTable("Key", "Lifestyle", "Factor")
	for _, k := range tables.LifestyleKeys() {
		l := tables.Lifestyles[k]
		lifestyles.Row(k, l.Name, l.Factor.StringFixed(1))
	}

	fmt.Fprintln(w, sectionStyle.Render("CITIES (monthly costs)"))
	fmt.Fprintln(w, cities.String())
	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render("JOBS (monthly salary)"))
	fmt.Fprintln(w, jobs.String())
	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render("LIFESTYLES"))
	fmt.Fprintln(w, lifestyles.String())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Inflation: %d%% to %d%% per year\n", calculation.MinInflationPercent, calculation.MaxInflationPercent)
}
