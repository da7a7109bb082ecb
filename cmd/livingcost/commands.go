package main

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/living-cost-simulator/internal/domain"
)

// projectOptions are the flags of the project command.
type projectOptions struct {
	city      string
	job       string
	lifestyle string
	inflation int
	format    string
	clamp     bool
	outputDir string
}

func (a *app) projectCmd() *cobra.Command {
	var opts projectOptions

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project cost of living against salary over five years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := a.settings.Defaults
			sel := domain.Selection{
				City:                 valueOr(opts.city, d.City),
				Job:                  valueOr(opts.job, d.Job),
				Lifestyle:            valueOr(opts.lifestyle, d.Lifestyle),
				InflationRatePercent: d.Inflation,
			}
			if cmd.Flags().Changed("inflation") {
				sel.InflationRatePercent = opts.inflation
			}
			format := valueOr(opts.format, a.settings.Output.Format)
			return a.runProject(sel, format, opts.clamp, opts.outputDir)
		},
	}

	cmd.Flags().StringVar(&opts.city, "city", "", "city key (see 'livingcost tables')")
	cmd.Flags().StringVar(&opts.job, "job", "", "job category key")
	cmd.Flags().StringVar(&opts.lifestyle, "lifestyle", "", "lifestyle tier key")
	cmd.Flags().IntVar(&opts.inflation, "inflation", 0, "annual inflation rate in whole percent (3-10)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format (console, console-lite, csv, detailed-csv, json, html)")
	cmd.Flags().BoolVar(&opts.clamp, "clamp", false, "clamp an out-of-range inflation rate instead of failing")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "write the report to a timestamped file in this directory")
	return cmd
}

func (a *app) tablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the reference tables used for projections",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.runTables()
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.address)")
	return cmd
}

func (a *app) exampleTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-tables [path]",
		Short: "Write the built-in reference tables as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return a.runExampleTables(path)
		},
	}
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
