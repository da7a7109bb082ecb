package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/rpgo/living-cost-simulator/internal/calculation"
	"github.com/rpgo/living-cost-simulator/internal/config"
	"github.com/rpgo/living-cost-simulator/internal/domain"
	"github.com/rpgo/living-cost-simulator/internal/output"
	"github.com/rpgo/living-cost-simulator/internal/server"
)

func (a *app) runProject(sel domain.Selection, format string, clamp bool, outputDir string) error {
	if clamp {
		clamped := calculation.ClampInflation(sel.InflationRatePercent)
		if clamped != sel.InflationRatePercent {
			a.logger.Warn("inflation rate clamped",
				zap.String("op", "project"),
				zap.Int("requested", sel.InflationRatePercent),
				zap.Int("used", clamped))
			sel.InflationRatePercent = clamped
		}
	} else if err := calculation.ValidateInflation(sel.InflationRatePercent); err != nil {
		return err
	}

	calc, err := a.calculator()
	if err != nil {
		return err
	}
	report, err := calc.Run(sel)
	if err != nil {
		return fmt.Errorf("projection failed: %w", err)
	}
	a.logger.Debug("projection complete",
		zap.String("op", "project"),
		zap.String("city", report.Selection.City),
		zap.String("job", report.Selection.Job),
		zap.String("lifestyle", report.Selection.Lifestyle),
		zap.Int("inflation", report.Selection.InflationRatePercent),
		zap.String("status", report.Summary.Status))

	if outputDir != "" {
		path, err := output.GenerateReport(report, format, outputDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Report written to %s\n", path)
		return nil
	}
	return output.Render(a.out, report, format)
}

func (a *app) runTables() error {
	calc, err := a.calculator()
	if err != nil {
		return err
	}
	printReferenceTables(a.out, calc.Tables())
	return nil
}

func (a *app) runServe(ctx context.Context, addr string) error {
	calc, err := a.calculator()
	if err != nil {
		return err
	}

	cfg := a.settings.Server
	if addr != "" {
		cfg.Address = addr
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := server.NewHandler(a.logger, calc, server.Options{Version: version, Defaults: a.settings.Defaults})
	return server.Run(ctx, cfg, handler, a.logger)
}

func (a *app) runExampleTables(path string) error {
	data, err := config.MarshalTables(config.NewTablesParser().CreateExampleTables())
	if err != nil {
		return err
	}
	if path == "" {
		_, err = a.out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(a.out, "Example reference tables written to %s\n", path)
	return nil
}
