package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/living-cost-simulator/internal/calculation"
	"github.com/rpgo/living-cost-simulator/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries what every subcommand needs after the root command has
// loaded settings.
type app struct {
	out        io.Writer
	configPath string
	logLevel   string
	tablesPath string

	settings *config.Settings
	logger   *zap.Logger
}

func main() {
	a := &app{out: os.Stdout}
	if err := a.rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "livingcost",
		Short:        "Five-year cost of living vs salary projection",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	rootCmd.SetOut(a.out)

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to settings file (YAML)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.tablesPath, "tables", "", "reference tables file (YAML); built-in tables when empty")

	rootCmd.AddCommand(a.projectCmd())
	rootCmd.AddCommand(a.tablesCmd())
	rootCmd.AddCommand(a.serveCmd())
	rootCmd.AddCommand(a.exampleTablesCmd())
	return rootCmd
}

func (a *app) setup() error {
	settings, err := config.LoadSettings(a.configPath)
	if err != nil {
		return err
	}
	logger, err := initializeLogger(settings.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.settings = settings
	a.logger = logger
	return nil
}

// calculator builds a calculator over the tables file named by --tables or the
// settings, falling back to the built-in tables.
func (a *app) calculator() (*calculation.Calculator, error) {
	path := a.tablesPath
	if path == "" {
		path = a.settings.TablesFile
	}
	if path == "" {
		return calculation.NewCalculator(config.DefaultTables()), nil
	}

	tables, err := config.NewTablesParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded reference tables", zap.String("op", "calculator"), zap.String("file", path),
		zap.Int("cities", len(tables.Cities)), zap.Int("jobs", len(tables.Jobs)))
	return calculation.NewCalculator(*tables), nil
}
