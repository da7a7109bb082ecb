package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. LIVINGCOST_SERVER_ADDRESS.
const EnvPrefix = "LIVINGCOST"

// Settings holds runtime configuration for the CLI and the HTTP server.
type Settings struct {
	Logging    LoggingConfig  `mapstructure:"logging"`
	Output     OutputConfig   `mapstructure:"output"`
	Server     ServerConfig   `mapstructure:"server"`
	TablesFile string         `mapstructure:"tables_file"` // optional YAML reference tables
	Defaults   DefaultsConfig `mapstructure:"defaults"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputFile string `mapstructure:"output_file"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format"` // console, csv, json, html
}

// ServerConfig defines runtime parameters for the HTTP server.
type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DefaultsConfig holds the selection used when a caller leaves inputs unset.
type DefaultsConfig struct {
	City      string `mapstructure:"city"`
	Job       string `mapstructure:"job"`
	Lifestyle string `mapstructure:"lifestyle"`
	Inflation int    `mapstructure:"inflation"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_file", "")
	v.SetDefault("output.format", "console")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("tables_file", "")
	v.SetDefault("defaults.city", DefaultCity)
	v.SetDefault("defaults.job", DefaultJob)
	v.SetDefault("defaults.lifestyle", DefaultLifestyle)
	v.SetDefault("defaults.inflation", DefaultInflationRate)
}

// LoadSettings reads settings from an optional YAML file, applying defaults and
// LIVINGCOST_* environment overrides. An empty path skips the file.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &settings, nil
}
