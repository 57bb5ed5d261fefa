// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration,
// e.g. COVOTES_LOG_LEVEL for log.level.
const EnvPrefix = "COVOTES"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Output struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
		XLSX      bool   `mapstructure:"xlsx" yaml:"xlsx"`
	} `mapstructure:"output" yaml:"output"`

	PDF struct {
		RowTolerance float64 `mapstructure:"row_tolerance" yaml:"row_tolerance"`
	} `mapstructure:"pdf" yaml:"pdf"`

	Validation struct {
		CheckGrandTotal bool `mapstructure:"check_grand_total" yaml:"check_grand_total"`
		CheckRecords    bool `mapstructure:"check_records" yaml:"check_records"`
	} `mapstructure:"validation" yaml:"validation"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config.yaml, then COVOTES_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.co-early-votes")
	v.AddConfigPath(".co-early-votes")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("output.directory", ".")
	v.SetDefault("output.xlsx", false)

	v.SetDefault("pdf.row_tolerance", 2.0)

	v.SetDefault("validation.check_grand_total", true)
	v.SetDefault("validation.check_records", true)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", config.CSV.Delimiter)
	}
	if r := config.CSV.Delimiter[0]; r == '\n' || r == '\r' || r == '"' {
		return fmt.Errorf("CSV delimiter cannot be a quote or line break, got: %q", config.CSV.Delimiter)
	}

	if config.PDF.RowTolerance <= 0 {
		return fmt.Errorf("pdf.row_tolerance must be positive, got: %g", config.PDF.RowTolerance)
	}

	return nil
}

// Delimiter returns csv.delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// OutputDirectory returns output.directory, "." when unset.
func (c *Config) OutputDirectory() string {
	if c.Output.Directory == "" {
		return "."
	}
	return c.Output.Directory
}
