package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/nasalprom/nasalprom/internal/output"
)

// Date defaulting policies.
const (
	DateDefaultToday = "today"
	DateDefaultNone  = "none"
)

// Config represents the nasalprom configuration
type Config struct {
	Timepoint   string `mapstructure:"timepoint"`
	Dataset     string `mapstructure:"dataset"`
	DateDefault string `mapstructure:"date_default"`
	AttachTSV   bool   `mapstructure:"attach_tsv"`
	Format      string `mapstructure:"format"`
	Output      string `mapstructure:"output"`
	Clipboard   bool   `mapstructure:"clipboard"`
	Quiet       bool   `mapstructure:"quiet"`
	Verbose     bool   `mapstructure:"verbose"`
}

// configFiles are searched in the working directory when no path is given.
var configFiles = []string{".nasalpromrc.json", ".nasalpromrc.yaml", ".nasalpromrc.yml"}

// LoadConfig loads configuration from defaults, a config file and
// NASALPROM_* environment variables. An explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	viper.SetDefault("timepoint", "")
	viper.SetDefault("dataset", "")
	viper.SetDefault("date_default", DateDefaultToday)
	viper.SetDefault("attach_tsv", true)
	viper.SetDefault("format", output.FormatText)
	viper.SetDefault("output", "")
	viper.SetDefault("clipboard", false)
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		for _, candidate := range configFiles {
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			viper.SetConfigFile(candidate)
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
			break
		}
	}

	viper.SetEnvPrefix("NASALPROM")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	validFormat := false
	for _, f := range output.Formats() {
		if config.Format == f {
			validFormat = true
			break
		}
	}
	if !validFormat {
		return fmt.Errorf("invalid format: %s. Must be 'text', 'markdown', 'html', or 'json'", config.Format)
	}

	if config.DateDefault != DateDefaultToday && config.DateDefault != DateDefaultNone {
		return fmt.Errorf("invalid date_default: %s. Must be 'today' or 'none'", config.DateDefault)
	}

	return nil
}
