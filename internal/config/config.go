package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Tracing TracingConfig `yaml:"tracing" envconfig:"TRACING"`
	Survey  SurveyConfig  `yaml:"survey" envconfig:"SURVEY"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// TracingConfig contains OpenTelemetry tracing configuration.
// The exporter defaults to "none" so traces never interleave with the
// report written to stdout.
type TracingConfig struct {
	Exporter    string  `yaml:"exporter" envconfig:"EXPORTER"`
	SampleRatio float64 `yaml:"sample_ratio" envconfig:"SAMPLE_RATIO"`
}

// SurveyConfig names the fixed columns of the source extract. Defaults
// match the American Time Use Survey column naming.
type SurveyConfig struct {
	IDColumn         string `yaml:"id_column" envconfig:"ID_COLUMN"`
	EmploymentColumn string `yaml:"employment_column" envconfig:"EMPLOYMENT_COLUMN"`
	SexColumn        string `yaml:"sex_column" envconfig:"SEX_COLUMN"`
	AgeColumn        string `yaml:"age_column" envconfig:"AGE_COLUMN"`
}

// Default returns the built-in configuration. Load layers the optional
// config file and environment variables on top of it.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/summarize.log",
		},
		Tracing: TracingConfig{
			Exporter:    "none",
			SampleRatio: 1.0,
		},
		Survey: SurveyConfig{
			IDColumn:         "tucaseid",
			EmploymentColumn: "telfs",
			SexColumn:        "tesex",
			AgeColumn:        "teage",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML config
// file, and environment variables, in that order of precedence (env wins).
func Load(configFile string) (*Config, error) {
	cfg := *Default()

	// Overlay config file if it exists
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := loadFromFile(configFile, &cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	// Overlay explicitly set environment variables
	var envCfg Config
	if err := envconfig.Process("ATUS", &envCfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	cfg = mergeConfigs(cfg, envCfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays configuration from a YAML file; keys absent from
// the file keep their current values.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// mergeConfigs merges the env overlay into the base config (env takes
// precedence for every field it explicitly sets)
func mergeConfigs(base, env Config) Config {
	if env.Logging.Level != "" {
		base.Logging.Level = env.Logging.Level
	}
	if env.Logging.Format != "" {
		base.Logging.Format = env.Logging.Format
	}
	if env.Logging.Output != "" {
		base.Logging.Output = env.Logging.Output
	}
	if env.Logging.FilePath != "" {
		base.Logging.FilePath = env.Logging.FilePath
	}
	if env.Tracing.Exporter != "" {
		base.Tracing.Exporter = env.Tracing.Exporter
	}
	if env.Tracing.SampleRatio != 0 {
		base.Tracing.SampleRatio = env.Tracing.SampleRatio
	}
	if env.Survey.IDColumn != "" {
		base.Survey.IDColumn = env.Survey.IDColumn
	}
	if env.Survey.EmploymentColumn != "" {
		base.Survey.EmploymentColumn = env.Survey.EmploymentColumn
	}
	if env.Survey.SexColumn != "" {
		base.Survey.SexColumn = env.Survey.SexColumn
	}
	if env.Survey.AgeColumn != "" {
		base.Survey.AgeColumn = env.Survey.AgeColumn
	}

	return base
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid logging output %q (want console, file or both)", c.Logging.Output)
	}

	switch c.Tracing.Exporter {
	case "stdout", "none":
	default:
		return fmt.Errorf("invalid tracing exporter %q (want stdout or none)", c.Tracing.Exporter)
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing sample ratio %v out of range [0,1]", c.Tracing.SampleRatio)
	}

	if c.Survey.IDColumn == "" {
		return fmt.Errorf("survey id column must not be empty")
	}
	if c.Survey.EmploymentColumn == "" || c.Survey.SexColumn == "" || c.Survey.AgeColumn == "" {
		return fmt.Errorf("survey control columns must not be empty")
	}

	return nil
}
