package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "none", cfg.Tracing.Exporter)
	assert.Equal(t, "tucaseid", cfg.Survey.IDColumn)
	assert.Equal(t, "telfs", cfg.Survey.EmploymentColumn)
	assert.Equal(t, "tesex", cfg.Survey.SexColumn)
	assert.Equal(t, "teage", cfg.Survey.AgeColumn)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ATUS_LOGGING_LEVEL", "debug")
	t.Setenv("ATUS_SURVEY_ID_COLUMN", "caseid")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "caseid", cfg.Survey.IDColumn)
	// untouched fields keep defaults
	assert.Equal(t, "telfs", cfg.Survey.EmploymentColumn)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
logging:
  output: file
  file_path: out/run.log
survey:
  age_column: age
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Logging.Output)
	assert.Equal(t, "out/run.log", cfg.Logging.FilePath)
	assert.Equal(t, "age", cfg.Survey.AgeColumn)
	// defaults survive for fields the file does not set
	assert.Equal(t, "tucaseid", cfg.Survey.IDColumn)
}

func TestLoadMissingFileIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "tucaseid", cfg.Survey.IDColumn)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad logging output",
			mutate:  func(c *Config) { c.Logging.Output = "syslog" },
			wantErr: "invalid logging output",
		},
		{
			name:    "bad tracing exporter",
			mutate:  func(c *Config) { c.Tracing.Exporter = "jaeger" },
			wantErr: "invalid tracing exporter",
		},
		{
			name:    "sample ratio out of range",
			mutate:  func(c *Config) { c.Tracing.SampleRatio = 1.5 },
			wantErr: "out of range",
		},
		{
			name:    "empty id column",
			mutate:  func(c *Config) { c.Survey.IDColumn = "" },
			wantErr: "id column",
		},
		{
			name:    "empty control column",
			mutate:  func(c *Config) { c.Survey.SexColumn = "" },
			wantErr: "control columns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
