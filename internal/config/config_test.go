package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetViper resets viper to a clean state for each test
func resetViper() {
	viper.Reset()
}

// chdirTemp moves into a fresh temp dir for the duration of the test
func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() {
		_ = os.Chdir(oldWd)
	})
	return tmpDir
}

func TestLoadConfigDefaults(t *testing.T) {
	resetViper()
	chdirTemp(t)

	config, err := LoadConfig("")
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Empty(t, config.Timepoint)
	assert.Empty(t, config.Dataset)
	assert.Equal(t, DateDefaultToday, config.DateDefault)
	assert.True(t, config.AttachTSV)
	assert.Equal(t, "text", config.Format)
	assert.Empty(t, config.Output)
	assert.False(t, config.Clipboard)
	assert.False(t, config.Quiet)
	assert.False(t, config.Verbose)
}

func TestLoadConfigFromJSON(t *testing.T) {
	resetViper()
	tmpDir := chdirTemp(t)

	configData := map[string]interface{}{
		"timepoint":    "Pre-op",
		"dataset":      "Baseline",
		"date_default": "none",
		"attach_tsv":   false,
		"format":       "markdown",
		"clipboard":    true,
	}
	jsonData, err := json.Marshal(configData)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".nasalpromrc.json"), jsonData, 0644))

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "Pre-op", config.Timepoint)
	assert.Equal(t, "Baseline", config.Dataset)
	assert.Equal(t, DateDefaultNone, config.DateDefault)
	assert.False(t, config.AttachTSV)
	assert.Equal(t, "markdown", config.Format)
	assert.True(t, config.Clipboard)
}

func TestLoadConfigFromYAML(t *testing.T) {
	resetViper()
	tmpDir := chdirTemp(t)

	yamlContent := "timepoint: 3 months\nformat: html\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".nasalpromrc.yaml"), []byte(yamlContent), 0644))

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "3 months", config.Timepoint)
	assert.Equal(t, "html", config.Format)
}

func TestLoadConfigExplicitPath(t *testing.T) {
	resetViper()
	tmpDir := chdirTemp(t)

	path := filepath.Join(tmpDir, "clinic.yml")
	require.NoError(t, os.WriteFile(path, []byte("dataset: Follow-up\n"), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Follow-up", config.Dataset)

	resetViper()
	_, err = LoadConfig(filepath.Join(tmpDir, "missing.yml"))
	assert.ErrorContains(t, err, "error reading config file")
}

func TestLoadConfigFromEnv(t *testing.T) {
	resetViper()
	chdirTemp(t)
	t.Setenv("NASALPROM_TIMEPOINT", "Post-op")
	t.Setenv("NASALPROM_FORMAT", "json")

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "Post-op", config.Timepoint)
	assert.Equal(t, "json", config.Format)
}

func TestLoadConfigInvalid(t *testing.T) {
	resetViper()
	tmpDir := chdirTemp(t)

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".nasalpromrc.yaml"), []byte("format: pdf\n"), 0644))

	_, err := LoadConfig("")
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "valid",
			config: Config{Format: "text", DateDefault: DateDefaultToday},
		},
		{
			name:   "valid none",
			config: Config{Format: "json", DateDefault: DateDefaultNone},
		},
		{
			name:    "unknown format",
			config:  Config{Format: "console", DateDefault: DateDefaultToday},
			wantErr: "invalid format: console",
		},
		{
			name:    "unknown date default",
			config:  Config{Format: "text", DateDefault: "yesterday"},
			wantErr: "invalid date_default: yesterday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
