package config

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/card-payoff/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears overrides and moves into an empty directory so that no
// stray config.yaml or environment variable leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range []string{
		"LOG_LEVEL", "LOG_FORMAT",
		"CARDPAYOFF_LOG_LEVEL", "CARDPAYOFF_LOG_FORMAT", "CARDPAYOFF_CSV_DELIMITER",
		"CARDPAYOFF_OUTPUT_FORMAT", "CARDPAYOFF_OUTPUT_LANGUAGE", "CARDPAYOFF_OUTPUT_CURRENCY",
		"CARDPAYOFF_OUTPUT_MESSAGES_FILE", "CARDPAYOFF_CARDS_FILE",
	} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)
	return dir
}

func TestInitializeConfig_Defaults(t *testing.T) {
	isolate(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, "text", config.Output.Format)
	assert.Equal(t, "en", config.Output.Language)
	assert.Equal(t, "", config.Output.Currency)
	assert.Equal(t, "", config.Cards.File)
	assert.Equal(t, ',', config.Delimiter())

	assert.Equal(t, config, Default())
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	isolate(t)

	testEnvVars := map[string]string{
		"CARDPAYOFF_LOG_LEVEL":       "debug",
		"CARDPAYOFF_LOG_FORMAT":      "json",
		"CARDPAYOFF_CSV_DELIMITER":   ";",
		"CARDPAYOFF_OUTPUT_FORMAT":   "YAML",
		"CARDPAYOFF_OUTPUT_LANGUAGE": "tr",
		"CARDPAYOFF_OUTPUT_CURRENCY": "TRY",
		"CARDPAYOFF_CARDS_FILE":      "cards.yaml",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.Equal(t, "yaml", config.Output.Format)
	assert.Equal(t, "tr", config.Output.Language)
	assert.Equal(t, "TRY", config.Output.Currency)
	assert.Equal(t, "cards.yaml", config.Cards.File)
}

func TestInitializeConfig_PlainLogLevel(t *testing.T) {
	isolate(t)
	t.Setenv("LOG_LEVEL", "warn")

	config, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "warn", config.Log.Level)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	dir := isolate(t)

	configContent := `
log:
  level: "warn"
  format: "json"
csv:
  delimiter: "|"
output:
  format: "csv"
  language: "tr"
  currency: "EUR"
cards:
  file: "portfolio.csv"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0600))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, "csv", config.Output.Format)
	assert.Equal(t, "tr", config.Output.Language)
	assert.Equal(t, "EUR", config.Output.Currency)
	assert.Equal(t, "portfolio.csv", config.Cards.File)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	dir := isolate(t)

	configContent := `
log:
  level: "warn"
csv:
  delimiter: "|"
output:
  language: "tr"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0600))

	t.Setenv("CARDPAYOFF_LOG_LEVEL", "error")
	t.Setenv("CARDPAYOFF_OUTPUT_LANGUAGE", "en")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level) // env var wins
	assert.Equal(t, "|", config.CSV.Delimiter) // config file value
	assert.Equal(t, "en", config.Output.Language)
	assert.Equal(t, "text", config.Output.Format) // default
}

func TestInitializeConfigFrom_ExplicitFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: json\n"), 0600))

	config, err := InitializeConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "json", config.Output.Format)

	_, err = InitializeConfigFrom(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestInitializeConfig_InvalidFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output:\n  format: xml\n"), 0600))

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "invalid" },
			expectError:  "invalid log format",
		},
		{
			name:         "invalid CSV delimiter",
			modifyConfig: func(c *Config) { c.CSV.Delimiter = "abc" },
			expectError:  "CSV delimiter must be a single character",
		},
		{
			name:         "invalid output format",
			modifyConfig: func(c *Config) { c.Output.Format = "pdf" },
			expectError:  "unsupported output format",
		},
		{
			name:         "invalid language",
			modifyConfig: func(c *Config) { c.Output.Language = "de" },
			expectError:  "unsupported language",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			require.NoError(t, validateConfig(config))

			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	config := Default()
	config.Log.Level = "debug"
	config.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(config)
	_, ok := logger.(*logging.LogrusAdapter)
	assert.True(t, ok)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CARDPAYOFF_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("CARDPAYOFF_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CARDPAYOFF_TEST_UNSET_VALUE", "fallback"))
}

func TestLoadEnvFile(t *testing.T) {
	dir := isolate(t)
	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("CARDPAYOFF_FROM_DOTENV=loaded\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("CARDPAYOFF_FROM_DOTENV") })

	assert.Equal(t, "", loadEnvFile(filepath.Join(dir, "missing.env")))
	assert.Equal(t, envPath, loadEnvFile(filepath.Join(dir, "missing.env"), envPath))
	assert.Equal(t, "loaded", os.Getenv("CARDPAYOFF_FROM_DOTENV"))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
