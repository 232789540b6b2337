package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, 30, cfg.AI.TimeoutSeconds)
	assert.Equal(t, "memory", cfg.Store.Driver)
}

func TestLoadFromEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("FINCOACH_LOG_LEVEL", "debug")
	t.Setenv("FINCOACH_STORE_DRIVER", "sqlite")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
}

func TestLoadFromFile(t *testing.T) {
	chdirTemp(t)

	content := `log:
  level: warn
  format: json
csv:
  delimiter: ";"
`
	require.NoError(t, os.WriteFile("config.yaml", []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
}

func TestGeminiKeyFromEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "FINCOACH_LOG_LEVEL", "verbose"},
		{"bad log format", "FINCOACH_LOG_FORMAT", "xml"},
		{"multi-char delimiter", "FINCOACH_CSV_DELIMITER", ",,"},
		{"bad store driver", "FINCOACH_STORE_DRIVER", "postgres"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestAIEnabledRequiresKey(t *testing.T) {
	chdirTemp(t)
	t.Setenv("FINCOACH_AI_ENABLED", "true")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}
