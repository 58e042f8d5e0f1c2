package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.PrettyLog)
	assert.Equal(t, 5.0, cfg.RegressionThreshold)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTABLE_LOG_LEVEL", "debug")
	t.Setenv("HTABLE_PRETTY_LOG", "false")
	t.Setenv("HTABLE_REGRESSION_THRESHOLD", "12.5")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.PrettyLog)
	assert.Equal(t, 12.5, cfg.RegressionThreshold)
}

func TestLoadFromEnvInvalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTABLE_REGRESSION_THRESHOLD", "lots")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	cfg := &Config{LogLevel: "warn"}

	var buf bytes.Buffer
	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)

	_, err = (&Config{LogLevel: "loud"}).Logger(&buf)
	assert.Error(t, err)
}
